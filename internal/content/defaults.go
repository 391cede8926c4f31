package content

import "github.com/zeruamusic/site-api/internal/model"

// Built-in fallbacks served when the backend is unreachable or a singleton
// key has never been written. The public pages must keep rendering either
// way.

// DefaultAbout is the about-page copy used before an editor writes their own.
var DefaultAbout = model.AboutContent{
	Paragraphs: []string{
		"Zerua Music is a worship choir and creative collective based in Glasgow. We exist to bring people together through music that is rooted in faith, honesty, and excellence.",
		"Our sound is shaped by gospel and contemporary worship, but our heart goes deeper than genre. We believe worship is about unity, authenticity, and creating space for people to encounter God in a real way. Every rehearsal, every performance, and every song is approached with intention and purpose.",
		"Zerua Music is made up of individuals from different backgrounds, brought together by a shared desire to serve through music. We value growth, discipline, and community, and we are committed to developing both our sound and the people behind it.",
		"Whether on stage, in church, or in creative collaboration, our aim is simple: to honour God and use our voices to inspire, uplift, and connect.",
	},
}

// DefaultHeroCopy is the homepage hero fallback.
var DefaultHeroCopy = model.HomeHeroCopy{
	Headline: "Rooted in worship, led by faith, freedom, and unity.",
	Body:     "Zerua Music is a worship collective driven by freedom, faith, and bold expression. Rooted in gospel and honest storytelling, we create music that moves beyond expectation while staying grounded in purpose. This is worship without boxes, intentional, soulful, and real.",
}

// DefaultFeaturedVideoURL is empty: without a configured video the section
// is simply hidden.
const DefaultFeaturedVideoURL = ""
