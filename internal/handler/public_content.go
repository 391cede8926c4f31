package handler

import "github.com/labstack/echo/v4"

// The content endpoints back the public pages. They never fail: the reader
// substitutes built-in defaults when the backend is unreachable, so the
// site keeps rendering.

// TourDates handles GET /api/content/tour-dates.
func (p *PublicHandler) TourDates(c echo.Context) error {
	return jsonData(c, p.Reader.TourDates(c.Request().Context()))
}

// Releases handles GET /api/content/releases.
func (p *PublicHandler) Releases(c echo.Context) error {
	return jsonData(c, p.Reader.Releases(c.Request().Context()))
}

// FeaturedRelease handles GET /api/content/featured-release: the homepage's
// highlighted release with its platform links, or null when no release
// exists.
func (p *PublicHandler) FeaturedRelease(c echo.Context) error {
	return jsonData(c, p.Reader.FeaturedRelease(c.Request().Context()))
}

// Charts handles GET /api/content/charts.
func (p *PublicHandler) Charts(c echo.Context) error {
	return jsonData(c, p.Reader.Charts(c.Request().Context()))
}

// MerchItems handles GET /api/content/merch.
func (p *PublicHandler) MerchItems(c echo.Context) error {
	return jsonData(c, p.Reader.MerchItems(c.Request().Context()))
}

// About handles GET /api/content/about.
func (p *PublicHandler) About(c echo.Context) error {
	return jsonData(c, p.Reader.About(c.Request().Context()))
}

// HomeHeroCopy handles GET /api/content/home.
func (p *PublicHandler) HomeHeroCopy(c echo.Context) error {
	return jsonData(c, p.Reader.HomeHeroCopy(c.Request().Context()))
}
