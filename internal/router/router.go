// Package router wires the HTTP routes onto an Echo instance. The admin
// group mutates content through the backend gateway; the public group is
// read-only and may sit behind the Redis response cache.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/handler"
)

// RegisterRoutes registers the routes that need no handler state.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAdmin mounts the content-editor API under /api/admin. There is no
// authentication on this group; middleware (rate limiting) is the caller's
// to supply.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/admin", mw...)

	g.GET("/tour-dates", a.ListTourDates)
	g.POST("/tour-dates", a.CreateTourDate)
	g.PATCH("/tour-dates/:id", a.UpdateTourDate)
	g.DELETE("/tour-dates/:id", a.DeleteTourDate)
	g.POST("/tour-dates/reorder", a.ReorderTourDates)

	g.GET("/releases", a.ListReleases)
	g.POST("/releases", a.CreateRelease)
	g.PATCH("/releases/:id", a.UpdateRelease)
	g.DELETE("/releases/:id", a.DeleteRelease)
	g.POST("/releases/reorder", a.ReorderReleases)

	g.GET("/release-platform-links", a.ListReleaseLinks)
	g.POST("/release-platform-links", a.CreateReleaseLink)
	g.PATCH("/release-platform-links/:id", a.UpdateReleaseLink)
	g.DELETE("/release-platform-links/:id", a.DeleteReleaseLink)
	g.POST("/release-platform-links/reorder", a.ReorderReleaseLinks)

	g.GET("/charts", a.ListCharts)
	g.POST("/charts", a.CreateChart)
	g.PATCH("/charts/:id", a.UpdateChart)
	g.DELETE("/charts/:id", a.DeleteChart)
	g.POST("/charts/reorder", a.ReorderCharts)

	g.GET("/merch-items", a.ListMerchItems)
	g.POST("/merch-items", a.CreateMerchItem)
	g.PATCH("/merch-items/:id", a.UpdateMerchItem)
	g.DELETE("/merch-items/:id", a.DeleteMerchItem)
	g.POST("/merch-items/reorder", a.ReorderMerchItems)

	g.GET("/site-content/:key", a.GetSiteContent)
	g.PATCH("/site-content/:key", a.PatchSiteContent)

	g.GET("/featured-video", a.GetFeaturedVideo)
	g.PATCH("/featured-video", a.PatchFeaturedVideo)

	g.POST("/upload", a.Upload)
}

// RegisterPublic mounts the read-only endpoints under /api. cacheMw is
// applied to the cacheable listing routes; the featured-video URL must
// always be fresh and stays outside it.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheMw ...echo.MiddlewareFunc) {
	e.GET("/api/featured-video", p.FeaturedVideo)

	g := e.Group("/api", cacheMw...)
	g.GET("/youtube/videos", p.Videos)
	g.GET("/content/tour-dates", p.TourDates)
	g.GET("/content/releases", p.Releases)
	g.GET("/content/featured-release", p.FeaturedRelease)
	g.GET("/content/charts", p.Charts)
	g.GET("/content/merch", p.MerchItems)
	g.GET("/content/about", p.About)
	g.GET("/content/home", p.HomeHeroCopy)
}
