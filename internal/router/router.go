package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListCategories(c *ginext.Context)
	BrowsePerformers(c *ginext.Context)
	Me(c *ginext.Context)
	GetOwnProfile(c *ginext.Context)
	SaveOwnProfile(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	DeclineBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

// InitRouter registers the API. mw runs on every route, so authentication
// and the role policy apply to /health as well.
func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/categories", h.ListCategories)
		api.GET("/performers", h.BrowsePerformers)

		// Profiles
		api.GET("/me", h.Me)
		api.GET("/performers/me", h.GetOwnProfile)
		api.PUT("/performers/me", h.SaveOwnProfile)

		// Bookings
		api.POST("/performers/:id/bookings", h.SubmitBooking)
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/decline", h.DeclineBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
