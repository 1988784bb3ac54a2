package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BookTicket(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)
	GetTicket(c *ginext.Context)
	UpdateTicket(c *ginext.Context)
	DeleteTicket(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.BookTicket)
		api.DELETE("/bookings/:id", h.CancelBooking)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/availability", h.GetAvailability)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Легаси-CRUD по билетам: отдельный незащищённый путь,
		// мимо всех правил бронирования.
		api.POST("/tickets", h.CreateTicket)
		api.GET("/tickets", h.ListTickets)
		api.GET("/tickets/:id", h.GetTicket)
		api.PUT("/tickets/:id", h.UpdateTicket)
		api.DELETE("/tickets/:id", h.DeleteTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
