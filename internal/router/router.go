package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	PublishEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ReserveTicket(c *ginext.Context)
	CancelTicket(c *ginext.Context)
	ListMyTickets(c *ginext.Context)
	CreateEntryToken(c *ginext.Context)
	CheckInTicket(c *ginext.Context)
	CheckInByToken(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(
	mode string,
	h Handler,
	realtimeHandler ginext.HandlerFunc,
	authMW ginext.HandlerFunc,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events: reads are public, mutation needs a caller.
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", authMW, h.CreateEvent)
		api.POST("/events/:id/publish", authMW, h.PublishEvent)
		api.DELETE("/events/:id", authMW, h.DeleteEvent)

		// Tickets
		api.POST("/tickets", authMW, h.ReserveTicket)
		api.GET("/tickets", authMW, h.ListMyTickets)
		api.DELETE("/tickets/:id", authMW, h.CancelTicket)
		api.POST("/tickets/:id/entry-token", authMW, h.CreateEntryToken)
		api.POST("/tickets/:id/checkin", authMW, h.CheckInTicket)
		api.POST("/checkin", authMW, h.CheckInByToken)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", authMW, h.ListUsers)
	}

	router.GET("/ws", realtimeHandler)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
