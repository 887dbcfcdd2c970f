package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ChangeEventStatus(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	SubmitRSVP(c *ginext.Context)
	ListComments(c *ginext.Context)
	PostComment(c *ginext.Context)
	CastVote(c *ginext.Context)
	ListVotes(c *ginext.Context)
	CreateEndorsement(c *ginext.Context)
	ListEndorsements(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id/status", h.ChangeEventStatus)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Participants (RSVP)
		api.POST("/events/:id/participants", h.SubmitRSVP)

		// Discussion
		api.GET("/events/:id/comments", h.ListComments)
		api.POST("/events/:id/comments", h.PostComment)

		// Voting
		api.GET("/events/:id/votes", h.ListVotes)
		api.POST("/events/:id/votes", h.CastVote)

		// Endorsements
		api.POST("/endorsements", h.CreateEndorsement)
		api.GET("/endorsements", h.ListEndorsements)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
