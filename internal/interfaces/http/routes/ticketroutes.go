package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "homeward/internal/interfaces/http/handlers/comment"
	tickethandlers "homeward/internal/interfaces/http/handlers/ticket"
	"homeward/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	CommentHandler *commenthandlers.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.POST("/:id/assign", config.TicketHandler.AssignTicket)
		tickets.POST("/:id/reassign", config.TicketHandler.ReassignTicket)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.PATCH("/:id/status", config.TicketHandler.UpdateTicketStatus)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}

	comments := engine.Group("/api/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.PATCH("/:id/visibility", config.CommentHandler.SetVisibility)
		comments.PATCH("/:id", config.CommentHandler.UpdateComment)
		comments.DELETE("/:id", config.CommentHandler.DeleteComment)
	}
}
