package routes

import (
	"github.com/gin-gonic/gin"

	propertyhandlers "homeward/internal/interfaces/http/handlers/property"
	"homeward/internal/interfaces/http/middleware"
)

type PropertyRouteConfig struct {
	PropertyHandler *propertyhandlers.PropertyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupPropertyRoutes(engine *gin.Engine, config *PropertyRouteConfig) {
	properties := engine.Group("/api/properties")
	properties.Use(config.AuthMiddleware.RequireAuth())
	{
		properties.POST("", config.PropertyHandler.CreateProperty)
		properties.GET("", config.PropertyHandler.ListProperties)
		properties.GET("/:id", config.PropertyHandler.GetProperty)
		properties.PATCH("/:id", config.PropertyHandler.UpdateProperty)
		properties.DELETE("/:id", config.PropertyHandler.DeleteProperty)
	}
}
