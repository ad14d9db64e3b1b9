// Package http assembles the HTTP surface: it wires repositories, use cases,
// handlers, and middleware onto a gin engine.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	authUC "homeward/internal/application/auth/usecases"
	propertyUC "homeward/internal/application/property/usecases"
	ticketUC "homeward/internal/application/ticket/usecases"
	propertyvo "homeward/internal/domain/property/valueobjects"
	"homeward/internal/domain/shared/events"
	infraauth "homeward/internal/infrastructure/auth"
	"homeward/internal/infrastructure/config"
	"homeward/internal/infrastructure/repository"
	authhandlers "homeward/internal/interfaces/http/handlers/auth"
	commenthandlers "homeward/internal/interfaces/http/handlers/comment"
	propertyhandlers "homeward/internal/interfaces/http/handlers/property"
	tickethandlers "homeward/internal/interfaces/http/handlers/ticket"
	"homeward/internal/interfaces/http/middleware"
	"homeward/internal/interfaces/http/routes"
	"homeward/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	if err := registerValidators(); err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := infraauth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)
	dispatcher := events.NewInMemoryEventDispatcher()

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	authHandler := authhandlers.NewAuthHandler(
		authUC.NewRegisterUseCase(userRepo, hasher, log),
		authUC.NewLoginUseCase(userRepo, hasher, jwtService, log),
		log,
	)

	propertyHandler := propertyhandlers.NewPropertyHandler(
		propertyUC.NewCreatePropertyUseCase(propertyRepo, log),
		propertyUC.NewUpdatePropertyUseCase(propertyRepo, log),
		propertyUC.NewDeletePropertyUseCase(propertyRepo, ticketRepo, log),
		propertyUC.NewGetPropertyUseCase(propertyRepo, log),
		propertyUC.NewListPropertiesUseCase(propertyRepo, log),
		log,
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, propertyRepo, dispatcher, log),
		ticketUC.NewAssignTicketUseCase(ticketRepo, userRepo, dispatcher, log),
		ticketUC.NewReassignTicketUseCase(ticketRepo, userRepo, dispatcher, log),
		ticketUC.NewChangeTicketStatusUseCase(ticketRepo, dispatcher, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, commentRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, log),
		ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, dispatcher, log),
		log,
	)

	commentHandler := commenthandlers.NewCommentHandler(
		ticketUC.NewUpdateCommentUseCase(commentRepo, log),
		ticketUC.NewDeleteCommentUseCase(commentRepo, log),
		ticketUC.NewSetCommentVisibilityUseCase(commentRepo, log),
		log,
	)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupPropertyRoutes(engine, &routes.PropertyRouteConfig{
		PropertyHandler: propertyHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		CommentHandler: commentHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}, nil
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// registerValidators adds the address-format rules to gin's validator.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type")
	}

	if err := v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		_, ok := propertyvo.NewUSState(fl.Field().String())
		return ok
	}); err != nil {
		return fmt.Errorf("failed to register us_state validator: %w", err)
	}

	if err := v.RegisterValidation("us_zip", func(fl validator.FieldLevel) bool {
		_, ok := propertyvo.NewZipCode(fl.Field().String())
		return ok
	}); err != nil {
		return fmt.Errorf("failed to register us_zip validator: %w", err)
	}

	return nil
}
