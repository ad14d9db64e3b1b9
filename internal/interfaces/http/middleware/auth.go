package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	uservo "homeward/internal/domain/user/valueobjects"
	"homeward/internal/infrastructure/auth"
	"homeward/internal/shared/authorization"
	"homeward/internal/shared/logger"
	"homeward/internal/shared/utils"
)

const (
	contextKeyUserID   = "user_id"
	contextKeyUserRole = "user_role"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !claims.Role.IsValid() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid role in token")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyUserRole, claims.Role.String())

		c.Next()
	}
}

// ActorFromContext rebuilds the acting user from values stored by RequireAuth.
func ActorFromContext(c *gin.Context) (authorization.Actor, bool) {
	userID, ok := c.Get(contextKeyUserID)
	if !ok {
		return authorization.Actor{}, false
	}
	roleStr, ok := c.Get(contextKeyUserRole)
	if !ok {
		return authorization.Actor{}, false
	}

	role, err := uservo.NewRole(roleStr.(string))
	if err != nil {
		return authorization.Actor{}, false
	}

	return authorization.Actor{
		ID:   userID.(uint),
		Role: role,
	}, true
}
