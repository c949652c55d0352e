package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/handler/httperr"
	"coach-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Message: "Access token required"})
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Message: "Invalid or expired token"})
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// OptionalAuth attaches the actor when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if actor, err := m.tokenValidator.ValidateToken(token); err == nil {
				setActor(c, actor)
			}
		}
		c.Next()
	}
}

func setActor(c *gin.Context, actor authz.Actor) {
	c.Set(ctxActorKey, actor)
}

// GetActor returns the authenticated actor, or the zero actor for anonymous requests.
func GetActor(c *gin.Context) (authz.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}
