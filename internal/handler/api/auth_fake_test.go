//go:build unit

package api_test

import (
	"net/http"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for RequireAuth: any Authorization header authenticates as
// the given actor.
func fakeAuth(actor authz.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Message: "Unauthorized"})
			return
		}
		c.Set("actor", actor)
		c.Next()
	}
}

func newMember() authz.Actor {
	return authz.NewActor(uuid.New(), user.RoleMember)
}
