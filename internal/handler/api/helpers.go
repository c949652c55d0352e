package api

import (
	"net/http"
	"strconv"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/handler/httperr"
	"coach-booking-api/internal/handler/middleware"
	"coach-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// actor aborts with 401 when the route was reached without RequireAuth.
func actor(c *gin.Context) (authz.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok || a.IsZero() {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return authz.Actor{}, false
	}
	return a, true
}

// pageParams reads ?limit and ?after. Unparseable limits fall back to the default.
func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}
