//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coach-booking-api/internal/handler/middleware"
	"coach-booking-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: test config builds a working middleware", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS

		var handler gin.HandlerFunc
		require.NotPanics(t, func() { handler = middleware.NewCORSMiddleware(cfg) })

		router := gin.New()
		router.Use(handler)
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("error: unknown origin is refused", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("error: empty origin list panics", func(t *testing.T) {
		assert.Panics(t, func() { middleware.NewCORSMiddleware(config.CORSConfig{}) })
	})
}
