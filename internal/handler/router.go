package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coach-booking-api/internal/handler/api"
	"coach-booking-api/internal/handler/middleware"
	"coach-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation  *api.ReservationHandler
	Review       *api.ReviewHandler
	Notification *api.NotificationHandler
	Contact      *api.ContactHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authed := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Reservation.UpdateStatus},
			{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodPut, Path: "/:id/complete", Handler: h.Reservation.Complete},
		})

		addRoutes(apiGroup.Group("/reviews"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete, Mw: authed},
		})

		addRoutes(apiGroup.Group("/activities"), []route{
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByActivity},
			{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Review.ActivityRating},
		})

		addRoutes(apiGroup.Group("/coaches"), []route{
			{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.AddCoachReview, Mw: authed},
			{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Review.CoachRating},
		})

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
			{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
			{Method: http.MethodPut, Path: "/read-all", Handler: h.Notification.MarkAllRead},
			{Method: http.MethodPut, Path: "/:id/read", Handler: h.Notification.MarkRead},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Notification.Delete},
		})

		apiGroup.POST("/contact", h.Contact.Submit)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
