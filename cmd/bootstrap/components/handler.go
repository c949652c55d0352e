package components

import (
	"coach-booking-api/internal/handler"
	"coach-booking-api/internal/handler/api"
	"coach-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewNotificationHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
		func(
			reservation *api.ReservationHandler,
			review *api.ReviewHandler,
			notification *api.NotificationHandler,
			contact *api.ContactHandler,
		) handler.Handlers {
			return handler.Handlers{
				Reservation:  reservation,
				Review:       review,
				Notification: notification,
				Contact:      contact,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
