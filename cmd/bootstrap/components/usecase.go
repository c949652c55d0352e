package components

import (
	"coach-booking-api/internal/pkg/clock"
	"coach-booking-api/internal/pkg/config"
	"coach-booking-api/internal/usecase"
	"coach-booking-api/internal/usecase/commands"
	"coach-booking-api/internal/usecase/notify"
	"coach-booking-api/internal/usecase/queries"
	"coach-booking-api/internal/usecase/rating"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	rating.NewAggregator,
	notify.NewDispatcher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewReviewCommands,
		commands.NewNotificationCommands,
		commands.NewContactCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewReviewQueries,
		func(store queries.NotificationReadStore, cfg config.Config) queries.NotificationQueries {
			return queries.NewNotificationQueries(store, cfg.Notification.ListDefaultLimit, cfg.Notification.ListMaxLimit)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
