package bootstrap

import (
	"context"
	"log/slog"

	"coach-booking-api/internal/infra/broadcast"
	"coach-booking-api/internal/pkg/config"
	"coach-booking-api/internal/usecase/notify"

	"go.uber.org/fx"
)

var BroadcastModule = fx.Module("broadcast",
	fx.Provide(
		NewBroadcaster,
	),
)

// NewBroadcaster falls back to a no-op publisher when REDIS_URL is unset.
func NewBroadcaster(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Broadcaster, error) {
	b, cleanup, err := broadcast.New(cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return b, nil
}
