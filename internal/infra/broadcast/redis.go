// Package broadcast publishes notification hints to connected clients.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"coach-booking-api/internal/pkg/config"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/usecase/notify"

	"github.com/redis/go-redis/v9"
)

// Publisher is the part of *redis.Client the broadcaster uses.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type RedisBroadcaster struct {
	client  Publisher
	channel string
}

func NewRedisBroadcaster(client Publisher, channel string) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, channel: channel}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, hint notify.Hint) error {
	payload, err := json.Marshal(hint)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification hint")
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "failed to publish to %s", b.channel)
	}
	return nil
}

// NoopBroadcaster drops every hint.
type NoopBroadcaster struct{}

func (NoopBroadcaster) Publish(context.Context, notify.Hint) error { return nil }

// New returns a Redis-backed broadcaster, or a no-op one when no Redis URL
// is configured. The returned func closes the client.
func New(cfg config.RedisConfig, logger *slog.Logger) (notify.Broadcaster, func(), error) {
	if cfg.URL == "" {
		logger.Info("redis url not set, notification hints disabled")
		return NoopBroadcaster{}, func() {}, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse redis url")
	}
	client := redis.NewClient(opt)
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}
	return NewRedisBroadcaster(client, cfg.Channel), cleanup, nil
}
