// Package notify turns domain events into stored per-recipient notifications.
package notify

import (
	"context"
	"log/slog"

	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/pkg/clock"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Hint is published after notifications are stored so connected clients can
// refresh. Delivery is best effort.
type Hint struct {
	Type       notification.Type `json:"type"`
	Recipients []uuid.UUID       `json:"recipients"`
}

type Broadcaster interface {
	Publish(ctx context.Context, hint Hint) error
}

type Result struct {
	Created int
	Failed  int
}

type Dispatcher interface {
	Dispatch(ctx context.Context, ev notification.Event) Result
}

type dispatcher struct {
	uow         shared.UnitOfWork
	broadcaster Broadcaster
	clock       clock.Clock
	logger      *slog.Logger
}

func NewDispatcher(uow shared.UnitOfWork, broadcaster Broadcaster, clk clock.Clock, logger *slog.Logger) Dispatcher {
	return &dispatcher{uow: uow, broadcaster: broadcaster, clock: clk, logger: logger}
}

// Dispatch never fails the caller. Every recipient gets its own transaction,
// so one failed insert does not stop the others.
func (d *dispatcher) Dispatch(ctx context.Context, ev notification.Event) Result {
	var res Result

	recipients, err := d.resolve(ctx, ev.Recipients)
	if err != nil {
		d.logger.Warn("failed to resolve notification recipients",
			slog.String("type", string(ev.Type)),
			slog.String("error", err.Error()))
		return res
	}

	delivered := make([]uuid.UUID, 0, len(recipients))
	for _, id := range recipients {
		if err := d.createOne(ctx, id, ev); err != nil {
			res.Failed++
			d.logger.Warn("failed to create notification",
				slog.String("type", string(ev.Type)),
				slog.String("recipient_id", id.String()),
				slog.String("error", err.Error()))
			continue
		}
		res.Created++
		delivered = append(delivered, id)
	}

	if len(delivered) > 0 {
		if err := d.broadcaster.Publish(ctx, Hint{Type: ev.Type, Recipients: delivered}); err != nil {
			d.logger.Warn("failed to publish notification hint",
				slog.String("type", string(ev.Type)),
				slog.String("error", err.Error()))
		}
	}

	return res
}

func (d *dispatcher) resolve(ctx context.Context, policy notification.RecipientPolicy) ([]uuid.UUID, error) {
	if !policy.NeedsAdmins() {
		return policy.Resolve(nil), nil
	}

	var admins []uuid.UUID
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Users().AdminIDs(ctx, tx.DB())
		admins = ids
		return err
	})
	if err != nil {
		return nil, err
	}
	return policy.Resolve(admins), nil
}

func (d *dispatcher) createOne(ctx context.Context, recipientID uuid.UUID, ev notification.Event) error {
	n, err := notification.NewNotification(recipientID, ev.Type, ev.Title, ev.Message, ev.Related, d.clock.Now())
	if err != nil {
		return err
	}
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Create(ctx, tx.DB(), n)
	})
}
