package commands

import (
	"context"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor authz.Actor, id uuid.UUID) error
	// MarkAllRead returns how many notifications changed.
	MarkAllRead(ctx context.Context, actor authz.Actor) (int64, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (uc *notificationCommandsImpl) MarkRead(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().GetByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, n.RecipientID(), authz.OwnerOnly); err != nil {
			return err
		}
		if !n.MarkRead() {
			return nil
		}
		return tx.Notifications().MarkRead(ctx, tx.DB(), id)
	})
}

func (uc *notificationCommandsImpl) MarkAllRead(ctx context.Context, actor authz.Actor) (int64, error) {
	if actor.IsZero() {
		return 0, authz.ErrForbidden
	}

	var changed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.ID)
		changed = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

func (uc *notificationCommandsImpl) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().GetByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, n.RecipientID(), authz.OwnerOnly); err != nil {
			return err
		}
		return tx.Notifications().Delete(ctx, tx.DB(), id)
	})
}
