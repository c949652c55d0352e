package repository

import (
	"context"

	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/infra"
	"coach-booking-api/internal/infra/repository/converter"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	GetNotificationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Notifications, error)
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error {
	if err := r.queries.CreateNotification(ctx, tx, converter.NotificationToCreateParams(n)); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*notification.Notification, error) {
	row, err := r.queries.GetNotificationByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notification.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to get notification", err)
	}
	return converter.NotificationFromRow(row), nil
}

// MarkRead is a no-op for an already read notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if _, err := r.queries.MarkNotificationRead(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx sqlc.DBTX, recipientID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, tx, recipientID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return n, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteNotification(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification", err)
	}
	if n == 0 {
		return notification.ErrNotFound
	}
	return nil
}
