package readstore

import (
	"context"

	"coach-booking-api/internal/infra"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"
	"coach-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotifications(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsParams) ([]sqlc.Notifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{queries: queries, db: db}
}

func (r *NotificationReadStore) FindByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotifications(ctx, r.db, sqlc.ListNotificationsParams{
		RecipientID: recipientID,
		UnreadOnly:  unreadOnly,
		RowLimit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationView{
			ID:                row.ID,
			Title:             row.Title,
			Message:           row.Message,
			Type:              row.Type,
			Read:              row.Read,
			RelatedEntityType: pgconv.StringPtrFromPgtype(row.RelatedEntityType),
			RelatedEntityID:   pgconv.UUIDPtrFromPgtype(row.RelatedEntityID),
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, r.db, recipientID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
