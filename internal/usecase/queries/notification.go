package queries

import (
	"context"
	"time"

	"coach-booking-api/internal/domain/authz"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	Type              string     `json:"type"`
	Read              bool       `json:"read"`
	RelatedEntityType *string    `json:"related_entity_type,omitempty"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type NotificationReadStore interface {
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	List(ctx context.Context, actor authz.Actor, unreadOnly bool, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, actor authz.Actor) (int64, error)
}

type notificationQueriesImpl struct {
	store        NotificationReadStore
	defaultLimit int
	maxLimit     int
}

func NewNotificationQueries(store NotificationReadStore, defaultLimit, maxLimit int) NotificationQueries {
	return &notificationQueriesImpl{store: store, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// List returns the actor's own notifications, newest first.
func (q *notificationQueriesImpl) List(ctx context.Context, actor authz.Actor, unreadOnly bool, limit int) ([]*NotificationView, error) {
	if actor.IsZero() {
		return nil, authz.ErrForbidden
	}
	if limit <= 0 {
		limit = q.defaultLimit
	}
	if limit > q.maxLimit {
		limit = q.maxLimit
	}
	return q.store.FindByRecipient(ctx, actor.ID, unreadOnly, int32(limit))
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, actor authz.Actor) (int64, error) {
	if actor.IsZero() {
		return 0, authz.ErrForbidden
	}
	return q.store.CountUnread(ctx, actor.ID)
}
