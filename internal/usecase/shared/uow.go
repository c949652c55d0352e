package shared

import (
	"context"
	"time"

	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/domain/rating"
	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/domain/review"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a write transaction, retrying on serialization failure or deadlock.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Activities() ActivityRepository
	Ratings() RatingRepository
	Notifications() NotificationRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	// GetForUpdate locks the row until the transaction ends.
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	ListCompletedForUpdate(ctx context.Context, tx sqlc.DBTX, memberID, activityID uuid.UUID) ([]*reservation.Reservation, error)
	MarkReviewed(ctx context.Context, tx sqlc.DBTX, memberID, activityID uuid.UUID, now time.Time) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	GetByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error)
	ExistsForMemberActivity(ctx context.Context, tx sqlc.DBTX, memberID, activityID uuid.UUID) (bool, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ActivityRepository interface {
	GetByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ActivitySnapshot, error)
}

// RatingRepository stores the derived rating of activities and coaches.
type RatingRepository interface {
	// Lock takes a row lock on the target. Coach profiles are created first when missing.
	Lock(ctx context.Context, tx sqlc.DBTX, target rating.Target) error
	Ratings(ctx context.Context, tx sqlc.DBTX, target rating.Target) ([]int, error)
	Save(ctx context.Context, tx sqlc.DBTX, target rating.Target, agg rating.Aggregate) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error
	GetByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*notification.Notification, error)
	MarkRead(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkAllRead(ctx context.Context, tx sqlc.DBTX, recipientID uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	AdminIDs(ctx context.Context, tx sqlc.DBTX) ([]uuid.UUID, error)
}
