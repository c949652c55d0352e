package queries

import (
	"context"
	"time"

	"coach-booking-api/internal/domain/authz"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	MemberID      uuid.UUID `json:"member_id"`
	ActivityID    uuid.UUID `json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	CoachID       uuid.UUID `json:"coach_id"`
	DayOfWeek     string    `json:"day_of_week"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	Reviewed      bool      `json:"reviewed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID `json:"id"`
	ActivityID    uuid.UUID `json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	Reviewed      bool      `json:"reviewed"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Require(actor, view.MemberID, authz.SelfOrAdmin, authz.CoachOrAdmin); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if actor.IsZero() {
		return nil, nil, authz.ErrForbidden
	}
	return page(cursor, limit,
		func(n int32) ([]*ReservationListItem, error) {
			return q.store.FindByMemberFirstPage(ctx, actor.ID, n)
		},
		func(after time.Time, id uuid.UUID, n int32) ([]*ReservationListItem, error) {
			return q.store.FindByMemberKeyset(ctx, actor.ID, after, id, n)
		},
		func(it *ReservationListItem) (time.Time, uuid.UUID) { return it.CreatedAt, it.ID },
	)
}
