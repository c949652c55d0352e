package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	MemberID      uuid.UUID `json:"member_id"`
	MemberEmail   string    `json:"member_email"`
	ActivityID    uuid.UUID `json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	CoachID       uuid.UUID `json:"coach_id"`
	Rating        int32     `json:"rating"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID          uuid.UUID `json:"id"`
	MemberID    uuid.UUID `json:"member_id"`
	MemberEmail string    `json:"member_email"`
	Rating      int32     `json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RatingView is the stored aggregate of an activity or coach.
type RatingView struct {
	TargetID     uuid.UUID `json:"target_id"`
	Rating       float64   `json:"rating"`
	ReviewsCount int32     `json:"reviews_count"`
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByActivityFirstPage(ctx context.Context, activityID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByActivityKeyset(ctx context.Context, activityID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	ActivityRating(ctx context.Context, activityID uuid.UUID) (*RatingView, error)
	CoachRating(ctx context.Context, coachID uuid.UUID) (*RatingView, error)
}

type ReviewQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByActivity(ctx context.Context, activityID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	ActivityRating(ctx context.Context, activityID uuid.UUID) (*RatingView, error)
	CoachRating(ctx context.Context, coachID uuid.UUID) (*RatingView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *reviewQueriesImpl) ListByActivity(ctx context.Context, activityID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	return page(cursor, limit,
		func(n int32) ([]*ReviewListItem, error) {
			return q.store.FindByActivityFirstPage(ctx, activityID, n)
		},
		func(after time.Time, id uuid.UUID, n int32) ([]*ReviewListItem, error) {
			return q.store.FindByActivityKeyset(ctx, activityID, after, id, n)
		},
		func(it *ReviewListItem) (time.Time, uuid.UUID) { return it.CreatedAt, it.ID },
	)
}

func (q *reviewQueriesImpl) ActivityRating(ctx context.Context, activityID uuid.UUID) (*RatingView, error) {
	return q.store.ActivityRating(ctx, activityID)
}

func (q *reviewQueriesImpl) CoachRating(ctx context.Context, coachID uuid.UUID) (*RatingView, error) {
	return q.store.CoachRating(ctx, coachID)
}
