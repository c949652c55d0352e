package readstore

import (
	"context"
	"time"

	"coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/infra"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/pkg/pgconv"
	"coach-booking-api/internal/usecase/queries"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCoachNotFound = errs.Class("coach not found", errs.ErrNotFound)

type ReviewReadQueries interface {
	GetReviewView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewRow, error)
	ListReviewsByActivityFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByActivityFirstPageParams) ([]sqlc.ListReviewsByActivityFirstPageRow, error)
	ListReviewsByActivityKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByActivityKeysetParams) ([]sqlc.ListReviewsByActivityKeysetRow, error)
	GetActivityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Activities, error)
	GetCoachRating(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCoachRatingRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{queries: queries, db: db}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, review.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to get review view", err)
	}
	return &queries.ReviewView{
		ID:            row.ID,
		MemberID:      row.MemberID,
		MemberEmail:   row.MemberEmail,
		ActivityID:    row.ActivityID,
		ActivityTitle: row.ActivityTitle,
		CoachID:       row.CoachID,
		Rating:        row.Rating,
		Comment:       pgconv.StringPtrFromPgtype(row.Comment),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) FindByActivityFirstPage(ctx context.Context, activityID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.ListReviewsByActivityFirstPage(ctx, r.db, sqlc.ListReviewsByActivityFirstPageParams{
		ActivityID: activityID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by activity", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewListItem{
			ID:          row.ID,
			MemberID:    row.MemberID,
			MemberEmail: row.MemberEmail,
			Rating:      row.Rating,
			Comment:     pgconv.StringPtrFromPgtype(row.Comment),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) FindByActivityKeyset(ctx context.Context, activityID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.ListReviewsByActivityKeyset(ctx, r.db, sqlc.ListReviewsByActivityKeysetParams{
		ActivityID:    activityID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by activity", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewListItem{
			ID:          row.ID,
			MemberID:    row.MemberID,
			MemberEmail: row.MemberEmail,
			Rating:      row.Rating,
			Comment:     pgconv.StringPtrFromPgtype(row.Comment),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) ActivityRating(ctx context.Context, activityID uuid.UUID) (*queries.RatingView, error) {
	row, err := r.queries.GetActivityByID(ctx, r.db, activityID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, shared.ErrActivityNotFound
		}
		return nil, infra.WrapRepoErr("failed to get activity rating", err)
	}
	return &queries.RatingView{
		TargetID:     row.ID,
		Rating:       row.Rating,
		ReviewsCount: row.ReviewsCount,
	}, nil
}

// CoachRating reports zero for a coach whose profile has not been created yet.
func (r *ReviewReadStore) CoachRating(ctx context.Context, coachID uuid.UUID) (*queries.RatingView, error) {
	row, err := r.queries.GetCoachRating(ctx, r.db, coachID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, ErrCoachNotFound
		}
		return nil, infra.WrapRepoErr("failed to get coach rating", err)
	}
	return &queries.RatingView{
		TargetID:     row.CoachID,
		Rating:       row.Rating,
		ReviewsCount: row.ReviewsCount,
	}, nil
}
