package repository

import (
	"context"

	"coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/infra"
	"coach-booking-api/internal/infra/repository/converter"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	ReviewExistsForMemberActivity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReviewExistsForMemberActivityParams) (bool, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) error
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

// Create reports a concurrent insert for the same member and activity as a
// duplicate review.
func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create review", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return errs.Mark(wrapped, review.ErrAlreadyReviewed)
		}
		return wrapped
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, review.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	return converter.ReviewFromRow(row)
}

func (r *ReviewRepository) ExistsForMemberActivity(ctx context.Context, tx sqlc.DBTX, memberID, activityID uuid.UUID) (bool, error) {
	exists, err := r.queries.ReviewExistsForMemberActivity(ctx, tx, sqlc.ReviewExistsForMemberActivityParams{
		MemberID:   memberID,
		ActivityID: activityID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return exists, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.UpdateReview(ctx, tx, converter.ReviewToUpdateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return review.ErrNotFound
	}
	return nil
}
