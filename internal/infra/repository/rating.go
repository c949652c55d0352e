package repository

import (
	"context"

	"coach-booking-api/internal/domain/rating"
	"coach-booking-api/internal/infra"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingQueries interface {
	LockActivityForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	EnsureCoachProfile(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
	LockCoachProfileForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (uuid.UUID, error)
	ListRatingsByActivity(ctx context.Context, db sqlc.DBTX, activityID uuid.UUID) ([]int32, error)
	ListRatingsByCoach(ctx context.Context, db sqlc.DBTX, coachID uuid.UUID) ([]int32, error)
	UpdateActivityRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateActivityRatingParams) error
	UpdateCoachRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCoachRatingParams) error
}

type RatingRepository struct {
	queries RatingQueries
}

func NewRatingRepository(queries RatingQueries) *RatingRepository {
	return &RatingRepository{queries: queries}
}

func (r *RatingRepository) Lock(ctx context.Context, tx sqlc.DBTX, target rating.Target) error {
	switch target.Scope {
	case rating.ScopeActivity:
		if _, err := r.queries.LockActivityForUpdate(ctx, tx, target.ID); err != nil {
			if pgconv.IsNoRows(err) {
				return shared.ErrActivityNotFound
			}
			return infra.WrapRepoErr("failed to lock activity", err)
		}
		return nil
	case rating.ScopeCoach:
		if err := r.queries.EnsureCoachProfile(ctx, tx, target.ID); err != nil {
			return infra.WrapRepoErr("failed to ensure coach profile", err)
		}
		if _, err := r.queries.LockCoachProfileForUpdate(ctx, tx, target.ID); err != nil {
			return infra.WrapRepoErr("failed to lock coach profile", err)
		}
		return nil
	default:
		return rating.ErrUnknownScope
	}
}

func (r *RatingRepository) Ratings(ctx context.Context, tx sqlc.DBTX, target rating.Target) ([]int, error) {
	var (
		rows []int32
		err  error
	)
	switch target.Scope {
	case rating.ScopeActivity:
		rows, err = r.queries.ListRatingsByActivity(ctx, tx, target.ID)
	case rating.ScopeCoach:
		rows, err = r.queries.ListRatingsByCoach(ctx, tx, target.ID)
	default:
		return nil, rating.ErrUnknownScope
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load ratings", err)
	}

	out := make([]int, len(rows))
	for i, v := range rows {
		out[i] = int(v)
	}
	return out, nil
}

func (r *RatingRepository) Save(ctx context.Context, tx sqlc.DBTX, target rating.Target, agg rating.Aggregate) error {
	var err error
	switch target.Scope {
	case rating.ScopeActivity:
		err = r.queries.UpdateActivityRating(ctx, tx, sqlc.UpdateActivityRatingParams{
			ID:           target.ID,
			Rating:       agg.Rating,
			ReviewsCount: int32(agg.ReviewsCount),
		})
	case rating.ScopeCoach:
		err = r.queries.UpdateCoachRating(ctx, tx, sqlc.UpdateCoachRatingParams{
			UserID:       target.ID,
			Rating:       agg.Rating,
			ReviewsCount: int32(agg.ReviewsCount),
		})
	default:
		return rating.ErrUnknownScope
	}
	if err != nil {
		return infra.WrapRepoErr("failed to save rating", err)
	}
	return nil
}
