package repository

import (
	"context"

	"coach-booking-api/internal/infra"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ActivityQueries interface {
	GetActivityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Activities, error)
}

type ActivityRepository struct {
	queries ActivityQueries
}

func NewActivityRepository(queries ActivityQueries) *ActivityRepository {
	return &ActivityRepository{queries: queries}
}

func (r *ActivityRepository) GetByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.ActivitySnapshot, error) {
	row, err := r.queries.GetActivityByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, shared.ErrActivityNotFound
		}
		return nil, infra.WrapRepoErr("failed to get activity", err)
	}
	return &shared.ActivitySnapshot{
		ID:      row.ID,
		CoachID: row.CoachID,
		Title:   row.Title,
	}, nil
}
