package repository

import (
	"context"

	"coach-booking-api/internal/infra"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserQueries interface {
	ListAdminIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
}

type UserRepository struct {
	queries UserQueries
}

func NewUserRepository(queries UserQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) AdminIDs(ctx context.Context, tx sqlc.DBTX) ([]uuid.UUID, error) {
	ids, err := r.queries.ListAdminIDs(ctx, tx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admins", err)
	}
	return ids, nil
}
