package repository

import (
	"context"
	"time"

	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/infra"
	"coach-booking-api/internal/infra/repository/converter"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
	ListCompletedReservationsForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletedReservationsForUpdateParams) ([]sqlc.Reservations, error)
	MarkReservationsReviewed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationsReviewedParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, reservation.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	if err := r.queries.UpdateReservationStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}

func (r *ReservationRepository) ListCompletedForUpdate(ctx context.Context, tx sqlc.DBTX, memberID, activityID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListCompletedReservationsForUpdate(ctx, tx, sqlc.ListCompletedReservationsForUpdateParams{
		MemberID:   memberID,
		ActivityID: activityID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completed reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) MarkReviewed(ctx context.Context, tx sqlc.DBTX, memberID, activityID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.MarkReservationsReviewed(ctx, tx, sqlc.MarkReservationsReviewedParams{
		MemberID:   memberID,
		ActivityID: activityID,
		UpdatedAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark reservations reviewed", err)
	}
	return n, nil
}
