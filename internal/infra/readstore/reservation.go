package readstore

import (
	"context"
	"time"

	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/infra"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"
	"coach-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationsByMemberFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByMemberFirstPageParams) ([]sqlc.ListReservationsByMemberFirstPageRow, error)
	ListReservationsByMemberKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByMemberKeysetParams) ([]sqlc.ListReservationsByMemberKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{queries: queries, db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, reservation.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to get reservation view", err)
	}
	return &queries.ReservationView{
		ID:            row.ID,
		MemberID:      row.MemberID,
		ActivityID:    row.ActivityID,
		ActivityTitle: row.ActivityTitle,
		CoachID:       row.CoachID,
		DayOfWeek:     row.DayOfWeek,
		Date:          formatDate(row.Date.Time),
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Status:        row.Status,
		Reviewed:      row.Reviewed,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByMemberFirstPage(ctx, r.db, sqlc.ListReservationsByMemberFirstPageParams{
		MemberID: memberID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:            row.ID,
			ActivityID:    row.ActivityID,
			ActivityTitle: row.ActivityTitle,
			Date:          formatDate(row.Date.Time),
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			Status:        row.Status,
			Reviewed:      row.Reviewed,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByMemberKeyset(ctx, r.db, sqlc.ListReservationsByMemberKeysetParams{
		MemberID:      memberID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:            row.ID,
			ActivityID:    row.ActivityID,
			ActivityTitle: row.ActivityTitle,
			Date:          formatDate(row.Date.Time),
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			Status:        row.Status,
			Reviewed:      row.Reviewed,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func formatDate(t time.Time) string {
	return t.Format(reservation.DateLayout)
}
