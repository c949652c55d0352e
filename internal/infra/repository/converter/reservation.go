package converter

import (
	"coach-booking-api/internal/domain/reservation"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	s := r.Schedule()
	return sqlc.CreateReservationParams{
		ID:         r.ID(),
		MemberID:   r.MemberID(),
		ActivityID: r.ActivityID(),
		DayOfWeek:  s.DayOfWeek(),
		Date:       pgconv.DateToPgtype(s.Date()),
		StartTime:  s.StartTime(),
		EndTime:    s.EndTime(),
		Status:     r.Status().String(),
		Reviewed:   r.Reviewed(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	schedule, err := reservation.NewSchedule(
		row.DayOfWeek,
		pgconv.DateFromPgtype(row.Date).Format(reservation.DateLayout),
		row.StartTime,
		row.EndTime,
	)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.MemberID,
		row.ActivityID,
		schedule,
		status,
		row.Reviewed,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
