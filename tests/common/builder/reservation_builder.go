//go:build unit || e2e

package builder

import (
	"time"

	domres "coach-booking-api/internal/domain/reservation"
	reqdto "coach-booking-api/internal/handler/dto/request"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationBuilder defaults to a pending one-hour Monday slot.
type ReservationBuilder struct {
	MemberID      uuid.UUID
	ActivityID    uuid.UUID
	ActivityTitle string
	CoachID       uuid.UUID
	DayOfWeek     string
	Date          string
	StartTime     string
	EndTime       string
	Status        domres.Status
	Reviewed      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		MemberID:      uuid.New(),
		ActivityID:    uuid.New(),
		ActivityTitle: "Morning Yoga",
		CoachID:       uuid.New(),
		DayOfWeek:     "monday",
		Date:          "2025-03-03",
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        domres.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildSchedule() (domres.Schedule, error) {
	return domres.NewSchedule(r.DayOfWeek, r.Date, r.StartTime, r.EndTime)
}

// BuildDomain bypasses the state machine so any status can be set up directly.
func (r *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	schedule, err := r.BuildSchedule()
	if err != nil {
		return nil, err
	}
	return domres.ReconstructReservation(uuid.New(), r.MemberID, r.ActivityID, schedule, r.Status, r.Reviewed, r.CreatedAt, r.UpdatedAt), nil
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	date, _ := time.Parse(domres.DateLayout, r.Date)
	return sqlc.Reservations{
		ID:         uuid.New(),
		MemberID:   r.MemberID,
		ActivityID: r.ActivityID,
		DayOfWeek:  r.DayOfWeek,
		Date:       pgtype.Date{Time: date, Valid: true},
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Status:     r.Status.String(),
		Reviewed:   r.Reviewed,
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ActivityID: r.ActivityID,
		DayOfWeek:  r.DayOfWeek,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            uuid.New(),
		MemberID:      r.MemberID,
		ActivityID:    r.ActivityID,
		ActivityTitle: r.ActivityTitle,
		CoachID:       r.CoachID,
		DayOfWeek:     r.DayOfWeek,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        r.Status.String(),
		Reviewed:      r.Reviewed,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:            uuid.New(),
		ActivityID:    r.ActivityID,
		ActivityTitle: r.ActivityTitle,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Status:        r.Status.String(),
		Reviewed:      r.Reviewed,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ReservationBuilder) WithMemberID(memberID uuid.UUID) *ReservationBuilder {
	r.MemberID = memberID
	return r
}

func (r *ReservationBuilder) WithActivityID(activityID uuid.UUID) *ReservationBuilder {
	r.ActivityID = activityID
	return r
}

func (r *ReservationBuilder) WithStatus(status domres.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) AsReviewed() *ReservationBuilder {
	r.Status = domres.StatusCompleted
	r.Reviewed = true
	return r
}
