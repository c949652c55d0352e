package reservation

import (
	"fmt"
	"time"

	"coach-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errs.Class("invalid reservation status", errs.ErrValidation)
	ErrInvalidTransition = errs.Class("reservation status transition not allowed", errs.ErrInvalidTransition)
	ErrMissingReference  = errs.Class("member and activity are required", errs.ErrValidation)
	ErrNotFound          = errs.Class("reservation not found", errs.ErrNotFound)
)

type Reservation struct {
	id         uuid.UUID
	memberID   uuid.UUID
	activityID uuid.UUID
	schedule   Schedule
	status     Status
	reviewed   bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation always starts in pending. Overlapping bookings are not checked.
func NewReservation(memberID, activityID uuid.UUID, schedule Schedule, now time.Time) (*Reservation, error) {
	if memberID == uuid.Nil || activityID == uuid.Nil {
		return nil, ErrMissingReference
	}

	return &Reservation{
		id:         uuid.New(),
		memberID:   memberID,
		activityID: activityID,
		schedule:   schedule,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, memberID, activityID uuid.UUID,
	schedule Schedule,
	status Status,
	reviewed bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		memberID:   memberID,
		activityID: activityID,
		schedule:   schedule,
		status:     status,
		reviewed:   reviewed,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo moves the reservation along the state graph and returns the
// previous status.
func (r *Reservation) TransitionTo(next Status, now time.Time) (Status, error) {
	if !next.IsValid() {
		return r.status, ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return r.status, errs.Wrap(ErrInvalidTransition, fmt.Sprintf("%s -> %s", r.status, next))
	}

	prev := r.status
	r.status = next
	r.updatedAt = now
	return prev, nil
}

func (r *Reservation) Cancel(now time.Time) (Status, error) {
	return r.TransitionTo(StatusCancelled, now)
}

func (r *Reservation) Complete(now time.Time) (Status, error) {
	return r.TransitionTo(StatusCompleted, now)
}

func (r *Reservation) IsReviewable() bool {
	return r.status == StatusCompleted && !r.reviewed
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) MemberID() uuid.UUID   { return r.memberID }
func (r *Reservation) ActivityID() uuid.UUID { return r.activityID }
func (r *Reservation) Schedule() Schedule    { return r.schedule }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Reviewed() bool        { return r.reviewed }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
