package memstore

import (
	"context"
	"slices"
	"time"

	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/domain/rating"
	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/domain/user"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.UnitOfWork = (*Store)(nil)

// memTx runs with Store.mu held.
type memTx struct {
	s *Store
}

func (t *memTx) Reservations() shared.ReservationRepository   { return reservationRepo{t.s} }
func (t *memTx) Reviews() shared.ReviewRepository             { return reviewRepo{t.s} }
func (t *memTx) Activities() shared.ActivityRepository        { return activityRepo{t.s} }
func (t *memTx) Ratings() shared.RatingRepository             { return ratingRepo{t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t.s} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{t.s} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.data.activities[res.ActivityID()]; !ok {
		return shared.ErrActivityNotFound
	}
	r.s.data.reservations[res.ID()] = *res
	return nil
}

func (r reservationRepo) GetForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.s.data.reservations[id]
	if !ok {
		return nil, reservation.ErrNotFound
	}
	return &res, nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	stored, ok := r.s.data.reservations[res.ID()]
	if !ok {
		return reservation.ErrNotFound
	}
	r.s.data.reservations[res.ID()] = *reservation.ReconstructReservation(
		stored.ID(), stored.MemberID(), stored.ActivityID(), stored.Schedule(),
		res.Status(), stored.Reviewed(), stored.CreatedAt(), res.UpdatedAt(),
	)
	return nil
}

func (r reservationRepo) ListCompletedForUpdate(_ context.Context, _ sqlc.DBTX, memberID, activityID uuid.UUID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.s.data.reservations {
		if res.MemberID() == memberID && res.ActivityID() == activityID && res.Status() == reservation.StatusCompleted {
			out = append(out, &res)
		}
	}
	return out, nil
}

func (r reservationRepo) MarkReviewed(_ context.Context, _ sqlc.DBTX, memberID, activityID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for id, res := range r.s.data.reservations {
		if res.MemberID() != memberID || res.ActivityID() != activityID ||
			res.Status() != reservation.StatusCompleted || res.Reviewed() {
			continue
		}
		r.s.data.reservations[id] = *reservation.ReconstructReservation(
			res.ID(), res.MemberID(), res.ActivityID(), res.Schedule(),
			res.Status(), true, res.CreatedAt(), now,
		)
		n++
	}
	return n, nil
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, _ sqlc.DBTX, rev *review.Review) error {
	for _, existing := range r.s.data.reviews {
		if existing.MemberID() == rev.MemberID() && existing.ActivityID() == rev.ActivityID() {
			return errs.Mark(errs.New("duplicate review"), review.ErrAlreadyReviewed)
		}
	}
	r.s.data.reviews[rev.ID()] = *rev
	return nil
}

func (r reviewRepo) GetByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*review.Review, error) {
	rev, ok := r.s.data.reviews[id]
	if !ok {
		return nil, review.ErrNotFound
	}
	return &rev, nil
}

func (r reviewRepo) ExistsForMemberActivity(_ context.Context, _ sqlc.DBTX, memberID, activityID uuid.UUID) (bool, error) {
	for _, rev := range r.s.data.reviews {
		if rev.MemberID() == memberID && rev.ActivityID() == activityID {
			return true, nil
		}
	}
	return false, nil
}

func (r reviewRepo) Update(_ context.Context, _ sqlc.DBTX, rev *review.Review) error {
	if _, ok := r.s.data.reviews[rev.ID()]; !ok {
		return review.ErrNotFound
	}
	r.s.data.reviews[rev.ID()] = *rev
	return nil
}

func (r reviewRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.data.reviews[id]; !ok {
		return review.ErrNotFound
	}
	delete(r.s.data.reviews, id)
	return nil
}

type activityRepo struct{ s *Store }

func (r activityRepo) GetByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*shared.ActivitySnapshot, error) {
	a, ok := r.s.data.activities[id]
	if !ok {
		return nil, shared.ErrActivityNotFound
	}
	return &shared.ActivitySnapshot{ID: id, CoachID: a.coachID, Title: a.title}, nil
}

type ratingRepo struct{ s *Store }

func (r ratingRepo) Lock(_ context.Context, _ sqlc.DBTX, target rating.Target) error {
	switch target.Scope {
	case rating.ScopeActivity:
		if _, ok := r.s.data.activities[target.ID]; !ok {
			return shared.ErrActivityNotFound
		}
		return nil
	case rating.ScopeCoach:
		if _, ok := r.s.data.coachProfiles[target.ID]; !ok {
			r.s.data.coachProfiles[target.ID] = rating.Aggregate{}
		}
		return nil
	default:
		return rating.ErrUnknownScope
	}
}

func (r ratingRepo) Ratings(_ context.Context, _ sqlc.DBTX, target rating.Target) ([]int, error) {
	if !target.Scope.IsValid() {
		return nil, rating.ErrUnknownScope
	}
	out := []int{}
	for _, rev := range r.s.data.reviews {
		if (target.Scope == rating.ScopeActivity && rev.ActivityID() == target.ID) ||
			(target.Scope == rating.ScopeCoach && rev.CoachID() == target.ID) {
			out = append(out, rev.Rating().Value())
		}
	}
	return out, nil
}

func (r ratingRepo) Save(_ context.Context, _ sqlc.DBTX, target rating.Target, agg rating.Aggregate) error {
	switch target.Scope {
	case rating.ScopeActivity:
		a, ok := r.s.data.activities[target.ID]
		if !ok {
			return shared.ErrActivityNotFound
		}
		a.agg = agg
		r.s.data.activities[target.ID] = a
	case rating.ScopeCoach:
		r.s.data.coachProfiles[target.ID] = agg
	default:
		return rating.ErrUnknownScope
	}
	return nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) Create(_ context.Context, _ sqlc.DBTX, n *notification.Notification) error {
	if r.s.failNotificationsFor[n.RecipientID()] {
		return ErrInjected
	}
	r.s.data.notifications[n.ID()] = *n
	return nil
}

func (r notificationRepo) GetByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*notification.Notification, error) {
	n, ok := r.s.data.notifications[id]
	if !ok {
		return nil, notification.ErrNotFound
	}
	return &n, nil
}

func (r notificationRepo) MarkRead(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	n, ok := r.s.data.notifications[id]
	if !ok {
		return notification.ErrNotFound
	}
	n.MarkRead()
	r.s.data.notifications[id] = n
	return nil
}

func (r notificationRepo) MarkAllRead(_ context.Context, _ sqlc.DBTX, recipientID uuid.UUID) (int64, error) {
	var count int64
	for id, n := range r.s.data.notifications {
		if n.RecipientID() == recipientID && n.MarkRead() {
			r.s.data.notifications[id] = n
			count++
		}
	}
	return count, nil
}

func (r notificationRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.data.notifications[id]; !ok {
		return notification.ErrNotFound
	}
	delete(r.s.data.notifications, id)
	return nil
}

type userRepo struct{ s *Store }

// AdminIDs is ordered by account creation, like the SQL query.
func (r userRepo) AdminIDs(_ context.Context, _ sqlc.DBTX) ([]uuid.UUID, error) {
	if r.s.failAdminLookup {
		return nil, ErrInjected
	}
	var ids []uuid.UUID
	for id, u := range r.s.data.users {
		if u.role == user.RoleAdmin {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return r.s.data.users[a].createdAt.Compare(r.s.data.users[b].createdAt)
	})
	return ids, nil
}
