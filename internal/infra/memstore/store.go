// Package memstore is an in-memory implementation of the unit of work and
// read stores. Transactions are serialized and rolled back on error.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/domain/rating"
	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInjected = errs.New("injected failure")

type userRow struct {
	email     string
	role      user.Role
	createdAt time.Time
}

type activityRow struct {
	coachID uuid.UUID
	title   string
	agg     rating.Aggregate
}

type state struct {
	users         map[uuid.UUID]userRow
	activities    map[uuid.UUID]activityRow
	coachProfiles map[uuid.UUID]rating.Aggregate
	reservations  map[uuid.UUID]reservation.Reservation
	reviews       map[uuid.UUID]review.Review
	notifications map[uuid.UUID]notification.Notification
}

func (s state) clone() state {
	return state{
		users:         maps.Clone(s.users),
		activities:    maps.Clone(s.activities),
		coachProfiles: maps.Clone(s.coachProfiles),
		reservations:  maps.Clone(s.reservations),
		reviews:       maps.Clone(s.reviews),
		notifications: maps.Clone(s.notifications),
	}
}

type Store struct {
	mu    sync.Mutex
	data  state
	clock func() time.Time

	failNotificationsFor map[uuid.UUID]bool
	failAdminLookup      bool
}

func New() *Store {
	return &Store{
		data: state{
			users:         map[uuid.UUID]userRow{},
			activities:    map[uuid.UUID]activityRow{},
			coachProfiles: map[uuid.UUID]rating.Aggregate{},
			reservations:  map[uuid.UUID]reservation.Reservation{},
			reviews:       map[uuid.UUID]review.Review{},
			notifications: map[uuid.UUID]notification.Notification{},
		},
		clock:                func() time.Time { return time.Now().UTC() },
		failNotificationsFor: map[uuid.UUID]bool{},
	}
}

// Within holds the store lock for the whole callback and restores the
// previous state when fn fails.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) read(fn func(d *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// Seeding and inspection helpers.

func (s *Store) AddUser(role user.Role, email string) uuid.UUID {
	id := uuid.New()
	s.read(func(d *state) {
		d.users[id] = userRow{email: email, role: role, createdAt: s.clock().Add(time.Duration(len(d.users)) * time.Microsecond)}
	})
	return id
}

func (s *Store) AddActivity(coachID uuid.UUID, title string) uuid.UUID {
	id := uuid.New()
	s.read(func(d *state) {
		d.activities[id] = activityRow{coachID: coachID, title: title}
	})
	return id
}

// ReassignActivity changes the coach running an activity.
func (s *Store) ReassignActivity(activityID, coachID uuid.UUID) {
	s.read(func(d *state) {
		a := d.activities[activityID]
		a.coachID = coachID
		d.activities[activityID] = a
	})
}

func (s *Store) ActivityAggregate(id uuid.UUID) rating.Aggregate {
	var agg rating.Aggregate
	s.read(func(d *state) { agg = d.activities[id].agg })
	return agg
}

func (s *Store) CoachAggregate(id uuid.UUID) (rating.Aggregate, bool) {
	var (
		agg rating.Aggregate
		ok  bool
	)
	s.read(func(d *state) { agg, ok = d.coachProfiles[id] })
	return agg, ok
}

func (s *Store) Reservation(id uuid.UUID) (reservation.Reservation, bool) {
	var (
		r  reservation.Reservation
		ok bool
	)
	s.read(func(d *state) { r, ok = d.reservations[id] })
	return r, ok
}

func (s *Store) ReviewCount() int {
	var n int
	s.read(func(d *state) { n = len(d.reviews) })
	return n
}

func (s *Store) NotificationsFor(recipientID uuid.UUID) []notification.Notification {
	var out []notification.Notification
	s.read(func(d *state) {
		for _, n := range d.notifications {
			if n.RecipientID() == recipientID {
				out = append(out, n)
			}
		}
	})
	return out
}

// FailNotificationsFor makes inserts for recipientID fail.
func (s *Store) FailNotificationsFor(recipientID uuid.UUID) {
	s.read(func(_ *state) { s.failNotificationsFor[recipientID] = true })
}

func (s *Store) FailAdminLookup() {
	s.read(func(_ *state) { s.failAdminLookup = true })
}

// PutReservation stores r as-is, bypassing the state machine.
func (s *Store) PutReservation(r *reservation.Reservation) {
	s.read(func(d *state) { d.reservations[r.ID()] = *r })
}
