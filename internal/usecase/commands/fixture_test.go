//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/infra/memstore"
	"coach-booking-api/internal/pkg/clock"
	"coach-booking-api/internal/usecase/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type recordingBroadcaster struct {
	mu    sync.Mutex
	hints []notify.Hint
}

func (b *recordingBroadcaster) Publish(_ context.Context, hint notify.Hint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hints = append(b.hints, hint)
	return nil
}

type fixture struct {
	store       *memstore.Store
	clock       *clock.MockClock
	logger      *slog.Logger
	broadcaster *recordingBroadcaster
	dispatcher  notify.Dispatcher

	admin    authz.Actor
	coach    authz.Actor
	member   authz.Actor
	stranger authz.Actor

	activityID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	clk := clock.NewMockClock(baseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := &recordingBroadcaster{}

	f := &fixture{
		store:       store,
		clock:       clk,
		logger:      logger,
		broadcaster: b,
		dispatcher:  notify.NewDispatcher(store, b, clk, logger),
	}
	f.admin = authz.NewActor(store.AddUser(user.RoleAdmin, "admin@example.com"), user.RoleAdmin)
	f.coach = authz.NewActor(store.AddUser(user.RoleCoach, "coach@example.com"), user.RoleCoach)
	f.member = authz.NewActor(store.AddUser(user.RoleMember, "member@example.com"), user.RoleMember)
	f.stranger = authz.NewActor(store.AddUser(user.RoleMember, "other@example.com"), user.RoleMember)
	f.activityID = store.AddActivity(f.coach.ID, "Morning Yoga")
	return f
}

// pendingReservation books the default Monday slot for memberID.
func (f *fixture) pendingReservation(t *testing.T, memberID, activityID uuid.UUID) *reservation.Reservation {
	t.Helper()
	schedule, err := reservation.NewSchedule("monday", "2025-03-03", "10:00", "11:00")
	require.NoError(t, err)
	r, err := reservation.NewReservation(memberID, activityID, schedule, f.clock.Now())
	require.NoError(t, err)
	f.store.PutReservation(r)
	return r
}

func (f *fixture) reservationIn(t *testing.T, memberID, activityID uuid.UUID, status reservation.Status) *reservation.Reservation {
	t.Helper()
	r := f.pendingReservation(t, memberID, activityID)
	switch status {
	case reservation.StatusPending:
	case reservation.StatusCompleted:
		_, err := r.TransitionTo(reservation.StatusConfirmed, f.clock.Now())
		require.NoError(t, err)
		_, err = r.TransitionTo(reservation.StatusCompleted, f.clock.Now())
		require.NoError(t, err)
	default:
		_, err := r.TransitionTo(status, f.clock.Now())
		require.NoError(t, err)
	}
	f.store.PutReservation(r)
	return r
}
