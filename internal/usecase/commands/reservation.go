package commands

import (
	"context"
	"log/slog"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/pkg/clock"
	"coach-booking-api/internal/usecase/notify"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	ActivityID uuid.UUID
	DayOfWeek  string
	Date       string
	StartTime  string
	EndTime    string
}

type ReservationResult struct {
	ID     uuid.UUID
	Status reservation.Status
}

type ReservationCommands interface {
	Create(ctx context.Context, actor authz.Actor, in CreateReservationInput) (*ReservationResult, error)
	SetStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, status string) (*ReservationResult, error)
	Cancel(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationResult, error)
	Complete(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationResult, error)
}

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher notify.Dispatcher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, dispatcher notify.Dispatcher, clk clock.Clock, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, dispatcher: dispatcher, clock: clk, logger: logger}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, actor authz.Actor, in CreateReservationInput) (*ReservationResult, error) {
	if actor.IsZero() {
		return nil, authz.ErrForbidden
	}

	schedule, err := reservation.NewSchedule(in.DayOfWeek, in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	var (
		res      *reservation.Reservation
		activity *shared.ActivitySnapshot
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Activities().GetByID(ctx, tx.DB(), in.ActivityID)
		if err != nil {
			return err
		}
		activity = a

		r, err := reservation.NewReservation(actor.ID, in.ActivityID, schedule, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, notification.NewReservationEvent(res.ID(), activity.CoachID, activity.Title, schedule.DateString()))

	uc.logger.Info("reservation created",
		slog.String("reservation_id", res.ID().String()),
		slog.String("member_id", actor.ID.String()))

	return &ReservationResult{ID: res.ID(), Status: res.Status()}, nil
}

// SetStatus checks the role before touching storage, so a member probing ids
// only ever sees Forbidden.
func (uc *reservationCommandsImpl) SetStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, status string) (*ReservationResult, error) {
	if err := authz.Require(actor, uuid.Nil, authz.CoachOrAdmin); err != nil {
		return nil, err
	}

	return uc.transition(ctx, id, func(r *reservation.Reservation) error {
		next, err := reservation.ParseStatus(status)
		if err != nil {
			return err
		}
		_, err = r.TransitionTo(next, uc.clock.Now())
		return err
	}, func(r *reservation.Reservation, a *shared.ActivitySnapshot) notification.Event {
		return notification.ReservationDecisionEvent(r.ID(), r.MemberID(), a.Title, r.Status())
	})
}

// Cancel needs the owner, so the lookup comes before the permission check.
func (uc *reservationCommandsImpl) Cancel(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationResult, error) {
	return uc.transition(ctx, id, func(r *reservation.Reservation) error {
		if err := authz.Require(actor, r.MemberID(), authz.SelfOrAdmin, authz.CoachOrAdmin); err != nil {
			return err
		}
		_, err := r.Cancel(uc.clock.Now())
		return err
	}, func(r *reservation.Reservation, a *shared.ActivitySnapshot) notification.Event {
		recipient := r.MemberID()
		if actor.ID == r.MemberID() {
			recipient = a.CoachID
		}
		return notification.ReservationCancelledEvent(r.ID(), recipient, a.Title)
	})
}

func (uc *reservationCommandsImpl) Complete(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationResult, error) {
	if err := authz.Require(actor, uuid.Nil, authz.CoachOrAdmin); err != nil {
		return nil, err
	}

	return uc.transition(ctx, id, func(r *reservation.Reservation) error {
		_, err := r.Complete(uc.clock.Now())
		return err
	}, func(r *reservation.Reservation, a *shared.ActivitySnapshot) notification.Event {
		return notification.ReservationCompletedEvent(r.ID(), r.MemberID(), a.Title)
	})
}

// transition reads and writes the reservation under a row lock, then
// notifies once the transaction has committed.
func (uc *reservationCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(r *reservation.Reservation) error,
	event func(r *reservation.Reservation, a *shared.ActivitySnapshot) notification.Event,
) (*ReservationResult, error) {
	var (
		res      *reservation.Reservation
		activity *shared.ActivitySnapshot
		prev     reservation.Status
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().GetForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		prev = r.Status()

		if err := apply(r); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), r); err != nil {
			return err
		}

		a, err := tx.Activities().GetByID(ctx, tx.DB(), r.ActivityID())
		if err != nil {
			return err
		}
		res, activity = r, a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("reservation status changed",
		slog.String("reservation_id", res.ID().String()),
		slog.String("from", prev.String()),
		slog.String("to", res.Status().String()))

	uc.dispatcher.Dispatch(ctx, event(res, activity))

	return &ReservationResult{ID: res.ID(), Status: res.Status()}, nil
}
