package commands

import (
	"context"
	"log/slog"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/domain/notification"
	domreview "coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/pkg/clock"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/pkg/patch"
	"coach-booking-api/internal/usecase/notify"
	"coach-booking-api/internal/usecase/rating"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrActivityCoachMismatch = errs.Class("activity is not run by this coach", errs.ErrValidation)

type CreateReviewInput struct {
	ActivityID uuid.UUID
	Rating     int
	Comment    string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewResult struct {
	ID         uuid.UUID
	ActivityID uuid.UUID
	CoachID    uuid.UUID
	Rating     int
}

type ReviewCommands interface {
	Create(ctx context.Context, actor authz.Actor, in CreateReviewInput) (*ReviewResult, error)
	AddCoachReview(ctx context.Context, actor authz.Actor, coachID uuid.UUID, in CreateReviewInput) (*ReviewResult, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, in UpdateReviewInput) (*ReviewResult, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow        shared.UnitOfWork
	aggregator *rating.Aggregator
	dispatcher notify.Dispatcher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReviewCommands(
	uow shared.UnitOfWork,
	aggregator *rating.Aggregator,
	dispatcher notify.Dispatcher,
	clk clock.Clock,
	logger *slog.Logger,
) ReviewCommands {
	return &reviewCommandsImpl{
		uow:        uow,
		aggregator: aggregator,
		dispatcher: dispatcher,
		clock:      clk,
		logger:     logger,
	}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, actor authz.Actor, in CreateReviewInput) (*ReviewResult, error) {
	return uc.create(ctx, actor, in, nil)
}

// AddCoachReview is the coach-scoped entry point. It shares the workflow of
// Create so both aggregates move together.
func (uc *reviewCommandsImpl) AddCoachReview(ctx context.Context, actor authz.Actor, coachID uuid.UUID, in CreateReviewInput) (*ReviewResult, error) {
	return uc.create(ctx, actor, in, &coachID)
}

func (uc *reviewCommandsImpl) create(ctx context.Context, actor authz.Actor, in CreateReviewInput, expectCoach *uuid.UUID) (*ReviewResult, error) {
	if actor.IsZero() {
		return nil, authz.ErrForbidden
	}

	// Validate before opening a transaction.
	if _, err := domreview.NewRating(in.Rating); err != nil {
		return nil, err
	}
	if _, err := domreview.NewComment(in.Comment); err != nil {
		return nil, err
	}

	var (
		rev      *domreview.Review
		activity *shared.ActivitySnapshot
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if expectCoach != nil {
			a, err := tx.Activities().GetByID(ctx, tx.DB(), in.ActivityID)
			if err != nil {
				return err
			}
			if a.CoachID != *expectCoach {
				return ErrActivityCoachMismatch
			}
			activity = a
		}

		completed, err := tx.Reservations().ListCompletedForUpdate(ctx, tx.DB(), actor.ID, in.ActivityID)
		if err != nil {
			return err
		}
		if len(completed) == 0 {
			return domreview.ErrNotEligible
		}

		// a second review is a duplicate even once every reservation is marked reviewed
		exists, err := tx.Reviews().ExistsForMemberActivity(ctx, tx.DB(), actor.ID, in.ActivityID)
		if err != nil {
			return err
		}
		if exists {
			return domreview.ErrAlreadyReviewed
		}

		eligible := false
		for _, r := range completed {
			if r.IsReviewable() {
				eligible = true
				break
			}
		}
		if !eligible {
			return domreview.ErrNotEligible
		}

		if activity == nil {
			if activity, err = tx.Activities().GetByID(ctx, tx.DB(), in.ActivityID); err != nil {
				return err
			}
		}

		now := uc.clock.Now()
		r, err := domreview.NewReview(uuid.Nil, actor.ID, activity.ID, activity.CoachID, in.Rating, in.Comment, now)
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, tx.DB(), r); err != nil {
			return err
		}

		if err := uc.aggregator.RecomputeForActivity(ctx, tx, r.ActivityID(), r.CoachID()); err != nil {
			return err
		}

		if _, err := tx.Reservations().MarkReviewed(ctx, tx.DB(), actor.ID, activity.ID, now); err != nil {
			return err
		}
		rev = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, notification.NewReviewEvent(rev.ID(), rev.CoachID(), activity.Title, rev.Rating().Value()))

	uc.logger.Info("review created",
		slog.String("review_id", rev.ID().String()),
		slog.String("activity_id", rev.ActivityID().String()),
		slog.Int("rating", rev.Rating().Value()))

	return toReviewResult(rev), nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, in UpdateReviewInput) (*ReviewResult, error) {
	var rev *domreview.Review
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reviews().GetByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, r.MemberID(), authz.OwnerOnly); err != nil {
			return err
		}

		rt, err := domreview.NewRating(patch.Coalesce(in.Rating, r.Rating().Value()))
		if err != nil {
			return err
		}
		cm, err := domreview.NewComment(patch.Coalesce(in.Comment, r.Comment().String()))
		if err != nil {
			return err
		}
		r.Edit(rt, cm, uc.clock.Now())

		if err := tx.Reviews().Update(ctx, tx.DB(), r); err != nil {
			return err
		}
		if err := uc.aggregator.RecomputeForActivity(ctx, tx, r.ActivityID(), r.CoachID()); err != nil {
			return err
		}
		rev = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReviewResult(rev), nil
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reviews().GetByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, r.MemberID(), authz.OwnerOnly); err != nil {
			return err
		}
		if err := tx.Reviews().Delete(ctx, tx.DB(), id); err != nil {
			return err
		}
		return uc.aggregator.RecomputeForActivity(ctx, tx, r.ActivityID(), r.CoachID())
	})
}

func toReviewResult(r *domreview.Review) *ReviewResult {
	return &ReviewResult{
		ID:         r.ID(),
		ActivityID: r.ActivityID(),
		CoachID:    r.CoachID(),
		Rating:     r.Rating().Value(),
	}
}
