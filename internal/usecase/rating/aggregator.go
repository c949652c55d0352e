// Package rating keeps the stored rating of activities and coaches equal to
// the mean of their reviews.
package rating

import (
	"context"

	domrating "coach-booking-api/internal/domain/rating"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Recompute must run inside the transaction that changed the reviews. The
// target row stays locked until that transaction ends, so concurrent review
// writes for the same target are applied one after another.
func (a *Aggregator) Recompute(ctx context.Context, tx shared.Tx, scope domrating.Scope, targetID uuid.UUID) (domrating.Aggregate, error) {
	if !scope.IsValid() {
		return domrating.Aggregate{}, domrating.ErrUnknownScope
	}
	target := domrating.Target{Scope: scope, ID: targetID}
	repo := tx.Ratings()

	if err := repo.Lock(ctx, tx.DB(), target); err != nil {
		return domrating.Aggregate{}, err
	}

	ratings, err := repo.Ratings(ctx, tx.DB(), target)
	if err != nil {
		return domrating.Aggregate{}, err
	}

	agg := domrating.Compute(ratings)
	if err := repo.Save(ctx, tx.DB(), target, agg); err != nil {
		return domrating.Aggregate{}, errs.Wrapf(err, "save %s rating", scope)
	}
	return agg, nil
}

// RecomputeForActivity refreshes the activity and then its coach.
func (a *Aggregator) RecomputeForActivity(ctx context.Context, tx shared.Tx, activityID, coachID uuid.UUID) error {
	if _, err := a.Recompute(ctx, tx, domrating.ScopeActivity, activityID); err != nil {
		return err
	}
	_, err := a.Recompute(ctx, tx, domrating.ScopeCoach, coachID)
	return err
}
