//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/domain/rating"
	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/pkg/patch"
	"coach-booking-api/internal/usecase/commands"
	ratinguc "coach-booking-api/internal/usecase/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewCommands(f *fixture) commands.ReviewCommands {
	return commands.NewReviewCommands(f.store, ratinguc.NewAggregator(), f.dispatcher, f.clock, f.logger)
}

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: first review sets both aggregates", func(t *testing.T) {
		f := newFixture(t)
		uc := newReviewCommands(f)
		res := f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)

		result, err := uc.Create(ctx, f.member, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 4, Comment: "Solid class"})
		require.NoError(t, err)
		assert.Equal(t, f.coach.ID, result.CoachID)
		assert.Equal(t, 4, result.Rating)

		assert.Equal(t, rating.Aggregate{Rating: 4, ReviewsCount: 1}, f.store.ActivityAggregate(f.activityID))
		coachAgg, ok := f.store.CoachAggregate(f.coach.ID)
		require.True(t, ok)
		assert.Equal(t, rating.Aggregate{Rating: 4, ReviewsCount: 1}, coachAgg)

		stored, _ := f.store.Reservation(res.ID())
		assert.True(t, stored.Reviewed())
	})

	t.Run("success: coach and admins are notified", func(t *testing.T) {
		f := newFixture(t)
		uc := newReviewCommands(f)
		f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)

		_, err := uc.Create(ctx, f.member, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 5})
		require.NoError(t, err)

		for _, id := range []uuid.UUID{f.coach.ID, f.admin.ID} {
			inbox := f.store.NotificationsFor(id)
			require.Len(t, inbox, 1)
			assert.Equal(t, notification.TypeReview, inbox[0].Type())
		}
		require.Len(t, f.broadcaster.hints, 1)
		assert.ElementsMatch(t, []uuid.UUID{f.coach.ID, f.admin.ID}, f.broadcaster.hints[0].Recipients)
	})

	t.Run("success: ratings from two members average", func(t *testing.T) {
		f := newFixture(t)
		uc := newReviewCommands(f)
		f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)
		f.reservationIn(t, f.stranger.ID, f.activityID, reservation.StatusCompleted)

		_, err := uc.Create(ctx, f.member, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 2})
		require.NoError(t, err)
		_, err = uc.Create(ctx, f.stranger, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 4})
		require.NoError(t, err)

		assert.Equal(t, rating.Aggregate{Rating: 3, ReviewsCount: 2}, f.store.ActivityAggregate(f.activityID))
	})

	t.Run("success: coach rating spans activities", func(t *testing.T) {
		f := newFixture(t)
		uc := newReviewCommands(f)
		second := f.store.AddActivity(f.coach.ID, "Evening Pilates")
		f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)
		f.reservationIn(t, f.member.ID, second, reservation.StatusCompleted)

		_, err := uc.Create(ctx, f.member, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 5})
		require.NoError(t, err)
		_, err = uc.Create(ctx, f.member, commands.CreateReviewInput{ActivityID: second, Rating: 2})
		require.NoError(t, err)

		coachAgg, _ := f.store.CoachAggregate(f.coach.ID)
		assert.Equal(t, rating.Aggregate{Rating: 3.5, ReviewsCount: 2}, coachAgg)
		assert.Equal(t, rating.Aggregate{Rating: 2, ReviewsCount: 1}, f.store.ActivityAggregate(second))
	})

	testCases := []struct {
		name        string
		setup       func(t *testing.T, f *fixture)
		input       func(f *fixture) commands.CreateReviewInput
		expectError error
		expectClass error
	}{
		{
			name: "error: rating out of range",
			setup: func(t *testing.T, f *fixture) {
				f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)
			},
			input: func(f *fixture) commands.CreateReviewInput {
				return commands.CreateReviewInput{ActivityID: f.activityID, Rating: 6}
			},
			expectError: review.ErrInvalidRating,
		},
		{
			name:  "error: no reservation at all",
			setup: func(t *testing.T, f *fixture) {},
			input: func(f *fixture) commands.CreateReviewInput {
				return commands.CreateReviewInput{ActivityID: f.activityID, Rating: 5}
			},
			expectError: review.ErrNotEligible,
		},
		{
			name: "error: reservation only confirmed",
			setup: func(t *testing.T, f *fixture) {
				f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusConfirmed)
			},
			input: func(f *fixture) commands.CreateReviewInput {
				return commands.CreateReviewInput{ActivityID: f.activityID, Rating: 5}
			},
			expectError: review.ErrNotEligible,
		},
		{
			name: "error: another member's completed reservation does not count",
			setup: func(t *testing.T, f *fixture) {
				f.reservationIn(t, f.stranger.ID, f.activityID, reservation.StatusCompleted)
			},
			input: func(f *fixture) commands.CreateReviewInput {
				return commands.CreateReviewInput{ActivityID: f.activityID, Rating: 5}
			},
			expectError: review.ErrNotEligible,
		},
		{
			name: "error: second review for the same activity",
			setup: func(t *testing.T, f *fixture) {
				f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)
				_, err := newReviewCommands(f).Create(context.Background(), f.member, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 5})
				require.NoError(t, err)
				// A later completed booking makes the member eligible again.
				f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)
			},
			input: func(f *fixture) commands.CreateReviewInput {
				return commands.CreateReviewInput{ActivityID: f.activityID, Rating: 1}
			},
			expectClass: errs.ErrDuplicateReview,
		},
		{
			name: "error: repeat review after the only reservation was marked reviewed",
			setup: func(t *testing.T, f *fixture) {
				f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)
				_, err := newReviewCommands(f).Create(context.Background(), f.member, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 5})
				require.NoError(t, err)
			},
			input: func(f *fixture) commands.CreateReviewInput {
				return commands.CreateReviewInput{ActivityID: f.activityID, Rating: 2}
			},
			expectError: review.ErrAlreadyReviewed,
			expectClass: errs.ErrDuplicateReview,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			uc := newReviewCommands(f)
			tc.setup(t, f)
			before := f.store.ReviewCount()

			_, err := uc.Create(ctx, f.member, tc.input(f))

			require.Error(t, err)
			if tc.expectError != nil {
				require.ErrorIs(t, err, tc.expectError)
			}
			if tc.expectClass != nil {
				assert.True(t, errs.Is(err, tc.expectClass), "unexpected error: %v", err)
			}
			assert.Equal(t, before, f.store.ReviewCount())
		})
	}
}

func TestReviewCommands_AddCoachReview(t *testing.T) {
	ctx := context.Background()

	t.Run("success: activity belongs to the coach", func(t *testing.T) {
		f := newFixture(t)
		uc := newReviewCommands(f)
		f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)

		result, err := uc.AddCoachReview(ctx, f.member, f.coach.ID, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 3})
		require.NoError(t, err)
		assert.Equal(t, f.coach.ID, result.CoachID)
	})

	t.Run("error: activity run by someone else", func(t *testing.T) {
		f := newFixture(t)
		uc := newReviewCommands(f)
		f.reservationIn(t, f.member.ID, f.activityID, reservation.StatusCompleted)
		otherCoach := f.store.AddUser(user.RoleCoach, "coach2@example.com")

		_, err := uc.AddCoachReview(ctx, f.member, otherCoach, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 3})
		require.ErrorIs(t, err, commands.ErrActivityCoachMismatch)
		assert.Equal(t, 0, f.store.ReviewCount())
	})
}

// =============================================================================
// Update / Delete Review Tests
// =============================================================================

func reviewedFixture(t *testing.T, ratings ...int) (*fixture, []*commands.ReviewResult) {
	t.Helper()
	f := newFixture(t)
	uc := newReviewCommands(f)
	members := []authz.Actor{f.member, f.stranger}

	var out []*commands.ReviewResult
	for i, v := range ratings {
		m := members[i]
		f.reservationIn(t, m.ID, f.activityID, reservation.StatusCompleted)
		f.clock.Add(time.Second)
		res, err := uc.Create(context.Background(), m, commands.CreateReviewInput{ActivityID: f.activityID, Rating: v})
		require.NoError(t, err)
		out = append(out, res)
	}
	return f, out
}

func TestReviewCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner edits rating and aggregates follow", func(t *testing.T) {
		f, reviews := reviewedFixture(t, 2, 4)
		uc := newReviewCommands(f)

		result, err := uc.Update(ctx, f.member, reviews[0].ID, commands.UpdateReviewInput{Rating: patch.Ptr(4)})
		require.NoError(t, err)
		assert.Equal(t, 4, result.Rating)
		assert.Equal(t, rating.Aggregate{Rating: 4, ReviewsCount: 2}, f.store.ActivityAggregate(f.activityID))
	})

	t.Run("success: comment only keeps rating", func(t *testing.T) {
		f, reviews := reviewedFixture(t, 2)
		uc := newReviewCommands(f)

		result, err := uc.Update(ctx, f.member, reviews[0].ID, commands.UpdateReviewInput{Comment: patch.Ptr("Better than I thought")})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Rating)
	})

	t.Run("error: only the author may edit", func(t *testing.T) {
		f, reviews := reviewedFixture(t, 2)
		uc := newReviewCommands(f)

		_, err := uc.Update(ctx, f.admin, reviews[0].ID, commands.UpdateReviewInput{Rating: patch.Ptr(5)})
		require.ErrorIs(t, err, authz.ErrForbidden)
		assert.Equal(t, rating.Aggregate{Rating: 2, ReviewsCount: 1}, f.store.ActivityAggregate(f.activityID))
	})

	t.Run("error: invalid rating leaves review untouched", func(t *testing.T) {
		f, reviews := reviewedFixture(t, 2)
		uc := newReviewCommands(f)

		_, err := uc.Update(ctx, f.member, reviews[0].ID, commands.UpdateReviewInput{Rating: patch.Ptr(0)})
		require.ErrorIs(t, err, review.ErrInvalidRating)
	})

	t.Run("error: unknown review", func(t *testing.T) {
		f := newFixture(t)
		uc := newReviewCommands(f)

		_, err := uc.Update(ctx, f.member, uuid.New(), commands.UpdateReviewInput{})
		require.ErrorIs(t, err, review.ErrNotFound)
	})
}

// The coach scope is keyed by the coach stored on each review, not by whoever
// runs the activity today.
func TestReviewCommands_CoachScopeFollowsReviewCoach(t *testing.T) {
	ctx := context.Background()
	f, reviews := reviewedFixture(t, 2)
	uc := newReviewCommands(f)
	newCoach := f.store.AddUser(user.RoleCoach, "coach2@example.com")
	f.store.ReassignActivity(f.activityID, newCoach)

	_, err := uc.Update(ctx, f.member, reviews[0].ID, commands.UpdateReviewInput{Rating: patch.Ptr(4)})
	require.NoError(t, err)
	oldAgg, _ := f.store.CoachAggregate(f.coach.ID)
	assert.Equal(t, rating.Aggregate{Rating: 4, ReviewsCount: 1}, oldAgg)
	_, ok := f.store.CoachAggregate(newCoach)
	assert.False(t, ok)

	f.reservationIn(t, f.stranger.ID, f.activityID, reservation.StatusCompleted)
	created, err := uc.Create(ctx, f.stranger, commands.CreateReviewInput{ActivityID: f.activityID, Rating: 2})
	require.NoError(t, err)
	assert.Equal(t, newCoach, created.CoachID)

	newAgg, ok := f.store.CoachAggregate(newCoach)
	require.True(t, ok)
	assert.Equal(t, rating.Aggregate{Rating: 2, ReviewsCount: 1}, newAgg)
	oldAgg, _ = f.store.CoachAggregate(f.coach.ID)
	assert.Equal(t, rating.Aggregate{Rating: 4, ReviewsCount: 1}, oldAgg)
	assert.Equal(t, rating.Aggregate{Rating: 3, ReviewsCount: 2}, f.store.ActivityAggregate(f.activityID))
}

func TestReviewCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deleting recomputes aggregates", func(t *testing.T) {
		f, reviews := reviewedFixture(t, 2, 4)
		uc := newReviewCommands(f)

		require.NoError(t, uc.Delete(ctx, f.stranger, reviews[1].ID))
		assert.Equal(t, rating.Aggregate{Rating: 2, ReviewsCount: 1}, f.store.ActivityAggregate(f.activityID))
		coachAgg, _ := f.store.CoachAggregate(f.coach.ID)
		assert.Equal(t, rating.Aggregate{Rating: 2, ReviewsCount: 1}, coachAgg)
	})

	t.Run("success: deleting the last review resets to zero", func(t *testing.T) {
		f, reviews := reviewedFixture(t, 5)
		uc := newReviewCommands(f)

		require.NoError(t, uc.Delete(ctx, f.member, reviews[0].ID))
		assert.Equal(t, rating.Aggregate{}, f.store.ActivityAggregate(f.activityID))
	})

	t.Run("error: coach cannot delete a member's review", func(t *testing.T) {
		f, reviews := reviewedFixture(t, 5)
		uc := newReviewCommands(f)

		err := uc.Delete(ctx, f.coach, reviews[0].ID)
		require.ErrorIs(t, err, authz.ErrForbidden)
		assert.Equal(t, 1, f.store.ReviewCount())
	})
}
