//go:build unit

package rating_test

import (
	"testing"

	"coach-booking-api/internal/domain/rating"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name    string
		ratings []int
		want    rating.Aggregate
	}{
		{name: "no reviews yields zero without dividing", ratings: nil, want: rating.Aggregate{}},
		{name: "single review", ratings: []int{4}, want: rating.Aggregate{Rating: 4, ReviewsCount: 1}},
		{name: "two reviews average", ratings: []int{2, 4}, want: rating.Aggregate{Rating: 3, ReviewsCount: 2}},
		{name: "fractional mean", ratings: []int{5, 4, 4}, want: rating.Aggregate{Rating: 13.0 / 3.0, ReviewsCount: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rating.Compute(tc.ratings)
			assert.Equal(t, tc.want.ReviewsCount, got.ReviewsCount)
			assert.InDelta(t, tc.want.Rating, got.Rating, 1e-9)
		})
	}
}

func TestScope(t *testing.T) {
	assert.True(t, rating.ScopeActivity.IsValid())
	assert.True(t, rating.ScopeCoach.IsValid())
	assert.False(t, rating.Scope("user").IsValid())
}
