// Package rating holds the pure part of rating aggregation.
package rating

import (
	"coach-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownScope = errs.Class("unknown rating scope", errs.ErrValidation)

type Scope string

const (
	ScopeActivity Scope = "activity"
	ScopeCoach    Scope = "coach"
)

func (s Scope) IsValid() bool {
	return s == ScopeActivity || s == ScopeCoach
}

type Target struct {
	Scope Scope
	ID    uuid.UUID
}

// Aggregate is the derived rating of an activity or coach.
type Aggregate struct {
	Rating       float64
	ReviewsCount int
}

// Compute returns the mean of ratings and their count. No ratings yields zero.
func Compute(ratings []int) Aggregate {
	if len(ratings) == 0 {
		return Aggregate{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return Aggregate{
		Rating:       float64(sum) / float64(len(ratings)),
		ReviewsCount: len(ratings),
	}
}
