package shared

import (
	"coach-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrActivityNotFound = errs.Class("activity not found", errs.ErrNotFound)

// ActivitySnapshot is the slice of an activity the write side needs.
type ActivitySnapshot struct {
	ID      uuid.UUID
	CoachID uuid.UUID
	Title   string
}
