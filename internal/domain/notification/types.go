package notification

import (
	"coach-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidType = errs.Class("invalid notification type", errs.ErrValidation)

type Type string

const (
	TypeReservation    Type = "reservation"
	TypeSystem         Type = "system"
	TypePromotion      Type = "promotion"
	TypeContact        Type = "contact"
	TypeReview         Type = "review"
	TypeNewReservation Type = "new_reservation"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeReservation, TypeSystem, TypePromotion, TypeContact, TypeReview, TypeNewReservation:
		return true
	}
	return false
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Entity kinds a notification can point at.
const (
	EntityReservation = "reservation"
	EntityReview      = "review"
	EntityActivity    = "activity"
)

// Related points at the entity a notification is about.
type Related struct {
	EntityType string
	EntityID   uuid.UUID
}

func RelatedTo(entityType string, id uuid.UUID) *Related {
	return &Related{EntityType: entityType, EntityID: id}
}
