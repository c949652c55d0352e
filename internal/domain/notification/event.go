package notification

import (
	"fmt"

	"coach-booking-api/internal/domain/reservation"

	"github.com/google/uuid"
)

type policyKind int

const (
	policySingle policyKind = iota
	policyAllAdmins
	policyAdminsAnd
)

// RecipientPolicy decides who receives an event.
type RecipientPolicy struct {
	kind   policyKind
	userID uuid.UUID
}

func Single(userID uuid.UUID) RecipientPolicy {
	return RecipientPolicy{kind: policySingle, userID: userID}
}

func AllAdmins() RecipientPolicy {
	return RecipientPolicy{kind: policyAllAdmins}
}

// AdminsAnd targets every admin plus userID, once each.
func AdminsAnd(userID uuid.UUID) RecipientPolicy {
	return RecipientPolicy{kind: policyAdminsAnd, userID: userID}
}

func (p RecipientPolicy) NeedsAdmins() bool {
	return p.kind != policySingle
}

// Resolve expands the policy against the current admin ids. The result has no
// duplicates and never contains uuid.Nil.
func (p RecipientPolicy) Resolve(adminIDs []uuid.UUID) []uuid.UUID {
	var candidates []uuid.UUID
	switch p.kind {
	case policySingle:
		candidates = []uuid.UUID{p.userID}
	case policyAllAdmins:
		candidates = adminIDs
	case policyAdminsAnd:
		candidates = append([]uuid.UUID{p.userID}, adminIDs...)
	}

	seen := make(map[uuid.UUID]struct{}, len(candidates))
	out := make([]uuid.UUID, 0, len(candidates))
	for _, id := range candidates {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

type Event struct {
	Type       Type
	Title      string
	Message    string
	Related    *Related
	Recipients RecipientPolicy
}

func NewReviewEvent(reviewID, coachID uuid.UUID, activityTitle string, rating int) Event {
	return Event{
		Type:       TypeReview,
		Title:      "New review",
		Message:    fmt.Sprintf("%q received a %d-star review.", activityTitle, rating),
		Related:    RelatedTo(EntityReview, reviewID),
		Recipients: AdminsAnd(coachID),
	}
}

func ContactMessageEvent(name, email, subject string) Event {
	return Event{
		Type:       TypeContact,
		Title:      "New contact message",
		Message:    fmt.Sprintf("%s <%s>: %s", name, email, subject),
		Recipients: AllAdmins(),
	}
}

// ReservationDecisionEvent tells the member about a status set by staff.
func ReservationDecisionEvent(reservationID, memberID uuid.UUID, activityTitle string, status reservation.Status) Event {
	return Event{
		Type:       TypeReservation,
		Title:      fmt.Sprintf("Reservation %s", status),
		Message:    fmt.Sprintf("Your reservation for %q is now %s.", activityTitle, status),
		Related:    RelatedTo(EntityReservation, reservationID),
		Recipients: Single(memberID),
	}
}

func NewReservationEvent(reservationID, coachID uuid.UUID, activityTitle, date string) Event {
	return Event{
		Type:       TypeNewReservation,
		Title:      "New reservation",
		Message:    fmt.Sprintf("%q was booked for %s.", activityTitle, date),
		Related:    RelatedTo(EntityReservation, reservationID),
		Recipients: Single(coachID),
	}
}

func ReservationCancelledEvent(reservationID, recipientID uuid.UUID, activityTitle string) Event {
	return Event{
		Type:       TypeReservation,
		Title:      "Reservation cancelled",
		Message:    fmt.Sprintf("The reservation for %q was cancelled.", activityTitle),
		Related:    RelatedTo(EntityReservation, reservationID),
		Recipients: Single(recipientID),
	}
}

func ReservationCompletedEvent(reservationID, memberID uuid.UUID, activityTitle string) Event {
	return Event{
		Type:       TypeReservation,
		Title:      "Session completed",
		Message:    fmt.Sprintf("Your session %q is complete. You can now leave a review.", activityTitle),
		Related:    RelatedTo(EntityReservation, reservationID),
		Recipients: Single(memberID),
	}
}
