// Package authz decides whether an actor may act on a resource.
//
// Every check in the application goes through Allow so that role handling is
// defined once. Evaluation is pure: no I/O, no panics, only allow or deny.
package authz

import (
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrForbidden = errs.Class("action not permitted for actor", errs.ErrForbidden)

type Capability int

const (
	// SelfOrAdmin: the actor owns the resource or is an admin.
	SelfOrAdmin Capability = iota + 1
	// CoachOrAdmin: role based, ownership irrelevant.
	CoachOrAdmin
	AdminOnly
	// OwnerOnly: exact identity match; admins are not exempt.
	OwnerOnly
)

func (c Capability) String() string {
	switch c {
	case SelfOrAdmin:
		return "self-or-admin"
	case CoachOrAdmin:
		return "coach-or-admin"
	case AdminOnly:
		return "admin-only"
	case OwnerOnly:
		return "owner-only"
	default:
		return "unknown"
	}
}

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func NewActor(id uuid.UUID, role user.Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsZero() bool {
	return a.ID == uuid.Nil
}

// Allow evaluates a single capability. owner is ignored by role-only capabilities.
func Allow(actor Actor, owner uuid.UUID, c Capability) bool {
	if actor.IsZero() || !actor.Role.IsValid() {
		return false
	}

	isOwner := owner != uuid.Nil && actor.ID == owner

	switch c {
	case SelfOrAdmin:
		return isOwner || actor.Role.IsAdmin()
	case CoachOrAdmin:
		return actor.Role.IsStaff()
	case AdminOnly:
		return actor.Role.IsAdmin()
	case OwnerOnly:
		return isOwner
	default:
		return false
	}
}

// AllowAny grants access when at least one capability holds.
func AllowAny(actor Actor, owner uuid.UUID, caps ...Capability) bool {
	for _, c := range caps {
		if Allow(actor, owner, c) {
			return true
		}
	}
	return false
}

// Require is Allow for use-case call sites that want an error.
func Require(actor Actor, owner uuid.UUID, caps ...Capability) error {
	if AllowAny(actor, owner, caps...) {
		return nil
	}
	return ErrForbidden
}
