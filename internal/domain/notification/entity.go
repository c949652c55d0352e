package notification

import (
	"strings"
	"time"

	"coach-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingRecipient = errs.Class("notification recipient is required", errs.ErrValidation)
	ErrEmptyTitle       = errs.Class("notification title is required", errs.ErrValidation)
	ErrNotFound         = errs.Class("notification not found", errs.ErrNotFound)
)

type Notification struct {
	id          uuid.UUID
	recipientID uuid.UUID
	title       string
	message     string
	typ         Type
	related     *Related
	read        bool
	createdAt   time.Time
}

func NewNotification(recipientID uuid.UUID, typ Type, title, message string, related *Related, now time.Time) (*Notification, error) {
	if recipientID == uuid.Nil {
		return nil, ErrMissingRecipient
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Notification{
		id:          uuid.New(),
		recipientID: recipientID,
		title:       title,
		message:     message,
		typ:         typ,
		related:     related,
		createdAt:   now,
	}, nil
}

func ReconstructNotification(id, recipientID uuid.UUID, typ Type, title, message string, related *Related, read bool, createdAt time.Time) *Notification {
	return &Notification{
		id:          id,
		recipientID: recipientID,
		title:       title,
		message:     message,
		typ:         typ,
		related:     related,
		read:        read,
		createdAt:   createdAt,
	}
}

// MarkRead reports whether the flag changed.
func (n *Notification) MarkRead() bool {
	if n.read {
		return false
	}
	n.read = true
	return true
}

func (n *Notification) ID() uuid.UUID          { return n.id }
func (n *Notification) RecipientID() uuid.UUID { return n.recipientID }
func (n *Notification) Title() string          { return n.title }
func (n *Notification) Message() string        { return n.message }
func (n *Notification) Type() Type             { return n.typ }
func (n *Notification) Related() *Related      { return n.related }
func (n *Notification) IsRead() bool           { return n.read }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }
