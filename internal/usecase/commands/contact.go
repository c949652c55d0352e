package commands

import (
	"context"
	"net/mail"
	"strings"

	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/usecase/notify"
)

var (
	ErrContactFieldsRequired = errs.Class("name, email, subject and message are required", errs.ErrValidation)
	ErrContactInvalidEmail   = errs.Class("invalid contact email", errs.ErrValidation)
)

type ContactMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ContactCommands interface {
	Submit(ctx context.Context, in ContactMessageInput) (notify.Result, error)
}

type contactCommandsImpl struct {
	dispatcher notify.Dispatcher
}

func NewContactCommands(dispatcher notify.Dispatcher) ContactCommands {
	return &contactCommandsImpl{dispatcher: dispatcher}
}

// Submit alerts every admin. The message body itself is not stored.
func (uc *contactCommandsImpl) Submit(ctx context.Context, in ContactMessageInput) (notify.Result, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	subject := strings.TrimSpace(in.Subject)
	if name == "" || email == "" || subject == "" || strings.TrimSpace(in.Message) == "" {
		return notify.Result{}, ErrContactFieldsRequired
	}
	// ParseAddress also accepts "Name <addr>" forms; only a bare address is allowed.
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return notify.Result{}, ErrContactInvalidEmail
	}

	return uc.dispatcher.Dispatch(ctx, notification.ContactMessageEvent(name, email, subject)), nil
}
