package request

import "coach-booking-api/internal/usecase/commands"

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r ContactMessageRequest) ToInput() commands.ContactMessageInput {
	return commands.ContactMessageInput{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
