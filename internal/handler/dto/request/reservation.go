package request

import (
	"coach-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ActivityID uuid.UUID `json:"activity_id" binding:"required"`
	DayOfWeek  string    `json:"day_of_week" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTime  string    `json:"start_time" binding:"required"`
	EndTime    string    `json:"end_time" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ActivityID: r.ActivityID,
		DayOfWeek:  r.DayOfWeek,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
