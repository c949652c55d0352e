package request

import (
	"coach-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// Rating bounds are enforced by the domain so the error message stays the same
// for every entry point.
type CreateReviewRequest struct {
	ActivityID uuid.UUID `json:"activity_id" binding:"required"`
	Rating     int       `json:"rating" binding:"required"`
	Comment    string    `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (r CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		ActivityID: r.ActivityID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (r UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{Rating: r.Rating, Comment: r.Comment}
}
