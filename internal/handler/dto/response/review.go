package response

import (
	"coach-booking-api/internal/usecase/queries"
)

type ReviewResponse struct {
	ID            string  `json:"id"`
	MemberID      string  `json:"member_id"`
	MemberEmail   string  `json:"member_email"`
	ActivityID    string  `json:"activity_id"`
	ActivityTitle string  `json:"activity_title"`
	CoachID       string  `json:"coach_id"`
	Rating        int32   `json:"rating"`
	Comment       *string `json:"comment,omitempty"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            v.ID.String(),
		MemberID:      v.MemberID.String(),
		MemberEmail:   v.MemberEmail,
		ActivityID:    v.ActivityID.String(),
		ActivityTitle: v.ActivityTitle,
		CoachID:       v.CoachID.String(),
		Rating:        v.Rating,
		Comment:       v.Comment,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID          string  `json:"id"`
	MemberEmail string  `json:"member_email"`
	Rating      int32   `json:"rating"`
	Comment     *string `json:"comment,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

type ReviewListResponse struct {
	Items      []*ReviewListItemResponse `json:"items"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewListResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:          it.ID.String(),
			MemberEmail: it.MemberEmail,
			Rating:      it.Rating,
			Comment:     it.Comment,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return &ReviewListResponse{Items: res, NextCursor: cursorString(next)}
}

type RatingResponse struct {
	TargetID     string  `json:"target_id"`
	Rating       float64 `json:"rating"`
	ReviewsCount int32   `json:"reviews_count"`
}

func FromRatingView(v *queries.RatingView) *RatingResponse {
	return &RatingResponse{
		TargetID:     v.TargetID.String(),
		Rating:       v.Rating,
		ReviewsCount: v.ReviewsCount,
	}
}
