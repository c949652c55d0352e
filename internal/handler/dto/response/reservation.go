package response

import (
	"coach-booking-api/internal/usecase/queries"
)

type ReservationResponse struct {
	ID            string `json:"id"`
	MemberID      string `json:"member_id"`
	ActivityID    string `json:"activity_id"`
	ActivityTitle string `json:"activity_title"`
	CoachID       string `json:"coach_id"`
	DayOfWeek     string `json:"day_of_week"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	Reviewed      bool   `json:"reviewed"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            v.ID.String(),
		MemberID:      v.MemberID.String(),
		ActivityID:    v.ActivityID.String(),
		ActivityTitle: v.ActivityTitle,
		CoachID:       v.CoachID.String(),
		DayOfWeek:     v.DayOfWeek,
		Date:          v.Date,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		Status:        v.Status,
		Reviewed:      v.Reviewed,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
}

type ReservationListItemResponse struct {
	ID            string `json:"id"`
	ActivityID    string `json:"activity_id"`
	ActivityTitle string `json:"activity_title"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	Reviewed      bool   `json:"reviewed"`
	CreatedAt     int64  `json:"created_at"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor string                         `json:"next_cursor,omitempty"`
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	out := make([]*ReservationListItemResponse, len(items))
	for i, it := range items {
		out[i] = &ReservationListItemResponse{
			ID:            it.ID.String(),
			ActivityID:    it.ActivityID.String(),
			ActivityTitle: it.ActivityTitle,
			Date:          it.Date,
			StartTime:     it.StartTime,
			EndTime:       it.EndTime,
			Status:        it.Status,
			Reviewed:      it.Reviewed,
			CreatedAt:     it.CreatedAt.Unix(),
		}
	}
	return &ReservationListResponse{Items: out, NextCursor: cursorString(next)}
}

func cursorString(c *queries.Cursor) string {
	if c == nil {
		return ""
	}
	return c.After
}
