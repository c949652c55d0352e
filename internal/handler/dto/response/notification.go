package response

import (
	"coach-booking-api/internal/usecase/notify"
	"coach-booking-api/internal/usecase/queries"
)

type NotificationResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Message           string  `json:"message"`
	Type              string  `json:"type"`
	Read              bool    `json:"read"`
	RelatedEntityType *string `json:"related_entity_type,omitempty"`
	RelatedEntityID   *string `json:"related_entity_id,omitempty"`
	CreatedAt         int64   `json:"created_at"`
}

func FromNotificationList(items []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, len(items))
	for i, v := range items {
		resp := &NotificationResponse{
			ID:                v.ID.String(),
			Title:             v.Title,
			Message:           v.Message,
			Type:              v.Type,
			Read:              v.Read,
			RelatedEntityType: v.RelatedEntityType,
			CreatedAt:         v.CreatedAt.Unix(),
		}
		if v.RelatedEntityID != nil {
			id := v.RelatedEntityID.String()
			resp.RelatedEntityID = &id
		}
		out[i] = resp
	}
	return out
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type ContactResponse struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

func FromDispatchResult(r notify.Result) *ContactResponse {
	return &ContactResponse{Delivered: r.Created, Failed: r.Failed}
}
