package converter

import (
	"coach-booking-api/internal/domain/notification"
	sqlc "coach-booking-api/internal/infra/sqlc/generated"
	"coach-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func NotificationToCreateParams(n *notification.Notification) sqlc.CreateNotificationParams {
	params := sqlc.CreateNotificationParams{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		Title:       n.Title(),
		Message:     n.Message(),
		Type:        string(n.Type()),
		Read:        n.IsRead(),
		CreatedAt:   pgconv.TimeToPgtype(n.CreatedAt()),
	}
	if rel := n.Related(); rel != nil {
		params.RelatedEntityType = pgtype.Text{String: rel.EntityType, Valid: true}
		params.RelatedEntityID = pgconv.UUIDPtrToPgtype(&rel.EntityID)
	}
	return params
}

func NotificationFromRow(row sqlc.Notifications) *notification.Notification {
	var related *notification.Related
	if row.RelatedEntityType.Valid && row.RelatedEntityID.Valid {
		related = notification.RelatedTo(row.RelatedEntityType.String, uuid.UUID(row.RelatedEntityID.Bytes))
	}
	return notification.ReconstructNotification(
		row.ID,
		row.RecipientID,
		notification.Type(row.Type),
		row.Title,
		row.Message,
		related,
		row.Read,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
