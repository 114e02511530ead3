package mapper

import (
	"time"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/core/domain"
)

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	return dto.NotificationItem{
		ID:                  notification.ID,
		UserID:              notification.UserID,
		Message:             notification.Message,
		IsRead:              notification.IsRead,
		RelatedTaskID:       copyString(notification.RelatedTaskID),
		RelatedInvitationID: copyString(notification.RelatedInvitationID),
		Type:                string(notification.Type),
		CreatedAt:           notification.CreatedAt.Format(time.RFC3339),
	}
}
