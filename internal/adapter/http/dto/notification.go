package dto

type NotificationItem struct {
	ID                  string  `json:"id"`
	UserID              string  `json:"userId"`
	Message             string  `json:"message"`
	IsRead              bool    `json:"isRead"`
	RelatedTaskID       *string `json:"relatedTaskId"`
	RelatedInvitationID *string `json:"relatedInvitationId"`
	Type                string  `json:"type"`
	CreatedAt           string  `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
