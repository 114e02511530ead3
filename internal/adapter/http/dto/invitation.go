package dto

type InvitationItem struct {
	ID              string       `json:"id"`
	TaskID          string       `json:"taskId"`
	InvitedUserID   string       `json:"invitedUserId"`
	InvitedByUserID string       `json:"invitedByUserId"`
	InvitedByUser   *UserSummary `json:"invitedByUser,omitempty"`
	Status          string       `json:"status"`
	CreatedAt       string       `json:"createdAt"`
	UpdatedAt       string       `json:"updatedAt"`
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type InviteResponse struct {
	Message    string         `json:"message"`
	Invitation InvitationItem `json:"invitation"`
}

type RespondInvitationRequest struct {
	Action string `json:"action" binding:"required"`
}
