package dto

type TaskItem struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   *string          `json:"description"`
	Status        string           `json:"status"`
	CreatorID     string           `json:"creatorId"`
	Creator       *UserSummary     `json:"creator,omitempty"`
	AssignedUsers []UserSummary    `json:"assignedUsers"`
	SubTasks      []SubTaskItem    `json:"subTasks"`
	Invitations   []InvitationItem `json:"invitations"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
