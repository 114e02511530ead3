package dto

type SubTaskItem struct {
	ID             string       `json:"id"`
	TaskID         string       `json:"taskId"`
	Title          string       `json:"title"`
	Description    *string      `json:"description"`
	AssignedUserID string       `json:"assignedUserId"`
	AssignedUser   *UserSummary `json:"assignedUser,omitempty"`
	Status         string       `json:"status"`
	DueDate        *string      `json:"dueDate"`
	CreatedAt      string       `json:"createdAt"`
	UpdatedAt      string       `json:"updatedAt"`
}

type CreateSubTaskRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=65535"`
	AssignedUserID string  `json:"assignedUserId" binding:"required"`
	DueDate        *string `json:"dueDate"`
}

type UpdateSubTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}
