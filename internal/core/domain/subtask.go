package domain

import "time"

type SubTask struct {
	ID             string
	TaskID         string
	Title          string
	Description    *string
	AssignedUserID string
	AssignedUser   *UserSummary
	Status         TaskStatus
	DueDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateSubTaskInput struct {
	Title          string
	Description    *string
	AssignedUserID string
	DueDate        *time.Time
}

type UpdateSubTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	DueDate     *time.Time
}
