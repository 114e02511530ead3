package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether s is one of the known statuses. Any status may follow
// any other; there is no transition graph.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	CreatorID   string
	Creator     *UserSummary
	Members     []UserSummary
	SubTasks    []SubTask
	Invitations []Invitation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasMember reports whether userID is the creator or an assigned member.
func (t Task) HasMember(userID string) bool {
	if t.CreatorID == userID {
		return true
	}
	for _, member := range t.Members {
		if member.ID == userID {
			return true
		}
	}
	return false
}

// CanManage reports whether caller may update, delete or invite to the task.
func (t Task) CanManage(caller Caller) bool {
	return caller.IsAdmin() || t.CreatorID == caller.ID
}

// CanView reports whether caller may read the task details.
func (t Task) CanView(caller Caller) bool {
	return caller.IsAdmin() || t.HasMember(caller.ID)
}

type CreateTaskInput struct {
	Title       string
	Description *string
}

// UpdateTaskInput carries only the fields supplied by the caller.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Status == nil
}
