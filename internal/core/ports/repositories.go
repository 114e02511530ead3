package ports

import (
	"context"

	"taskcollab/internal/core/domain"
)

type UserRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// TaskFilter narrows a task listing. A zero MemberID lists every task.
type TaskFilter struct {
	MemberID string
	// PendingInvitationsFor attaches that user's PENDING invitations to each task.
	PendingInvitationsFor string
}

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	FindByID(ctx context.Context, id string) (domain.Task, error)
	FindDetails(ctx context.Context, id string) (domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	// Delete removes the task with its sub-tasks, invitations and memberships.
	Delete(ctx context.Context, id string) error
}

type InvitationRepository interface {
	// Upsert leaves exactly one PENDING invitation for (task, invited user).
	Upsert(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error)
	FindByID(ctx context.Context, id string) (domain.Invitation, error)
	// Resolve moves a PENDING invitation to status and, when accepted, adds the
	// invited user to the task members. It fails with ErrInvitationNotPending
	// when the invitation is no longer PENDING.
	Resolve(ctx context.Context, id string, status domain.InvitationStatus) (domain.Invitation, error)
}

type SubTaskRepository interface {
	Create(ctx context.Context, subTask domain.SubTask) (domain.SubTask, error)
	FindByID(ctx context.Context, id string) (domain.SubTask, error)
	Update(ctx context.Context, id string, input domain.UpdateSubTaskInput) (domain.SubTask, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	// MarkRead fails with ErrNotificationNotFound unless the notification
	// exists and belongs to userID.
	MarkRead(ctx context.Context, id, userID string) (domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
}
