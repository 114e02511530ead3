package ports

import (
	"context"

	"taskcollab/internal/core/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenIssuer interface {
	Issue(user domain.User) (domain.TokenPair, error)
}

type TokenVerifier interface {
	VerifyAccessToken(token string) (domain.Caller, error)
}

// Notifier delivers notifications on a best-effort basis. Notify never
// blocks the caller and never reports a failure.
type Notifier interface {
	Notify(notification domain.NewNotification)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.Session, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
}

type UserService interface {
	Profile(ctx context.Context, caller domain.Caller) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UserTasks(ctx context.Context, userID string) ([]domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, caller domain.Caller, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, caller domain.Caller, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, caller domain.Caller, taskID string) error
	ListTasks(ctx context.Context, caller domain.Caller) ([]domain.Task, error)
	GetTask(ctx context.Context, caller domain.Caller, taskID string) (domain.Task, error)
}

type InvitationService interface {
	Invite(ctx context.Context, caller domain.Caller, taskID, email string) (domain.Invitation, error)
	Respond(ctx context.Context, caller domain.Caller, invitationID string, action domain.InvitationAction) (domain.Invitation, error)
}

type SubTaskService interface {
	CreateSubTask(ctx context.Context, caller domain.Caller, taskID string, input domain.CreateSubTaskInput) (domain.SubTask, error)
	UpdateSubTask(ctx context.Context, caller domain.Caller, subTaskID string, input domain.UpdateSubTaskInput) (domain.SubTask, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, caller domain.Caller) ([]domain.Notification, error)
	MarkRead(ctx context.Context, caller domain.Caller, notificationID string) (domain.Notification, error)
	UnreadCount(ctx context.Context, caller domain.Caller) (int, error)
}
