package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskcollab/internal/adapter/auth"
	"taskcollab/internal/adapter/db"
	"taskcollab/internal/app/service"
	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

// syncNotifier stores notifications inline so assertions can follow directly.
type syncNotifier struct {
	t    *testing.T
	repo ports.NotificationRepository
}

func (n *syncNotifier) Notify(notification domain.NewNotification) {
	_, err := n.repo.Create(context.Background(), domain.Notification{
		UserID:              notification.UserID,
		Message:             notification.Message,
		RelatedTaskID:       notification.RelatedTaskID,
		RelatedInvitationID: notification.RelatedInvitationID,
		Type:                notification.Type,
	})
	require.NoError(n.t, err)
}

type testEnv struct {
	db            *sqlx.DB
	auth          *service.AuthService
	users         *service.UserService
	tasks         *service.TaskService
	invitations   *service.InvitationService
	subTasks      *service.SubTaskService
	notifications *service.NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := db.ConnectSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.ApplySchema(context.Background(), conn))

	userRepo := db.NewUserRepository(conn)
	taskRepo := db.NewTaskRepository(conn)
	notificationRepo := db.NewNotificationRepository(conn)
	notifier := &syncNotifier{t: t, repo: notificationRepo}

	jwt := auth.NewJWTManager(auth.JWTConfig{
		AccessSecret:         "access",
		RefreshSecret:        "refresh",
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
		Issuer:               "test",
	})

	return &testEnv{
		db:            conn,
		auth:          service.NewAuthService(userRepo, auth.NewPasswordHasherWithCost(bcrypt.MinCost), jwt),
		users:         service.NewUserService(userRepo, taskRepo),
		tasks:         service.NewTaskService(taskRepo),
		invitations:   service.NewInvitationService(taskRepo, userRepo, db.NewInvitationRepository(conn), notifier),
		subTasks:      service.NewSubTaskService(taskRepo, db.NewSubTaskRepository(conn), notifier),
		notifications: service.NewNotificationService(notificationRepo),
	}
}

func (e *testEnv) register(t *testing.T, name string) domain.Caller {
	t.Helper()

	session, err := e.auth.Register(context.Background(), domain.RegisterInput{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	return domain.Caller{
		ID:    session.User.ID,
		Email: session.User.Email,
		Name:  session.User.Name,
		Role:  session.User.Role,
	}
}

func (e *testEnv) createTask(t *testing.T, caller domain.Caller, title string) domain.Task {
	t.Helper()

	task, err := e.tasks.CreateTask(context.Background(), caller, domain.CreateTaskInput{Title: title})
	require.NoError(t, err)
	return task
}

func memberIDs(task domain.Task) []string {
	ids := make([]string, 0, len(task.Members))
	for _, member := range task.Members {
		ids = append(ids, member.ID)
	}
	return ids
}
