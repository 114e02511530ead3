package tests

import (
	"context"

	"taskcollab/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.Session, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Profile(ctx context.Context, caller domain.Caller) (domain.User, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) UserTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, caller domain.Caller, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, caller, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, caller domain.Caller, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, caller, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, caller domain.Caller, taskID string) error {
	args := m.Called(ctx, caller, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, caller domain.Caller) ([]domain.Task, error) {
	args := m.Called(ctx, caller)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, caller domain.Caller, taskID string) (domain.Task, error) {
	args := m.Called(ctx, caller, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type invitationServiceMock struct {
	mock.Mock
}

func (m *invitationServiceMock) Invite(ctx context.Context, caller domain.Caller, taskID, email string) (domain.Invitation, error) {
	args := m.Called(ctx, caller, taskID, email)
	return args.Get(0).(domain.Invitation), args.Error(1)
}

func (m *invitationServiceMock) Respond(ctx context.Context, caller domain.Caller, invitationID string, action domain.InvitationAction) (domain.Invitation, error) {
	args := m.Called(ctx, caller, invitationID, action)
	return args.Get(0).(domain.Invitation), args.Error(1)
}

type subTaskServiceMock struct {
	mock.Mock
}

func (m *subTaskServiceMock) CreateSubTask(ctx context.Context, caller domain.Caller, taskID string, input domain.CreateSubTaskInput) (domain.SubTask, error) {
	args := m.Called(ctx, caller, taskID, input)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

func (m *subTaskServiceMock) UpdateSubTask(ctx context.Context, caller domain.Caller, subTaskID string, input domain.UpdateSubTaskInput) (domain.SubTask, error) {
	args := m.Called(ctx, caller, subTaskID, input)
	return args.Get(0).(domain.SubTask), args.Error(1)
}

type notificationServiceMock struct {
	mock.Mock
}

func (m *notificationServiceMock) ListNotifications(ctx context.Context, caller domain.Caller) ([]domain.Notification, error) {
	args := m.Called(ctx, caller)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, caller domain.Caller, notificationID string) (domain.Notification, error) {
	args := m.Called(ctx, caller, notificationID)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *notificationServiceMock) UnreadCount(ctx context.Context, caller domain.Caller) (int, error) {
	args := m.Called(ctx, caller)
	return args.Int(0), args.Error(1)
}
