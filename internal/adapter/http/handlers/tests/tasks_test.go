package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/adapter/http/handlers"
	"taskcollab/internal/core/domain"
	"taskcollab/pkg/translator"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleTask() domain.Task {
	description := "ship endpoint"
	dueDate := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 2, 13, 11, 20, 30, 0, time.UTC)

	return domain.Task{
		ID:          "task-1",
		Title:       "Build API",
		Description: &description,
		Status:      domain.TaskStatusInProgress,
		CreatorID:   alice.ID,
		Creator:     &domain.UserSummary{ID: alice.ID, Name: "Alice", Email: alice.Email},
		Members: []domain.UserSummary{
			{ID: alice.ID, Name: "Alice", Email: alice.Email},
			{ID: "bob-id", Name: "Bob", Email: "bob@example.com"},
		},
		SubTasks: []domain.SubTask{
			{
				ID:             "sub-1",
				TaskID:         "task-1",
				Title:          "Write handler",
				AssignedUserID: "bob-id",
				AssignedUser:   &domain.UserSummary{ID: "bob-id", Name: "Bob", Email: "bob@example.com"},
				Status:         domain.TaskStatusPending,
				DueDate:        &dueDate,
				CreatedAt:      createdAt,
				UpdatedAt:      updatedAt,
			},
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, alice).Return([]domain.Task{sampleTask()}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodGet, "/api/tasks", callerPtr(alice), handler.ListTasks)
	rec := doRequest(router, http.MethodGet, "/api/tasks", nil, translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "task-1", got[0].ID)
	require.Equal(t, "Build API", got[0].Title)
	require.Equal(t, "ship endpoint", *got[0].Description)
	require.Equal(t, "IN_PROGRESS", got[0].Status)
	require.Equal(t, "Alice", got[0].Creator.Name)
	require.Len(t, got[0].AssignedUsers, 2)
	require.Len(t, got[0].SubTasks, 1)
	require.Equal(t, "2026-02-20", *got[0].SubTasks[0].DueDate)
	require.Equal(t, "Bob", got[0].SubTasks[0].AssignedUser.Name)
	require.Empty(t, got[0].Invitations)
	require.Equal(t, "2026-02-13T10:20:30Z", got[0].CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, alice).Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodGet, "/api/tasks", callerPtr(alice), handler.ListTasks)
	rec := doRequest(router, http.MethodGet, "/api/tasks", nil, translator.LanguageEn)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, "Could not retrieve tasks.", got.ErrDetails.Message)
	require.Equal(t, "db is down", got.ErrDetails.Debug)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_NoCaller(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodGet, "/api/tasks", nil, handler.ListTasks)
	rec := doRequest(router, http.MethodGet, "/api/tasks", nil, translator.LanguageEn)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	serviceMock.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything)
}

func TestTaskHandler_GetTask_Forbidden(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, alice, "task-9").Return(domain.Task{}, domain.ErrNotTaskMember).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodGet, "/api/tasks/:id", callerPtr(alice), handler.GetTask)
	rec := doRequest(router, http.MethodGet, "/api/tasks/task-9", nil, translator.LanguageEn)

	require.Equal(t, http.StatusForbidden, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, "You are not a member of this task.", got.ErrDetails.Message)
	require.Empty(t, got.ErrDetails.Debug)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFoundTranslated(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, alice, "missing").Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodGet, "/api/tasks/:id", callerPtr(alice), handler.GetTask)
	rec := doRequest(router, http.MethodGet, "/api/tasks/missing", nil, translator.LanguageFr)

	require.Equal(t, http.StatusNotFound, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, "Tâche introuvable.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, alice, domain.CreateTaskInput{Title: "Plan"}).
		Return(domain.Task{ID: "task-2", Title: "Plan", Status: domain.TaskStatusPending, CreatorID: alice.ID}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodPost, "/api/tasks", callerPtr(alice), handler.CreateTask)
	rec := doRequest(router, http.MethodPost, "/api/tasks", map[string]any{"title": "Plan"}, translator.LanguageEn)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "task-2", got.ID)
	require.Equal(t, "PENDING", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidPayload(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodPost, "/api/tasks", callerPtr(alice), handler.CreateTask)
	rec := doRequest(router, http.MethodPost, "/api/tasks", map[string]any{"description": "no title"}, translator.LanguageEn)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, "Invalid request payload.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateTask_BlankTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, alice, domain.CreateTaskInput{Title: "   "}).
		Return(domain.Task{}, domain.ErrTitleRequired).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodPost, "/api/tasks", callerPtr(alice), handler.CreateTask)
	rec := doRequest(router, http.MethodPost, "/api/tasks", map[string]any{"title": "   "}, translator.LanguageEn)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, "Title is required.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	status := domain.TaskStatusCompleted
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, alice, "task-1", domain.UpdateTaskInput{Status: &status}).
		Return(domain.Task{ID: "task-1", Title: "Build API", Status: domain.TaskStatusCompleted}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodPut, "/api/tasks/:id", callerPtr(alice), handler.UpdateTask)
	rec := doRequest(router, http.MethodPut, "/api/tasks/task-1", map[string]any{"status": "COMPLETED"}, translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "COMPLETED", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_NullTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodPut, "/api/tasks/:id", callerPtr(alice), handler.UpdateTask)
	rec := doRequest(router, http.MethodPut, "/api/tasks/task-1", `{"title": null}`, translator.LanguageEn)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, "Invalid request payload.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateTask_NotManager(t *testing.T) {
	title := "Renamed"
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, alice, "task-1", domain.UpdateTaskInput{Title: &title}).
		Return(domain.Task{}, domain.ErrNotTaskManager).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodPut, "/api/tasks/:id", callerPtr(alice), handler.UpdateTask)
	rec := doRequest(router, http.MethodPut, "/api/tasks/task-1", map[string]any{"title": "Renamed"}, translator.LanguageEn)

	require.Equal(t, http.StatusForbidden, rec.Code)
	got := decodeError(t, rec)
	require.Equal(t, "Only the task creator or an admin can do this.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, admin, "task-1").Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := newRouter(http.MethodDelete, "/api/tasks/:id", callerPtr(admin), handler.DeleteTask)
	rec := doRequest(router, http.MethodDelete, "/api/tasks/task-1", nil, translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Task and related items deleted successfully"}`, rec.Body.String())
	serviceMock.AssertExpectations(t)
}
