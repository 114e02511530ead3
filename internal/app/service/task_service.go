package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, caller domain.Caller, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrTitleRequired
	}

	return s.taskRepository.Create(ctx, domain.Task{
		Title:       title,
		Description: trimmed(input.Description),
		Status:      domain.TaskStatusPending,
		CreatorID:   caller.ID,
	})
}

func (s *TaskService) UpdateTask(ctx context.Context, caller domain.Caller, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.CanManage(caller) {
		return domain.Task{}, domain.ErrNotTaskManager
	}

	input.Title = trimmed(input.Title)
	if input.Title != nil && *input.Title == "" {
		return domain.Task{}, domain.ErrTitleRequired
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, domain.ErrInvalidTaskStatus
	}
	if input.Empty() {
		return task, nil
	}

	return s.taskRepository.Update(ctx, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, caller domain.Caller, taskID string) error {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !task.CanManage(caller) {
		return domain.ErrNotTaskManager
	}

	if err := s.taskRepository.Delete(ctx, taskID); err != nil {
		return err
	}
	zap.L().Info("task deleted", zap.String("task_id", taskID), zap.String("by", caller.ID))
	return nil
}

// ListTasks returns every task to admins. Other callers see the tasks they
// belong to, each carrying the caller's own pending invitations.
func (s *TaskService) ListTasks(ctx context.Context, caller domain.Caller) ([]domain.Task, error) {
	if caller.IsAdmin() {
		return s.taskRepository.List(ctx, ports.TaskFilter{})
	}
	return s.taskRepository.List(ctx, ports.TaskFilter{
		MemberID:              caller.ID,
		PendingInvitationsFor: caller.ID,
	})
}

func (s *TaskService) GetTask(ctx context.Context, caller domain.Caller, taskID string) (domain.Task, error) {
	task, err := s.taskRepository.FindDetails(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.CanView(caller) {
		return domain.Task{}, domain.ErrNotTaskMember
	}
	return task, nil
}

var _ ports.TaskService = (*TaskService)(nil)
