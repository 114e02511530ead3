package service

import (
	"context"
	"errors"
	"strings"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

type SubTaskService struct {
	taskRepository    ports.TaskRepository
	subTaskRepository ports.SubTaskRepository
	notifier          ports.Notifier
}

func NewSubTaskService(taskRepository ports.TaskRepository, subTaskRepository ports.SubTaskRepository, notifier ports.Notifier) *SubTaskService {
	return &SubTaskService{
		taskRepository:    taskRepository,
		subTaskRepository: subTaskRepository,
		notifier:          notifier,
	}
}

func (s *SubTaskService) CreateSubTask(ctx context.Context, caller domain.Caller, taskID string, input domain.CreateSubTaskInput) (domain.SubTask, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.SubTask{}, domain.ErrNotTaskMember
		}
		return domain.SubTask{}, err
	}
	if !task.HasMember(caller.ID) {
		return domain.SubTask{}, domain.ErrNotTaskMember
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.SubTask{}, domain.ErrTitleRequired
	}
	if !task.HasMember(input.AssignedUserID) {
		return domain.SubTask{}, domain.ErrAssigneeNotMember
	}

	subTask, err := s.subTaskRepository.Create(ctx, domain.SubTask{
		TaskID:         task.ID,
		Title:          title,
		Description:    trimmed(input.Description),
		AssignedUserID: input.AssignedUserID,
		Status:         domain.TaskStatusPending,
		DueDate:        input.DueDate,
	})
	if err != nil {
		return domain.SubTask{}, err
	}

	s.notifier.Notify(domain.SubTaskAssignedNotification(task, subTask))
	return subTask, nil
}

// UpdateSubTask lets the assignee or the parent task creator edit the
// sub-task. The assignee is not re-checked against the current members.
func (s *SubTaskService) UpdateSubTask(ctx context.Context, caller domain.Caller, subTaskID string, input domain.UpdateSubTaskInput) (domain.SubTask, error) {
	subTask, err := s.subTaskRepository.FindByID(ctx, subTaskID)
	if err != nil {
		return domain.SubTask{}, err
	}

	task, err := s.taskRepository.FindByID(ctx, subTask.TaskID)
	if err != nil {
		return domain.SubTask{}, err
	}
	if caller.ID != subTask.AssignedUserID && caller.ID != task.CreatorID {
		return domain.SubTask{}, domain.ErrNotSubTaskEditor
	}

	input.Title = trimmed(input.Title)
	if input.Title != nil && *input.Title == "" {
		return domain.SubTask{}, domain.ErrTitleRequired
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.SubTask{}, domain.ErrInvalidTaskStatus
	}
	if input.Title == nil && input.Description == nil && input.Status == nil && input.DueDate == nil {
		return subTask, nil
	}

	return s.subTaskRepository.Update(ctx, subTaskID, input)
}

var _ ports.SubTaskService = (*SubTaskService)(nil)
