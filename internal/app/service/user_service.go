package service

import (
	"context"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
}

func NewUserService(userRepository ports.UserRepository, taskRepository ports.TaskRepository) *UserService {
	return &UserService{userRepository: userRepository, taskRepository: taskRepository}
}

func (s *UserService) Profile(ctx context.Context, caller domain.Caller) (domain.User, error) {
	return s.userRepository.FindByID(ctx, caller.ID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

// UserTasks lists the tasks the user created or joined.
func (s *UserService) UserTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.taskRepository.List(ctx, ports.TaskFilter{MemberID: userID})
}

var _ ports.UserService = (*UserService)(nil)
