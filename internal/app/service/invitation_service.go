package service

import (
	"context"
	"errors"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

type InvitationService struct {
	taskRepository       ports.TaskRepository
	userRepository       ports.UserRepository
	invitationRepository ports.InvitationRepository
	notifier             ports.Notifier
}

func NewInvitationService(
	taskRepository ports.TaskRepository,
	userRepository ports.UserRepository,
	invitationRepository ports.InvitationRepository,
	notifier ports.Notifier,
) *InvitationService {
	return &InvitationService{
		taskRepository:       taskRepository,
		userRepository:       userRepository,
		invitationRepository: invitationRepository,
		notifier:             notifier,
	}
}

// Invite asks the user behind email to join the task. Inviting someone whose
// earlier invitation was answered puts it back to PENDING.
func (s *InvitationService) Invite(ctx context.Context, caller domain.Caller, taskID, email string) (domain.Invitation, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		// an unknown task is reported the same way as a task the caller cannot manage
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.Invitation{}, domain.ErrNotTaskManager
		}
		return domain.Invitation{}, err
	}
	if !task.CanManage(caller) {
		return domain.Invitation{}, domain.ErrNotTaskManager
	}

	invitee, err := s.userRepository.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return domain.Invitation{}, err
	}
	if invitee.ID == caller.ID {
		return domain.Invitation{}, domain.ErrSelfInvitation
	}
	if task.HasMember(invitee.ID) {
		return domain.Invitation{}, domain.ErrAlreadyMember
	}

	invitation, err := s.invitationRepository.Upsert(ctx, domain.Invitation{
		TaskID:          task.ID,
		InvitedUserID:   invitee.ID,
		InvitedByUserID: caller.ID,
	})
	if err != nil {
		return domain.Invitation{}, err
	}

	s.notifier.Notify(domain.InvitationSentNotification(caller.Name, task, invitation))
	return invitation, nil
}

func (s *InvitationService) Respond(ctx context.Context, caller domain.Caller, invitationID string, action domain.InvitationAction) (domain.Invitation, error) {
	outcome, err := action.Outcome()
	if err != nil {
		return domain.Invitation{}, err
	}

	invitation, err := s.invitationRepository.FindByID(ctx, invitationID)
	if err != nil {
		return domain.Invitation{}, err
	}
	if invitation.InvitedUserID != caller.ID {
		return domain.Invitation{}, domain.ErrNotInvitee
	}
	if invitation.Status != domain.InvitationStatusPending {
		return domain.Invitation{}, &domain.InvitationStateError{Status: invitation.Status}
	}

	resolved, err := s.invitationRepository.Resolve(ctx, invitation.ID, outcome)
	if err != nil {
		return domain.Invitation{}, err
	}

	task, err := s.taskRepository.FindByID(ctx, resolved.TaskID)
	if err != nil {
		return domain.Invitation{}, err
	}
	s.notifier.Notify(domain.InvitationAnsweredNotification(caller.Name, task, resolved.Status))

	return resolved, nil
}

var _ ports.InvitationService = (*InvitationService)(nil)
