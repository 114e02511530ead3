package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every domain error wraps exactly one of them so that adapters
// can pick a status code without knowing every sentinel.
var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrTaskNotFound         = fmt.Errorf("task %w", ErrNotFound)
	ErrSubTaskNotFound      = fmt.Errorf("sub-task %w", ErrNotFound)
	ErrInvitationNotFound   = fmt.Errorf("invitation %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)

	ErrTitleRequired           = fmt.Errorf("%w: title is required", ErrValidation)
	ErrInvalidTaskStatus       = fmt.Errorf("%w: unknown task status", ErrValidation)
	ErrInvalidDueDate          = fmt.Errorf("%w: due date is not a valid date", ErrValidation)
	ErrEmailTaken              = fmt.Errorf("%w: user already exists", ErrValidation)
	ErrNameRequired            = fmt.Errorf("%w: name is required", ErrValidation)
	ErrInvalidEmail            = fmt.Errorf("%w: email is not valid", ErrValidation)
	ErrInvalidPassword         = fmt.Errorf("%w: password must be between 8 and 72 bytes", ErrValidation)
	ErrSelfInvitation          = fmt.Errorf("%w: cannot invite yourself", ErrValidation)
	ErrAlreadyMember           = fmt.Errorf("%w: user is already assigned to the task", ErrValidation)
	ErrAssigneeNotMember       = fmt.Errorf("%w: assignee must be a member of the task", ErrValidation)
	ErrInvalidInvitationAction = fmt.Errorf("%w: action must be accept or reject", ErrValidation)

	ErrNotTaskManager   = fmt.Errorf("%w: only the creator or an admin can manage the task", ErrForbidden)
	ErrNotTaskMember    = fmt.Errorf("%w: caller is not a member of the task", ErrForbidden)
	ErrNotInvitee       = fmt.Errorf("%w: caller is not the invited user", ErrForbidden)
	ErrNotSubTaskEditor = fmt.Errorf("%w: only the assignee or the task creator can update the sub-task", ErrForbidden)

	ErrInvitationNotPending = fmt.Errorf("invitation %w", ErrConflict)

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// InvitationStateError reports a response to an invitation that already left
// PENDING. It matches ErrInvitationNotPending through errors.Is.
type InvitationStateError struct {
	Status InvitationStatus
}

func (e *InvitationStateError) Error() string {
	return fmt.Sprintf("invitation is already %s", strings.ToLower(string(e.Status)))
}

func (e *InvitationStateError) Is(target error) bool {
	return target == ErrInvitationNotPending || target == ErrConflict
}
