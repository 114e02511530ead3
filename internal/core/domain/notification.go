package domain

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationTypeTaskInvitation     NotificationType = "TASK_INVITATION"
	NotificationTypeInvitationResponse NotificationType = "INVITATION_RESPONSE"
	NotificationTypeOther              NotificationType = "OTHER"
)

// MaxListedNotifications caps how many notifications a listing returns.
const MaxListedNotifications = 20

type Notification struct {
	ID                  string
	UserID              string
	Message             string
	IsRead              bool
	RelatedTaskID       *string
	RelatedInvitationID *string
	Type                NotificationType
	CreatedAt           time.Time
}

// NewNotification is the payload handed to the notifier. Messages are
// rendered at creation time and stored as plain text.
type NewNotification struct {
	UserID              string
	Message             string
	RelatedTaskID       *string
	RelatedInvitationID *string
	Type                NotificationType
}

func InvitationSentNotification(inviterName string, task Task, invitation Invitation) NewNotification {
	return NewNotification{
		UserID:              invitation.InvitedUserID,
		Message:             fmt.Sprintf("%s has invited you to join the task: \"%s\".", inviterName, task.Title),
		RelatedTaskID:       &task.ID,
		RelatedInvitationID: &invitation.ID,
		Type:                NotificationTypeTaskInvitation,
	}
}

func InvitationAnsweredNotification(responderName string, task Task, status InvitationStatus) NewNotification {
	verb := "rejected"
	if status == InvitationStatusAccepted {
		verb = "accepted"
	}
	return NewNotification{
		UserID:        task.CreatorID,
		Message:       fmt.Sprintf("%s %s your invitation to join the task: \"%s\".", responderName, verb, task.Title),
		RelatedTaskID: &task.ID,
		Type:          NotificationTypeInvitationResponse,
	}
}

func SubTaskAssignedNotification(task Task, subTask SubTask) NewNotification {
	return NewNotification{
		UserID:        subTask.AssignedUserID,
		Message:       fmt.Sprintf("You were assigned a new sub-task: \"%s\" under task \"%s\".", subTask.Title, task.Title),
		RelatedTaskID: &task.ID,
		Type:          NotificationTypeOther,
	}
}
