package domain

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusRejected InvitationStatus = "REJECTED"
)

func (s InvitationStatus) Terminal() bool {
	return s == InvitationStatusAccepted || s == InvitationStatusRejected
}

type InvitationAction string

const (
	InvitationActionAccept InvitationAction = "accept"
	InvitationActionReject InvitationAction = "reject"
)

// Outcome maps an action to the status it moves a pending invitation to.
func (a InvitationAction) Outcome() (InvitationStatus, error) {
	switch a {
	case InvitationActionAccept:
		return InvitationStatusAccepted, nil
	case InvitationActionReject:
		return InvitationStatusRejected, nil
	}
	return "", ErrInvalidInvitationAction
}

type Invitation struct {
	ID              string
	TaskID          string
	InvitedUserID   string
	InvitedByUserID string
	InvitedBy       *UserSummary
	Status          InvitationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
