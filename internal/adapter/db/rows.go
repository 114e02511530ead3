package db

import (
	"database/sql"
	"time"

	"taskcollab/internal/core/domain"
)

type userRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type taskRow struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Status       string         `db:"status"`
	CreatorID    string         `db:"creator_id"`
	CreatorName  string         `db:"creator_name"`
	CreatorEmail string         `db:"creator_email"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type memberRow struct {
	TaskID string `db:"task_id"`
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
}

type subTaskRow struct {
	ID            string         `db:"id"`
	TaskID        string         `db:"task_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	AssignedID    string         `db:"assigned_user_id"`
	AssignedName  string         `db:"assigned_name"`
	AssignedEmail string         `db:"assigned_email"`
	Status        string         `db:"status"`
	DueDate       sql.NullTime   `db:"due_date"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type invitationRow struct {
	ID              string    `db:"id"`
	TaskID          string    `db:"task_id"`
	InvitedUserID   string    `db:"invited_user_id"`
	InvitedByUserID string    `db:"invited_by_user_id"`
	InvitedByName   string    `db:"invited_by_name"`
	InvitedByEmail  string    `db:"invited_by_email"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type notificationRow struct {
	ID                  string         `db:"id"`
	UserID              string         `db:"user_id"`
	Message             string         `db:"message"`
	IsRead              bool           `db:"is_read"`
	RelatedTaskID       sql.NullString `db:"related_task_id"`
	RelatedInvitationID sql.NullString `db:"related_invitation_id"`
	Type                string         `db:"type"`
	CreatedAt           time.Time      `db:"created_at"`
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: nullStringPtr(row.Description),
		Status:      domain.TaskStatus(row.Status),
		CreatorID:   row.CreatorID,
		Creator: &domain.UserSummary{
			ID:    row.CreatorID,
			Name:  row.CreatorName,
			Email: row.CreatorEmail,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapSubTaskRowToDomainSubTask(row subTaskRow) domain.SubTask {
	subTask := domain.SubTask{
		ID:             row.ID,
		TaskID:         row.TaskID,
		Title:          row.Title,
		Description:    nullStringPtr(row.Description),
		AssignedUserID: row.AssignedID,
		AssignedUser: &domain.UserSummary{
			ID:    row.AssignedID,
			Name:  row.AssignedName,
			Email: row.AssignedEmail,
		},
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		subTask.DueDate = &value
	}

	return subTask
}

func mapInvitationRowToDomainInvitation(row invitationRow) domain.Invitation {
	return domain.Invitation{
		ID:              row.ID,
		TaskID:          row.TaskID,
		InvitedUserID:   row.InvitedUserID,
		InvitedByUserID: row.InvitedByUserID,
		InvitedBy: &domain.UserSummary{
			ID:    row.InvitedByUserID,
			Name:  row.InvitedByName,
			Email: row.InvitedByEmail,
		},
		Status:    domain.InvitationStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapNotificationRowToDomainNotification(row notificationRow) domain.Notification {
	return domain.Notification{
		ID:                  row.ID,
		UserID:              row.UserID,
		Message:             row.Message,
		IsRead:              row.IsRead,
		RelatedTaskID:       nullStringPtr(row.RelatedTaskID),
		RelatedInvitationID: nullStringPtr(row.RelatedInvitationID),
		Type:                domain.NotificationType(row.Type),
		CreatedAt:           row.CreatedAt,
	}
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: value.UTC(), Valid: true}
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
