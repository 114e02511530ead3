package mapper

import (
	"time"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:            task.ID,
		Title:         task.Title,
		Description:   copyString(task.Description),
		Status:        string(task.Status),
		CreatorID:     task.CreatorID,
		Creator:       ToUserSummary(task.Creator),
		AssignedUsers: make([]dto.UserSummary, 0, len(task.Members)),
		SubTasks:      ToSubTaskItems(task.SubTasks),
		Invitations:   ToInvitationItems(task.Invitations),
		CreatedAt:     task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     task.UpdatedAt.Format(time.RFC3339),
	}

	for _, member := range task.Members {
		item.AssignedUsers = append(item.AssignedUsers, dto.UserSummary{ID: member.ID, Name: member.Name, Email: member.Email})
	}

	return item
}

func ToSubTaskItems(subTasks []domain.SubTask) []dto.SubTaskItem {
	items := make([]dto.SubTaskItem, 0, len(subTasks))
	for _, subTask := range subTasks {
		items = append(items, ToSubTaskItem(subTask))
	}
	return items
}

func ToSubTaskItem(subTask domain.SubTask) dto.SubTaskItem {
	item := dto.SubTaskItem{
		ID:             subTask.ID,
		TaskID:         subTask.TaskID,
		Title:          subTask.Title,
		Description:    copyString(subTask.Description),
		AssignedUserID: subTask.AssignedUserID,
		AssignedUser:   ToUserSummary(subTask.AssignedUser),
		Status:         string(subTask.Status),
		CreatedAt:      subTask.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      subTask.UpdatedAt.Format(time.RFC3339),
	}

	if subTask.DueDate != nil {
		value := subTask.DueDate.Format(dateLayout)
		item.DueDate = &value
	}

	return item
}

func ToInvitationItems(invitations []domain.Invitation) []dto.InvitationItem {
	items := make([]dto.InvitationItem, 0, len(invitations))
	for _, invitation := range invitations {
		items = append(items, ToInvitationItem(invitation))
	}
	return items
}

func ToInvitationItem(invitation domain.Invitation) dto.InvitationItem {
	return dto.InvitationItem{
		ID:              invitation.ID,
		TaskID:          invitation.TaskID,
		InvitedUserID:   invitation.InvitedUserID,
		InvitedByUserID: invitation.InvitedByUserID,
		InvitedByUser:   ToUserSummary(invitation.InvitedBy),
		Status:          string(invitation.Status),
		CreatedAt:       invitation.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       invitation.UpdatedAt.Format(time.RFC3339),
	}
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
