package mapper

import (
	"time"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
	if !user.CreatedAt.IsZero() {
		item.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	return item
}

func ToUserSummary(user *domain.UserSummary) *dto.UserSummary {
	if user == nil {
		return nil
	}
	return &dto.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}

func ToSessionResponse(session domain.Session) dto.SessionResponse {
	return dto.SessionResponse{
		User:         ToUserItem(session.User),
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	}
}
