package service

import (
	"context"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

type NotificationService struct {
	notificationRepository ports.NotificationRepository
}

func NewNotificationService(notificationRepository ports.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepository: notificationRepository}
}

func (s *NotificationService) ListNotifications(ctx context.Context, caller domain.Caller) ([]domain.Notification, error) {
	return s.notificationRepository.ListByUser(ctx, caller.ID, domain.MaxListedNotifications)
}

func (s *NotificationService) MarkRead(ctx context.Context, caller domain.Caller, notificationID string) (domain.Notification, error) {
	return s.notificationRepository.MarkRead(ctx, notificationID, caller.ID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, caller domain.Caller) (int, error) {
	return s.notificationRepository.CountUnread(ctx, caller.ID)
}

var _ ports.NotificationService = (*NotificationService)(nil)
