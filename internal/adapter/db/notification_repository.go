package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

const notificationColumns = `id, user_id, message, is_read, related_task_id, related_invitation_id, type, created_at`

type NotificationRepository struct {
	db *sqlx.DB
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	notification.ID = uuid.NewString()
	notification.CreatedAt = time.Now().UTC()
	if notification.Type == "" {
		notification.Type = domain.NotificationTypeOther
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (`+notificationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		notification.ID,
		notification.UserID,
		notification.Message,
		notification.IsRead,
		nullableString(notification.RelatedTaskID),
		nullableString(notification.RelatedInvitationID),
		string(notification.Type),
		notification.CreatedAt,
	); err != nil {
		return domain.Notification{}, err
	}

	return notification, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	); err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRowToDomainNotification(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) (domain.Notification, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = ? WHERE id = ? AND user_id = ?`,
		true, id, userID,
	); err != nil {
		return domain.Notification{}, err
	}

	var row notificationRow
	if err := r.db.GetContext(ctx, &row,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = ? AND user_id = ?`,
		id, userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Notification{}, domain.ErrNotificationNotFound
		}
		return domain.Notification{}, err
	}
	return mapNotificationRowToDomainNotification(row), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = ?`,
		userID, false,
	); err != nil {
		return 0, err
	}
	return count, nil
}
