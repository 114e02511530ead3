package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"taskcollab/internal/core/domain"
)

func TestNotificationRepository_ListNewestFirstWithLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	bob := seedUser(t, db, "bob")

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, domain.Notification{UserID: bob.ID, Message: fmt.Sprintf("message %d", i)})
		require.NoError(t, err)
	}

	notifications, err := repo.ListByUser(ctx, bob.ID, 2)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	require.Equal(t, "message 2", notifications[0].Message)
	require.Equal(t, "message 1", notifications[1].Message)
	require.Equal(t, domain.NotificationTypeOther, notifications[0].Type)
	require.False(t, notifications[0].IsRead)
}

func TestNotificationRepository_MarkReadAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	first, err := repo.Create(ctx, domain.Notification{UserID: bob.ID, Message: "one"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Notification{UserID: bob.ID, Message: "two"})
	require.NoError(t, err)

	count, err := repo.CountUnread(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, err = repo.MarkRead(ctx, first.ID, alice.ID)
	require.ErrorIs(t, err, domain.ErrNotificationNotFound)

	read, err := repo.MarkRead(ctx, first.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, read.IsRead)

	count, err = repo.CountUnread(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, err = repo.MarkRead(ctx, "missing", bob.ID)
	require.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
