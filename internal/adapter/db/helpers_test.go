package db

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"taskcollab/internal/core/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := ConnectSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, ApplySchema(context.Background(), db))
	return db
}

func seedUser(t *testing.T, db *sqlx.DB, name string) domain.User {
	t.Helper()

	user, err := NewUserRepository(db).Create(context.Background(), domain.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)
	return user
}

func seedTask(t *testing.T, db *sqlx.DB, creator domain.User, title string) domain.Task {
	t.Helper()

	task, err := NewTaskRepository(db).Create(context.Background(), domain.Task{
		Title:     title,
		Status:    domain.TaskStatusPending,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)
	return task
}

func memberIDs(task domain.Task) []string {
	ids := make([]string, 0, len(task.Members))
	for _, member := range task.Members {
		ids = append(ids, member.ID)
	}
	return ids
}
