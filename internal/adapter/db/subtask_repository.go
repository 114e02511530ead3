package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

const selectSubTasksQuery = `
SELECT
  s.id, s.task_id, s.title, s.description, s.assigned_user_id,
  u.name AS assigned_name,
  u.email AS assigned_email,
  s.status, s.due_date, s.created_at, s.updated_at
FROM subtasks s
JOIN users u ON u.id = s.assigned_user_id
`

type SubTaskRepository struct {
	db *sqlx.DB
}

var _ ports.SubTaskRepository = (*SubTaskRepository)(nil)

func NewSubTaskRepository(db *sqlx.DB) *SubTaskRepository {
	return &SubTaskRepository{db: db}
}

func (r *SubTaskRepository) Create(ctx context.Context, subTask domain.SubTask) (domain.SubTask, error) {
	now := time.Now().UTC()
	subTask.ID = uuid.NewString()

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO subtasks (id, task_id, title, description, assigned_user_id, status, due_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		subTask.ID,
		subTask.TaskID,
		subTask.Title,
		nullableString(subTask.Description),
		subTask.AssignedUserID,
		string(subTask.Status),
		nullableTime(subTask.DueDate),
		now,
		now,
	); err != nil {
		return domain.SubTask{}, err
	}

	return r.FindByID(ctx, subTask.ID)
}

func (r *SubTaskRepository) FindByID(ctx context.Context, id string) (domain.SubTask, error) {
	var row subTaskRow
	if err := r.db.GetContext(ctx, &row, selectSubTasksQuery+"WHERE s.id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SubTask{}, domain.ErrSubTaskNotFound
		}
		return domain.SubTask{}, err
	}
	return mapSubTaskRowToDomainSubTask(row), nil
}

func (r *SubTaskRepository) Update(ctx context.Context, id string, input domain.UpdateSubTaskInput) (domain.SubTask, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableTime(input.DueDate))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := "UPDATE subtasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.SubTask{}, err
	}

	return r.FindByID(ctx, id)
}
