package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id, t.title, t.description, t.status, t.creator_id,
  u.name AS creator_name,
  u.email AS creator_email,
  t.created_at, t.updated_at
FROM tasks t
JOIN users u ON u.id = t.creator_id
`

const memberTasksFilter = `
WHERE t.creator_id = ?
   OR EXISTS (SELECT 1 FROM task_members m WHERE m.task_id = t.id AND m.user_id = ?)
`

const listMembersQuery = `
SELECT m.task_id, u.id, u.name, u.email
FROM task_members m
JOIN users u ON u.id = m.user_id
WHERE m.task_id IN (?)
ORDER BY u.name, u.id
`

const listSubTasksQuery = selectSubTasksQuery + `
WHERE s.task_id IN (?)
ORDER BY s.created_at
`

// The ordered statements that remove a task. Children go first because the
// schema declares foreign keys without cascades.
var deleteTaskStatements = []string{
	`UPDATE notifications SET related_invitation_id = NULL
	 WHERE related_invitation_id IN (SELECT id FROM task_invitations WHERE task_id = ?)`,
	`UPDATE notifications SET related_task_id = NULL WHERE related_task_id = ?`,
	`DELETE FROM subtasks WHERE task_id = ?`,
	`DELETE FROM task_invitations WHERE task_id = ?`,
	`DELETE FROM task_members WHERE task_id = ?`,
}

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	now := time.Now().UTC()
	task.ID = uuid.NewString()

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, title, description, status, creator_id, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			task.ID, task.Title, nullableString(task.Description), string(task.Status), task.CreatorID, now, now,
		); err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO task_members (task_id, user_id) VALUES (?, ?)`,
			task.ID, task.CreatorID,
		); err != nil {
			return fmt.Errorf("insert creator membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, task.ID)
}

// FindByID returns the task with its creator and members.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTasksQuery+"WHERE t.id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	task := mapTaskRowToDomainTask(row)
	members, err := r.loadMembers(ctx, []string{task.ID})
	if err != nil {
		return domain.Task{}, err
	}
	task.Members = members[task.ID]

	return task, nil
}

// FindDetails returns the task with members, sub-tasks and every invitation.
func (r *TaskRepository) FindDetails(ctx context.Context, id string) (domain.Task, error) {
	task, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	subTasks, err := r.loadSubTasks(ctx, []string{task.ID})
	if err != nil {
		return domain.Task{}, err
	}
	task.SubTasks = subTasks[task.ID]

	invitations, err := r.loadInvitations(ctx, []string{task.ID}, "")
	if err != nil {
		return domain.Task{}, err
	}
	task.Invitations = invitations[task.ID]

	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]domain.Task, error) {
	query := selectTasksQuery
	var args []any
	if filter.MemberID != "" {
		query += memberTasksFilter
		args = append(args, filter.MemberID, filter.MemberID)
	}
	query += "ORDER BY t.created_at DESC"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
		ids = append(ids, row.ID)
	}
	if len(ids) == 0 {
		return tasks, nil
	}

	members, err := r.loadMembers(ctx, ids)
	if err != nil {
		return nil, err
	}
	subTasks, err := r.loadSubTasks(ctx, ids)
	if err != nil {
		return nil, err
	}

	var invitations map[string][]domain.Invitation
	if filter.PendingInvitationsFor != "" {
		invitations, err = r.loadInvitations(ctx, ids, filter.PendingInvitationsFor)
		if err != nil {
			return nil, err
		}
	}

	for i := range tasks {
		tasks[i].Members = members[tasks[i].ID]
		tasks[i].SubTasks = subTasks[tasks[i].ID]
		tasks[i].Invitations = invitations[tasks[i].ID]
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

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
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, statement := range deleteTaskStatements {
			if _, err := tx.ExecContext(ctx, statement, id); err != nil {
				return fmt.Errorf("delete task dependents: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	})
}

func (r *TaskRepository) loadMembers(ctx context.Context, taskIDs []string) (map[string][]domain.UserSummary, error) {
	var rows []memberRow
	if err := r.selectIn(ctx, &rows, listMembersQuery, taskIDs); err != nil {
		return nil, fmt.Errorf("load task members: %w", err)
	}

	members := make(map[string][]domain.UserSummary, len(taskIDs))
	for _, row := range rows {
		members[row.TaskID] = append(members[row.TaskID], domain.UserSummary{
			ID:    row.ID,
			Name:  row.Name,
			Email: row.Email,
		})
	}
	return members, nil
}

func (r *TaskRepository) loadSubTasks(ctx context.Context, taskIDs []string) (map[string][]domain.SubTask, error) {
	var rows []subTaskRow
	if err := r.selectIn(ctx, &rows, listSubTasksQuery, taskIDs); err != nil {
		return nil, fmt.Errorf("load sub-tasks: %w", err)
	}

	subTasks := make(map[string][]domain.SubTask, len(taskIDs))
	for _, row := range rows {
		subTasks[row.TaskID] = append(subTasks[row.TaskID], mapSubTaskRowToDomainSubTask(row))
	}
	return subTasks, nil
}

// loadInvitations returns invitations grouped by task. When invitedUserID is
// set only that user's PENDING invitations are returned.
func (r *TaskRepository) loadInvitations(ctx context.Context, taskIDs []string, invitedUserID string) (map[string][]domain.Invitation, error) {
	query := selectInvitationsQuery + "WHERE i.task_id IN (?)"
	args := []any{taskIDs}
	if invitedUserID != "" {
		query += " AND i.invited_user_id = ? AND i.status = ?"
		args = append(args, invitedUserID, string(domain.InvitationStatusPending))
	}
	query += " ORDER BY i.created_at"

	expanded, expandedArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}

	var rows []invitationRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(expanded), expandedArgs...); err != nil {
		return nil, fmt.Errorf("load invitations: %w", err)
	}

	invitations := make(map[string][]domain.Invitation, len(taskIDs))
	for _, row := range rows {
		invitations[row.TaskID] = append(invitations[row.TaskID], mapInvitationRowToDomainInvitation(row))
	}
	return invitations, nil
}

func (r *TaskRepository) selectIn(ctx context.Context, dest any, query string, ids []string) error {
	expanded, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return r.db.SelectContext(ctx, dest, r.db.Rebind(expanded), args...)
}
