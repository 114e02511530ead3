package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
)

const selectInvitationsQuery = `
SELECT
  i.id, i.task_id, i.invited_user_id, i.invited_by_user_id,
  u.name AS invited_by_name,
  u.email AS invited_by_email,
  i.status, i.created_at, i.updated_at
FROM task_invitations i
JOIN users u ON u.id = i.invited_by_user_id
`

const upsertInvitationMySQL = `
INSERT INTO task_invitations (id, task_id, invited_user_id, invited_by_user_id, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE status = VALUES(status), updated_at = VALUES(updated_at)
`

const upsertInvitationSQLite = `
INSERT INTO task_invitations (id, task_id, invited_user_id, invited_by_user_id, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (task_id, invited_user_id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at
`

type InvitationRepository struct {
	db *sqlx.DB
}

var _ ports.InvitationRepository = (*InvitationRepository)(nil)

func NewInvitationRepository(db *sqlx.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Upsert writes a PENDING invitation keyed by (task, invited user) in one
// statement. An existing row keeps its id and inviter and is reset to PENDING.
func (r *InvitationRepository) Upsert(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error) {
	query := upsertInvitationMySQL
	if isSQLite(r.db) {
		query = upsertInvitationSQLite
	}

	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query,
		uuid.NewString(),
		invitation.TaskID,
		invitation.InvitedUserID,
		invitation.InvitedByUserID,
		string(domain.InvitationStatusPending),
		now,
		now,
	); err != nil {
		return domain.Invitation{}, fmt.Errorf("upsert invitation: %w", err)
	}

	return r.findOne(ctx, selectInvitationsQuery+"WHERE i.task_id = ? AND i.invited_user_id = ?",
		invitation.TaskID, invitation.InvitedUserID)
}

func (r *InvitationRepository) FindByID(ctx context.Context, id string) (domain.Invitation, error) {
	return r.findOne(ctx, selectInvitationsQuery+"WHERE i.id = ?", id)
}

func (r *InvitationRepository) Resolve(ctx context.Context, id string, status domain.InvitationStatus) (domain.Invitation, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE task_invitations SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
			string(status), time.Now().UTC(), id, string(domain.InvitationStatusPending),
		)
		if err != nil {
			return fmt.Errorf("update invitation status: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return currentStateError(ctx, tx, id)
		}

		if status != domain.InvitationStatusAccepted {
			return nil
		}

		var row struct {
			TaskID        string `db:"task_id"`
			InvitedUserID string `db:"invited_user_id"`
		}
		if err := tx.GetContext(ctx, &row,
			`SELECT task_id, invited_user_id FROM task_invitations WHERE id = ?`, id,
		); err != nil {
			return fmt.Errorf("load accepted invitation: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			insertIgnore(r.db)+` INTO task_members (task_id, user_id) VALUES (?, ?)`,
			row.TaskID, row.InvitedUserID,
		); err != nil {
			return fmt.Errorf("add task member: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Invitation{}, err
	}

	return r.FindByID(ctx, id)
}

// currentStateError explains why a conditional status update touched no row.
func currentStateError(ctx context.Context, tx *sqlx.Tx, id string) error {
	var current string
	if err := tx.GetContext(ctx, &current, `SELECT status FROM task_invitations WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInvitationNotFound
		}
		return err
	}
	return &domain.InvitationStateError{Status: domain.InvitationStatus(current)}
}

func (r *InvitationRepository) findOne(ctx context.Context, query string, args ...any) (domain.Invitation, error) {
	var row invitationRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Invitation{}, domain.ErrInvitationNotFound
		}
		return domain.Invitation{}, err
	}
	return mapInvitationRowToDomainInvitation(row), nil
}
