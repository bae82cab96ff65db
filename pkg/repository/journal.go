package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// JournalRepository keeps the log of operator commands
type JournalRepository struct {
	db *sqlx.DB
}

// commandSQL represents a journal entry for SQL operations
type commandSQL struct {
	ID        string    `db:"id"`
	Action    string    `db:"action"`
	TargetID  string    `db:"target_id"`
	Note      string    `db:"note"`
	Success   bool      `db:"success"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Record stores a command entry. Missing id and time are filled in.
func (r *JournalRepository) Record(ctx context.Context, entry domain.CommandEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	row := commandSQL{
		ID:        entry.ID,
		Action:    string(entry.Action),
		TargetID:  entry.TargetID,
		Note:      entry.Note,
		Success:   entry.Success,
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt.UTC(),
	}

	query := `
		INSERT INTO command_log (id, action, target_id, note, success, message, created_at)
		VALUES (:id, :action, :target_id, :note, :success, :message, :created_at)
	`
	return retryWrite(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("record command: %w", err)}
		}
		return nil
	})
}

// Recent returns up to limit latest entries, newest first
func (r *JournalRepository) Recent(ctx context.Context, limit int) ([]domain.CommandEntry, error) {
	var rows []commandSQL
	query := "SELECT * FROM command_log ORDER BY created_at DESC, rowid DESC LIMIT ?"
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get recent commands: %w", err)
	}
	return toDomainEntries(rows), nil
}

// ForTarget returns up to limit latest entries of one error or listing, newest first
func (r *JournalRepository) ForTarget(ctx context.Context, targetID string, limit int) ([]domain.CommandEntry, error) {
	var rows []commandSQL
	query := "SELECT * FROM command_log WHERE target_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?"
	if err := r.db.SelectContext(ctx, &rows, query, targetID, limit); err != nil {
		return nil, fmt.Errorf("get commands for %s: %w", targetID, err)
	}
	return toDomainEntries(rows), nil
}

// Prune drops all but the keep latest entries, returns the number of removed ones
func (r *JournalRepository) Prune(ctx context.Context, keep int) (int64, error) {
	var removed int64
	query := `
		DELETE FROM command_log WHERE id NOT IN (
			SELECT id FROM command_log ORDER BY created_at DESC, rowid DESC LIMIT ?
		)
	`
	err := retryWrite(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, keep)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("prune commands: %w", err)}
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}

func toDomainEntries(rows []commandSQL) []domain.CommandEntry {
	res := make([]domain.CommandEntry, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.CommandEntry{
			ID:        row.ID,
			Action:    domain.CommandAction(row.Action),
			TargetID:  row.TargetID,
			Note:      row.Note,
			Success:   row.Success,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}
	return res
}
