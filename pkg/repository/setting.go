package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dnovakovic099/ai-pricing/pkg/domain"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// GetSettings retrieves all settings ordered by key
func (r *SettingRepository) GetSettings(ctx context.Context) ([]domain.Setting, error) {
	var rows []struct {
		Key       string       `db:"key"`
		Value     string       `db:"value"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT key, value, updated_at FROM settings ORDER BY key"); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	res := make([]domain.Setting, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Setting{Key: row.Key, Value: row.Value, UpdatedAt: row.UpdatedAt.Time})
	}
	return res, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	return retryWrite(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("set setting: %w", err)}
		}
		return nil
	})
}

// DeleteSetting removes a setting, missing keys are not an error
func (r *SettingRepository) DeleteSetting(ctx context.Context, key string) error {
	return retryWrite(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("delete setting: %w", err)}
		}
		return nil
	})
}
