package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/internlog/internal/models"
)

// PutSetting inserts or overwrites a setting keyed by name
func (s *Store) PutSetting(ctx context.Context, setting *models.Setting) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		setting.Key, setting.Value, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", setting.Key, err)
	}
	return nil
}

// GetSetting retrieves a setting by key
func (s *Store) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	setting := &models.Setting{}
	err := s.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = ?`, key,
	).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return setting, nil
}

// GetAllSettings returns every setting in no particular order
func (s *Store) GetAllSettings(ctx context.Context) ([]*models.Setting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value, updated_at FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		setting := &models.Setting{}
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}
