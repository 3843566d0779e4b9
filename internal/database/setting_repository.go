package database

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"time"

	"github.com/thenoetrevino/internlog/internal/models"
)

// SettingRepo handles the key/value settings
type SettingRepo struct {
	store *Store
	now   func() time.Time
}

// NewSettingRepo creates a settings repository over db. A nil clock uses time.Now.
func NewSettingRepo(db *sql.DB, now func() time.Time) *SettingRepo {
	if now == nil {
		now = time.Now
	}
	return &SettingRepo{store: NewStore(db), now: now}
}

// Get returns the value for key and whether it was set
func (r *SettingRepo) Get(ctx context.Context, key string) (string, bool, error) {
	setting, err := r.store.GetSetting(ctx, key)
	if err != nil {
		return "", false, err
	}
	if setting == nil {
		return "", false, nil
	}
	return setting.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *SettingRepo) Set(ctx context.Context, key, value string) error {
	return r.store.PutSetting(ctx, &models.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: r.now().UTC(),
	})
}

// All returns every stored setting ordered by key
func (r *SettingRepo) All(ctx context.Context) ([]*models.Setting, error) {
	settings, err := r.store.GetAllSettings(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(settings, func(a, b *models.Setting) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return settings, nil
}
