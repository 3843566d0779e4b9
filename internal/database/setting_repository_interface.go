package database

import (
	"context"

	"github.com/thenoetrevino/internlog/internal/models"
)

// SettingRepository defines operations for key/value settings.
type SettingRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	ListSettings(ctx context.Context) ([]*models.Setting, error)
}
