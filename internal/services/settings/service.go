package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/internlog/internal/database"
	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
	"github.com/thenoetrevino/internlog/internal/services/auth"
)

// Service defines the settings operations
type Service interface {
	// StartDate returns the configured start date, or "" when none is set
	StartDate(ctx context.Context) (string, error)
	SetStartDate(ctx context.Context, session *auth.Session, date string) error
	// All returns every stored setting ordered by key
	All(ctx context.Context) ([]*models.Setting, error)
}

// service implements Service interface
type service struct {
	repo   database.SettingRepository
	logger *slog.Logger
}

// NewService creates a new settings service
func NewService(repo database.SettingRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

func (s *service) StartDate(ctx context.Context) (string, error) {
	value, _, err := s.repo.GetSetting(ctx, models.SettingStartDate)
	if err != nil {
		return "", fmt.Errorf("failed to read start date: %w", err)
	}
	return value, nil
}

// SetStartDate changes the anchor for day numbers. Stored day numbers are not
// rewritten; ordered reads recompute them.
func (s *service) SetStartDate(ctx context.Context, session *auth.Session, date string) error {
	if err := session.RequireEditor(); err != nil {
		return err
	}

	date = strings.TrimSpace(date)
	if !progress.ValidDate(date) {
		return fmt.Errorf("%q: %w", date, ErrInvalidStartDate)
	}

	if err := s.repo.SetSetting(ctx, models.SettingStartDate, date); err != nil {
		return fmt.Errorf("failed to save start date: %w", err)
	}

	s.logger.Info("start date changed", "date", date, "user", session.Username)
	return nil
}

func (s *service) All(ctx context.Context) ([]*models.Setting, error) {
	settings, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}
