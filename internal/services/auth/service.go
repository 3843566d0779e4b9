package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/internlog/internal/database"
	"github.com/thenoetrevino/internlog/internal/models"
)

// Session is the identity a command runs under. It is created by Login and
// passed explicitly to every operation that needs a role check.
type Session struct {
	ID       uuid.UUID   `json:"sessionId"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	LoginAt  time.Time   `json:"loginAt"`
}

// CanEdit reports whether the session may change tasks and settings
func (s *Session) CanEdit() bool {
	return s != nil && s.Role == models.RoleAdmin
}

// RequireEditor returns ErrReadOnlySession unless the session can edit
func (s *Session) RequireEditor() error {
	if !s.CanEdit() {
		return ErrReadOnlySession
	}
	return nil
}

// Service defines the login operation
type Service interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}

// service implements Service interface
type service struct {
	repo   database.UserRepository
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a new auth service. A nil clock uses time.Now and a nil
// logger slog.Default().
func NewService(repo database.UserRepository, now func() time.Time, logger *slog.Logger) Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, now: now, logger: logger}
}

// Login checks the credentials and opens a session for the matching user
func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.repo.Authenticate(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		s.logger.Warn("login rejected", "user", username)
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		ID:       uuid.New(),
		Username: user.Username,
		Role:     user.Role,
		LoginAt:  s.now(),
	}
	s.logger.Info("login", "user", session.Username, "role", session.Role, "session", session.ID)

	return session, nil
}
