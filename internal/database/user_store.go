package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/internlog/internal/models"
)

// PutUser inserts or overwrites a user keyed by username
func (s *Store) PutUser(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password, role, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			password = excluded.password,
			role = excluded.role,
			created_at = excluded.created_at`,
		u.Username, u.Password, string(u.Role), u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", u.Username, err)
	}
	return nil
}

// GetUser retrieves a user by username
func (s *Store) GetUser(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	var role string
	err := s.db.QueryRowContext(ctx,
		`SELECT username, password, role, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&u.Username, &u.Password, &role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	u.Role = models.Role(role)
	return u, nil
}

// GetAllUsers returns every user in no particular order
func (s *Store) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, password, role, created_at FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		var role string
		if err := rows.Scan(&u.Username, &u.Password, &role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = models.Role(role)
		users = append(users, u)
	}

	return users, rows.Err()
}
