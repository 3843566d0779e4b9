package database

import (
	"context"

	"github.com/thenoetrevino/internlog/internal/models"
)

// UserRepository defines the login lookups.
type UserRepository interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}
