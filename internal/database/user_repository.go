package database

import (
	"cmp"
	"context"
	"database/sql"
	"slices"

	"github.com/thenoetrevino/internlog/internal/models"
)

// UserRepo handles the login lookup table
type UserRepo struct {
	store *Store
}

// NewUserRepo creates a user repository over db
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{store: NewStore(db)}
}

// Get returns the user named username, or nil
func (r *UserRepo) Get(ctx context.Context, username string) (*models.User, error) {
	return r.store.GetUser(ctx, username)
}

// Authenticate returns the user when username exists and password matches it
// exactly, and nil otherwise.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.store.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, nil
	}
	return user, nil
}

// List returns every user ordered by username
func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	users, err := r.store.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(users, func(a, b *models.User) int {
		return cmp.Compare(a.Username, b.Username)
	})
	return users, nil
}
