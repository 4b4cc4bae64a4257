package users

import (
	"context"

	"github.com/danunant/bbank/internal/models"
)

// Repository describes persistence operations for User records.
// Implementations are backed by the local SQLite database. Username lookups
// are case-insensitive.
type Repository interface {
	// Create inserts a new user. A username collision yields
	// common.ErrorUsernameTaken.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Exists reports whether a user with the given username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
