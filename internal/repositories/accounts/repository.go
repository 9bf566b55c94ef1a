package accounts

import (
	"context"

	"github.com/avasiljevs/gpavault/internal/models"
)

// Repository describes account persistence. Implementations are backed by the
// local SQLite database.
type Repository interface {
	// Create inserts a new account. Duplicate usernames are rejected
	// atomically with common.ErrDuplicateUsername.
	Create(ctx context.Context, account *models.Account) error

	// Find returns the account for username, or (nil, nil) when absent.
	Find(ctx context.Context, username string) (*models.Account, error)
}
