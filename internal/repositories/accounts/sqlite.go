// Package accounts provides the SQLite-backed account repository.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/gpavault/internal/common"
	"github.com/avasiljevs/gpavault/internal/dbx"
	"github.com/avasiljevs/gpavault/internal/models"
	"github.com/avasiljevs/gpavault/internal/storage"
)

// SQLiteRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the account. Uniqueness is enforced by the primary key, so
// two concurrent creates for the same username can never both succeed.
func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO accounts (username, password) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, account.Username, account.Password)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return common.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// Find looks the account up by username. Absence is not an error.
func (r *SQLiteRepository) Find(ctx context.Context, username string) (*models.Account, error) {
	query := `SELECT username, password FROM accounts WHERE username = ?`

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&account.Username, &account.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select account: %w", err)
	}
	return account, nil
}
