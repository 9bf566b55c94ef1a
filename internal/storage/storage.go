// Package storage owns the embedded SQLite database: opening it, applying
// pragmas, and keeping the schema current via embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avasiljevs/gpavault/internal/common"
	"github.com/avasiljevs/gpavault/internal/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Store wraps the shared process-wide database handle. Open it once and reuse
// it for every repository call.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the database at path, verifies the connection, and
// runs pending migrations. Re-opening an existing database keeps its data.
//
// Errors are mapped to two sentinels: common.ErrStoreBusy for transient lock
// conflicts worth a retry, common.ErrStoreUnavailable for everything that
// makes the store unusable.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: database path is required", common.ErrStoreUnavailable)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	// One writer connection avoids SQLITE_BUSY between our own transactions.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{DB: db}
	if err := store.ping(ctx); err != nil {
		_ = db.Close()
		return nil, mapOpenError(err)
	}
	if err := store.setPragmas(ctx); err != nil {
		_ = db.Close()
		return nil, mapOpenError(err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, mapOpenError(err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return s.DB.PingContext(ctx)
}

func (s *Store) setPragmas(ctx context.Context) error {
	// WAL lets reads proceed while a write transaction is open.
	if _, err := s.DB.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		return err
	}
	_, err := s.DB.ExecContext(ctx, "PRAGMA foreign_keys = ON;")
	return err
}

// runMigrations applies the embedded migration chain. Goose records applied
// versions in the database, so calling this on every open is idempotent.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// mapOpenError classifies open-time failures. modernc/sqlite surfaces lock
// conflicts as strings containing "busy" or "locked".
func mapOpenError(err error) error {
	if err == nil {
		return nil
	}
	if IsBusy(err) {
		return fmt.Errorf("%w: %v", common.ErrStoreBusy, err)
	}
	return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
}

// IsBusy reports whether err is a transient SQLite lock error.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "database is locked") ||
		strings.Contains(s, "sqlite_busy") ||
		strings.Contains(s, "busy") ||
		strings.Contains(s, "locked")
}

// IsUniqueViolation reports whether err comes from a violated UNIQUE or
// PRIMARY KEY constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "SQLITE_CONSTRAINT_PRIMARYKEY") ||
		strings.Contains(s, "SQLITE_CONSTRAINT_UNIQUE")
}
