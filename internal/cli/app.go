// Package cli is the interactive shell driving the account and record
// services. It is presentation glue only: all persistence and session rules
// live in the services layer.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/avasiljevs/gpavault/internal/config"
	"github.com/avasiljevs/gpavault/internal/logging"
	"github.com/avasiljevs/gpavault/internal/repositories/accounts"
	"github.com/avasiljevs/gpavault/internal/services"
	"github.com/avasiljevs/gpavault/internal/storage"
)

// App holds the wired services plus the shell's own state: the session token
// of the current login, if any.
type App struct {
	store    *storage.Store
	auth     *services.AuthService
	records  *services.RecordService
	token    string
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the store and wires the services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error opening store", "error", err)
		return nil, err
	}

	sessions := services.NewSessionManager()
	authSvc := services.NewAuthService(accounts.NewSQLiteRepository(store.DB), sessions, cfg, log)
	recordSvc := services.NewRecordService(store.DB, authSvc, log)

	return &App{
		store:   store,
		auth:    authSvc,
		records: recordSvc,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "logged out"
}
