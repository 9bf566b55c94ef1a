// Package services contains the application services layered on the local
// store: the session/auth controller and the record service. All record
// access goes through a session token issued here, never through a bare
// username.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/avasiljevs/gpavault/internal/auth"
	"github.com/avasiljevs/gpavault/internal/common"
	"github.com/avasiljevs/gpavault/internal/config"
	"github.com/avasiljevs/gpavault/internal/logging"
	"github.com/avasiljevs/gpavault/internal/models"
	"github.com/avasiljevs/gpavault/internal/repositories/accounts"
)

// SessionResolver turns a session token into a live session. The record
// service depends on this interface rather than on AuthService directly.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Session, error)
}

// AuthService is the session/auth controller: sign-up, login, logout, and
// token resolution for the record service.
type AuthService struct {
	accounts      accounts.Repository
	sessions      *SessionManager
	secret        []byte
	tokenValidity time.Duration
	log           logging.Logger
}

// NewAuthService constructs the controller from its repositories and config.
func NewAuthService(repo accounts.Repository, sessions *SessionManager, cfg *config.Config, log logging.Logger) *AuthService {
	return &AuthService{
		accounts:      repo,
		sessions:      sessions,
		secret:        []byte(cfg.SecretKey),
		tokenValidity: cfg.SessionTokenValidity,
		log:           log,
	}
}

// SignUp validates the requested credentials and creates the account.
// It does not log the new user in.
func (s *AuthService) SignUp(ctx context.Context, username, password, confirm string) error {
	if err := validateSignUp(username, password, confirm); err != nil {
		return err
	}

	err := s.accounts.Create(ctx, &models.Account{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return common.ErrUsernameTaken
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	s.log.Info(ctx, "account created", "user", username)
	return nil
}

// Login checks the credentials and, on success, starts a session and returns
// its token. An unknown username and a wrong password produce the same
// error; only the debug log distinguishes them.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.accounts.Find(ctx, username)
	if err != nil {
		return "", common.ErrInternal
	}
	if account == nil {
		s.log.Debug(ctx, "login failed: username not found", "user", username)
		return "", common.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		s.log.Debug(ctx, "login failed: password mismatch", "user", username)
		return "", common.ErrInvalidCredentials
	}

	session := s.sessions.Start(account.Username)
	token, err := auth.GenerateToken(session.UserID, session.ID, s.secret, s.tokenValidity)
	if err != nil {
		s.sessions.End(session.ID)
		return "", common.ErrInternal
	}

	s.log.Info(ctx, "login successful", "user", username)
	return token, nil
}

// Logout ends the session referenced by token. An invalid or already-ended
// token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) {
	_, sessionID, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return
	}
	s.sessions.End(sessionID)
	s.log.Info(ctx, "logged out")
}

// Resolve validates token and returns the live session it references.
// A token whose session has been ended is rejected even though its signature
// still verifies.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	userID, sessionID, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	session, ok := s.sessions.Get(sessionID)
	if !ok || session.UserID != userID {
		return nil, common.ErrUnauthorized
	}
	return session, nil
}
