// Package common defines shared sentinel errors used across the storage,
// repository, and service layers of GPAVault. Callers should match these
// values with errors.Is.
package common

import "errors"

var (
	// Store-level errors.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreBusy        = errors.New("store busy")

	// Repository-level errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Sign-up validation errors, recoverable by re-entry.
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be at least 8 characters long and must not contain spaces")
	ErrInvalidUsername  = errors.New("username must not be empty and must not contain spaces")
	ErrUsernameTaken    = errors.New("username has already been taken")

	// Login failure. Deliberately the same value for an unknown username and
	// a wrong password so the caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
