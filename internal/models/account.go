package models

// Account is a stored user credential pair. The username is the primary key;
// accounts are never mutated or deleted once created.
//
// The password is stored and compared in plain text. That mirrors the system
// this replaces and is a documented weakness, not an accident.
type Account struct {
	Username string
	Password string
}
