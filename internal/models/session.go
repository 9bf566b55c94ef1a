package models

import "time"

// Session marks a currently authenticated user. Sessions live only in memory:
// they are created on login, removed on logout, and all are lost when the
// process exits.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
