package services

import (
	"sync"
	"time"

	"github.com/avasiljevs/gpavault/internal/models"
	"github.com/google/uuid"
)

// SessionManager tracks live sessions in memory. It is the only mutable
// shared state outside the database handle; a mutex guards the map because
// record operations may run while a login or logout is in flight.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*models.Session)}
}

// Start registers a new session for userID and returns it.
func (m *SessionManager) Start(userID string) *models.Session {
	s := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the live session with the given id, if any.
func (m *SessionManager) Get(id string) (*models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// End removes the session. Ending an unknown session is a no-op, so a failure
// arriving after the user already logged out resolves quietly.
func (m *SessionManager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
