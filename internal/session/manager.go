package session

import (
	"sync"

	"github.com/google/uuid"

	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

// Manager owns the session lifecycle: one Session per logged-in user,
// created at login and destroyed at logout. Sessions are in-memory only
// and do not survive a process restart.
type Manager struct {
	log *logger.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewManager(baseLog *logger.Logger) *Manager {
	return &Manager{
		log:      baseLog.With("service", "SessionManager"),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a fresh session for the user. Logging in again discards
// any previous session along with its worklist and cursor.
func (m *Manager) Create(userID uuid.UUID, role types.Role) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := New(userID, role)
	m.sessions[userID] = s
	m.log.Debug("Session created", "user_id", userID.String(), "role", role.String())
	return s
}

func (m *Manager) Get(userID uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

func (m *Manager) Destroy(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	m.log.Debug("Session destroyed", "user_id", userID.String())
}
