package room

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager is the process-wide room registry.
type Manager struct {
	mu     sync.RWMutex
	rooms  map[string]*Controller
	logger *zap.Logger
}

// NewManager creates an empty registry.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		rooms:  make(map[string]*Controller),
		logger: logger,
	}
}

// Create registers a new room under a generated identifier.
func (m *Manager) Create() *Controller {
	return m.CreateWithID(uuid.NewString())
}

// CreateWithID registers a new room under the given identifier, replacing any
// previous room with that identifier.
func (m *Manager) CreateWithID(id string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	controller := NewController(id, m.logger)
	m.rooms[id] = controller

	m.logger.Info("room created", zap.String("room_id", id))
	return controller
}

// Get looks up a room by identifier.
func (m *Manager) Get(id string) (*Controller, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	controller, ok := m.rooms[id]
	return controller, ok
}

// Remove drops a room from the registry.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rooms[id]; !ok {
		return
	}
	delete(m.rooms, id)
	m.logger.Info("room removed", zap.String("room_id", id))
}

// Count returns the number of registered rooms.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}
