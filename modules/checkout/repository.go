package checkout

import (
	"sync"

	domain "github.com/example/matcha-store/domain/checkout"
)

// Repository provides in-memory session storage.
type Repository struct {
	sessions map[string]*domain.Session
	mu       sync.RWMutex
}

// NewRepository creates a new session repository.
func NewRepository() *Repository {
	return &Repository{
		sessions: make(map[string]*domain.Session),
	}
}

// Save stores a session.
func (r *Repository) Save(s *domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = s
}

// FindByID finds a session by id.
func (r *Repository) FindByID(sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, found := r.sessions[sessionID]
	if !found {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
