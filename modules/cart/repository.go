package cart

import (
	"sync"

	domain "github.com/example/matcha-store/domain/cart"
)

// Repository holds one cart per shopper session, created lazily on
// first use.
type Repository struct {
	carts map[string]*domain.Cart
	mu    sync.RWMutex
}

// NewRepository creates a new cart repository.
func NewRepository() *Repository {
	return &Repository{
		carts: make(map[string]*domain.Cart),
	}
}

// Get returns the cart for the session, creating an empty one when the
// session has no cart yet.
func (r *Repository) Get(sessionID string) *domain.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, found := r.carts[sessionID]
	if !found {
		c = domain.New()
		r.carts[sessionID] = c
	}
	return c
}

// Drop removes a session's cart entirely.
func (r *Repository) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}
