package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/notify"
	"github.com/jafarshop/storefront/internal/storage"
)

// Manager hands out per-owner cart and wishlist stores, constructing each
// at most once per process so snapshots are loaded a single time.
type Manager struct {
	mu        sync.Mutex
	backend   storage.Store
	notifier  notify.Notifier
	logger    *zap.Logger
	carts     map[string]*Cart
	wishlists map[string]*Wishlist
}

// NewManager creates a store manager over the given snapshot backend
func NewManager(backend storage.Store, notifier notify.Notifier, logger *zap.Logger) *Manager {
	return &Manager{
		backend:   backend,
		notifier:  notifier,
		logger:    logger,
		carts:     make(map[string]*Cart),
		wishlists: make(map[string]*Wishlist),
	}
}

// Cart returns the owner's cart, creating it on first use
func (m *Manager) Cart(owner string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[owner]; ok {
		return c
	}
	c := NewCart(owner, m.backend, m.notifier, m.logger)
	m.carts[owner] = c
	return c
}

// Wishlist returns the owner's wishlist, creating it on first use
func (m *Manager) Wishlist(owner string) *Wishlist {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wishlists[owner]; ok {
		return w
	}
	w := NewWishlist(owner, m.backend, m.notifier, m.logger)
	m.wishlists[owner] = w
	return w
}
