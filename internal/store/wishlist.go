package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/notify"
	"github.com/jafarshop/storefront/internal/storage"
)

const wishlistKeyPrefix = "wishlist"

// Wishlist holds one owner's saved products. At most one entry exists per
// product; adding an existing product is a no-op.
type Wishlist struct {
	mu       sync.Mutex
	owner    string
	entries  []domain.WishlistEntry
	backend  storage.Store
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewWishlist creates a wishlist for owner, loading a prior snapshot if
// one exists. Missing or corrupt snapshots yield an empty wishlist.
func NewWishlist(owner string, backend storage.Store, notifier notify.Notifier, logger *zap.Logger) *Wishlist {
	w := &Wishlist{
		owner:    owner,
		backend:  backend,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	var loaded []domain.WishlistEntry
	if loadSnapshot(context.Background(), backend, logger, w.key(), &loaded) {
		w.entries = loaded
	}
	return w
}

// Add saves the product. Idempotent: when the product is already saved the
// existing entry wins and its AddedAt is not refreshed.
func (w *Wishlist) Add(entry domain.WishlistEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range w.entries {
		if e.ProductID == entry.ProductID {
			return
		}
	}

	entry.AddedAt = w.now()
	w.entries = append(w.entries, entry)
	w.persistLocked()
	w.notifier.Success("تم إضافة المنتج إلى المفضلة")
}

// Remove drops the product's entry; no-op when absent
func (w *Wishlist) Remove(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.entries {
		if w.entries[i].ProductID == productID {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			w.persistLocked()
			w.notifier.Success("تم إزالة المنتج من المفضلة")
			return
		}
	}
}

// Toggle removes the product when present, otherwise adds it
func (w *Wishlist) Toggle(entry domain.WishlistEntry) {
	if w.Contains(entry.ProductID) {
		w.Remove(entry.ProductID)
		return
	}
	w.Add(entry)
}

// Clear empties the wishlist
func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = nil
	w.persistLocked()
	w.notifier.Success("تم إفراغ المفضلة")
}

// Contains reports whether the product is saved
func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range w.entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// Entries returns a copy of the saved entries
func (w *Wishlist) Entries() []domain.WishlistEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.WishlistEntry, len(w.entries))
	copy(out, w.entries)
	return out
}

// TotalItems is the number of saved entries
func (w *Wishlist) TotalItems() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func (w *Wishlist) persistLocked() {
	saveSnapshot(context.Background(), w.backend, w.logger, w.key(), w.entries)
}

func (w *Wishlist) key() string {
	return snapshotKey(wishlistKeyPrefix, w.owner)
}
