// Package store holds the session-scoped cart and wishlist containers.
// Each store keeps its collection in memory as the single source of truth
// and mirrors it to durable storage after every mutation; the mirror is
// read once, at construction.
package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/notify"
	"github.com/jafarshop/storefront/internal/storage"
)

const cartKeyPrefix = "cart"

// Cart holds one owner's cart lines. At most one line exists per product;
// quantities stay within each line's cap.
type Cart struct {
	mu       sync.Mutex
	owner    string
	lines    []domain.CartLine
	backend  storage.Store
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewCart creates a cart for owner, loading a prior snapshot if one
// exists. Missing or corrupt snapshots yield an empty cart.
func NewCart(owner string, backend storage.Store, notifier notify.Notifier, logger *zap.Logger) *Cart {
	c := &Cart{
		owner:    owner,
		backend:  backend,
		notifier: notifier,
		logger:   logger,
	}
	var loaded []domain.CartLine
	if loadSnapshot(context.Background(), backend, logger, c.key(), &loaded) {
		c.lines = loaded
	}
	return c
}

// Add inserts a line for the product or increases an existing line's
// quantity. Quantities are clamped to the line's cap; hitting the cap is
// signalled as a notice and reported in the return value, not an error.
func (c *Cart) Add(item domain.CartLine, quantity int) (clamped bool) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID != item.ProductID {
			continue
		}
		limit := c.lines[i].Cap()
		next := c.lines[i].Quantity + quantity
		if next > limit {
			c.lines[i].Quantity = limit
			c.persistLocked()
			c.notifier.Error(fmt.Sprintf("الحد الأقصى للكمية هو %d", limit))
			return true
		}
		c.lines[i].Quantity = next
		c.persistLocked()
		c.notifier.Success("تم تحديث كمية المنتج في السلة")
		return false
	}

	line := item
	line.Quantity = quantity
	if limit := line.Cap(); line.Quantity > limit {
		line.Quantity = limit
		clamped = true
	}
	c.lines = append(c.lines, line)
	c.persistLocked()
	if clamped {
		c.notifier.Error(fmt.Sprintf("الحد الأقصى للكمية هو %d", line.Cap()))
	} else {
		c.notifier.Success("تم إضافة المنتج إلى السلة")
	}
	return clamped
}

// Remove deletes the line for the product; no-op when absent
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

// SetQuantity sets a line's quantity, clamped to [1, cap]. A quantity of
// zero or less removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) (clamped bool) {
	if quantity <= 0 {
		c.Remove(productID)
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		limit := c.lines[i].Cap()
		if quantity > limit {
			quantity = limit
			clamped = true
		}
		c.lines[i].Quantity = quantity
		c.persistLocked()
		if clamped {
			c.notifier.Error(fmt.Sprintf("الحد الأقصى للكمية هو %d", limit))
		}
		return clamped
	}
	return false
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persistLocked()
	c.notifier.Success("تم إفراغ السلة")
}

// Lines returns a copy of the cart's lines
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the sum of quantities across lines, recomputed on demand
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across lines, recomputed
// on demand
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Contains reports whether the product has a line in the cart
func (c *Cart) Contains(productID string) bool {
	return c.Quantity(productID) > 0
}

// Quantity returns the product's line quantity, or zero when absent
func (c *Cart) Quantity(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// Empty reports whether the cart has no lines
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persistLocked()
			c.notifier.Success("تم إزالة المنتج من السلة")
			return
		}
	}
}

func (c *Cart) persistLocked() {
	saveSnapshot(context.Background(), c.backend, c.logger, c.key(), c.lines)
}

func (c *Cart) key() string {
	return snapshotKey(cartKeyPrefix, c.owner)
}
