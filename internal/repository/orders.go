// Package repository holds the order history store. Orders live
// in-process; there is no server-authoritative order persistence.
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/pkg/errors"
)

// OrderRepository stores placed orders
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]*domain.Order, error)
}

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	logger *zap.Logger
}

// NewMemoryOrderRepository creates an in-memory order repository
func NewMemoryOrderRepository(logger *zap.Logger) *memoryOrderRepository {
	return &memoryOrderRepository{logger: logger}
}

func (r *memoryOrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	stored := *order
	r.orders = append(r.orders, &stored)
	r.logger.Info("Order stored",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", order.UserID),
	)
	return nil
}

func (r *memoryOrderRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			out := *o
			return &out, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
}

func (r *memoryOrderRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out := *o
			matched = append(matched, &out)
		}
	}
	return page(matched, limit, offset), nil
}

func (r *memoryOrderRepository) ListAll(_ context.Context, limit, offset int) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out := *o
		matched = append(matched, &out)
	}
	return page(matched, limit, offset), nil
}

// page sorts newest first and applies limit/offset
func page(orders []*domain.Order, limit, offset int) []*domain.Order {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if offset >= len(orders) {
		return nil
	}
	orders = orders[offset:]
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}
