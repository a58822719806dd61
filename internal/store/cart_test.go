package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/notify"
	"github.com/jafarshop/storefront/internal/storage"
)

func testCart(t *testing.T) (*Cart, *notify.Collector, storage.Store) {
	t.Helper()
	backend := storage.NewMemoryStore()
	collector := notify.NewCollector()
	return NewCart("user-1", backend, collector, zap.NewNop()), collector, backend
}

func line(id string) domain.CartLine {
	return domain.CartLine{
		ProductID: id,
		Name:      "منتج " + id,
		Price:     1000,
		SellerID:  "seller-1",
	}
}

func TestCartAdd_NewLine(t *testing.T) {
	cart, collector, _ := testCart(t)

	clamped := cart.Add(line("p1"), 2)

	assert.False(t, clamped)
	assert.Equal(t, 2, cart.Quantity("p1"))
	assert.Equal(t, 2, cart.TotalItems())
	assert.Equal(t, 2000.0, cart.TotalPrice())

	notices := collector.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "success", notices[0].Level)
	assert.Equal(t, "تم إضافة المنتج إلى السلة", notices[0].Message)
}

func TestCartAdd_NoDuplicateLines(t *testing.T) {
	cart, _, _ := testCart(t)

	cart.Add(line("p1"), 1)
	cart.Add(line("p1"), 2)

	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, 3, cart.Quantity("p1"))
}

func TestCartAdd_ClampsToDefaultCap(t *testing.T) {
	cart, collector, _ := testCart(t)

	cart.Add(line("p1"), 1)
	collector.Reset()

	clamped := cart.Add(line("p1"), 15)

	assert.True(t, clamped)
	assert.Equal(t, domain.DefaultMaxQuantity, cart.Quantity("p1"))

	notices := collector.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "error", notices[0].Level)
	assert.Equal(t, "الحد الأقصى للكمية هو 10", notices[0].Message)
}

func TestCartAdd_ClampsNewLineToOwnCap(t *testing.T) {
	cart, _, _ := testCart(t)

	item := line("p8")
	item.MaxQuantity = 3
	clamped := cart.Add(item, 7)

	assert.True(t, clamped)
	assert.Equal(t, 3, cart.Quantity("p8"))
}

func TestCartAdd_QuantityFloorIsOne(t *testing.T) {
	cart, _, _ := testCart(t)

	cart.Add(line("p1"), 0)
	assert.Equal(t, 1, cart.Quantity("p1"))

	cart.Add(line("p2"), -4)
	assert.Equal(t, 1, cart.Quantity("p2"))
}

func TestCartSetQuantity(t *testing.T) {
	cart, _, _ := testCart(t)
	cart.Add(line("p1"), 2)

	clamped := cart.SetQuantity("p1", 5)
	assert.False(t, clamped)
	assert.Equal(t, 5, cart.Quantity("p1"))

	clamped = cart.SetQuantity("p1", 99)
	assert.True(t, clamped)
	assert.Equal(t, domain.DefaultMaxQuantity, cart.Quantity("p1"))
}

func TestCartSetQuantity_ZeroRemovesLine(t *testing.T) {
	cart, _, _ := testCart(t)
	cart.Add(line("p1"), 2)

	cart.SetQuantity("p1", 0)

	assert.False(t, cart.Contains("p1"))
	assert.True(t, cart.Empty())
}

func TestCartSetQuantity_UnknownProductIsNoop(t *testing.T) {
	cart, _, _ := testCart(t)

	clamped := cart.SetQuantity("missing", 3)

	assert.False(t, clamped)
	assert.True(t, cart.Empty())
}

func TestCartRemoveAndClear(t *testing.T) {
	cart, _, _ := testCart(t)
	cart.Add(line("p1"), 1)
	cart.Add(line("p2"), 2)

	cart.Remove("p1")
	assert.False(t, cart.Contains("p1"))
	assert.True(t, cart.Contains("p2"))

	cart.Clear()
	assert.True(t, cart.Empty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartPersistence_RoundTrip(t *testing.T) {
	backend := storage.NewMemoryStore()
	first := NewCart("user-1", backend, notify.NewCollector(), zap.NewNop())
	first.Add(line("p1"), 2)
	first.Add(line("p2"), 1)

	second := NewCart("user-1", backend, notify.NewCollector(), zap.NewNop())

	assert.Equal(t, first.Lines(), second.Lines())
	assert.Equal(t, 3, second.TotalItems())
}

func TestCartPersistence_ScopedPerOwner(t *testing.T) {
	backend := storage.NewMemoryStore()
	mine := NewCart("user-1", backend, notify.NewCollector(), zap.NewNop())
	mine.Add(line("p1"), 1)

	other := NewCart("user-2", backend, notify.NewCollector(), zap.NewNop())

	assert.True(t, other.Empty())
}

func TestCartPersistence_CorruptSnapshotYieldsEmptyCart(t *testing.T) {
	backend := storage.NewMemoryStore()
	require.NoError(t, backend.Set(context.Background(), "cart:user-1", "{not json"))

	cart := NewCart("user-1", backend, notify.NewCollector(), zap.NewNop())

	assert.True(t, cart.Empty())
}

func TestCartPersistence_LegacyBareArraySnapshot(t *testing.T) {
	backend := storage.NewMemoryStore()
	legacy := `[{"product_id":"p1","name":"n","price":500,"quantity":2}]`
	require.NoError(t, backend.Set(context.Background(), "cart:user-1", legacy))

	cart := NewCart("user-1", backend, notify.NewCollector(), zap.NewNop())

	assert.Equal(t, 2, cart.Quantity("p1"))
	assert.Equal(t, 1000.0, cart.TotalPrice())
}
