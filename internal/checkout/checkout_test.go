package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/notify"
	"github.com/jafarshop/storefront/internal/repository"
	"github.com/jafarshop/storefront/internal/storage"
	"github.com/jafarshop/storefront/internal/store"
	"github.com/jafarshop/storefront/pkg/errors"
)

const testUser = "user-1"

func testService(t *testing.T) (*Service, *store.Manager) {
	t.Helper()
	stores := store.NewManager(storage.NewMemoryStore(), notify.NewCollector(), zap.NewNop())
	orders := repository.NewMemoryOrderRepository(zap.NewNop())
	return NewService(stores, orders, 0, zap.NewNop()), stores
}

func fillCart(stores *store.Manager, userID string) {
	stores.Cart(userID).Add(domain.CartLine{
		ProductID: "p1",
		Name:      "منتج",
		Price:     10000,
		SellerID:  "seller-1",
	}, 2)
}

func validAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		Name:    "جعفر",
		Email:   "jafar@example.com",
		Phone:   "0991234567",
		Address: "شارع الحمرا 12",
		City:    "دمشق",
	}
}

func TestBegin_EmptyCart(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Begin(testUser)

	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestBegin_StartsAtAddressEntry(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)

	flow, err := svc.Begin(testUser)

	require.NoError(t, err)
	assert.Equal(t, domain.StepAddressEntry, flow.Step)
	assert.Equal(t, domain.DefaultPaymentMethod, flow.PaymentMethod)
}

func TestBegin_ResumesExistingFlow(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)

	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)

	flow, err := svc.Begin(testUser)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPaymentSelection, flow.Step)
}

func TestSubmitAddress_MissingFields(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)

	addr := validAddress()
	addr.Phone = ""
	addr.City = ""
	flow, err := svc.SubmitAddress(testUser, addr)

	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"phone", "city"}, verr.Fields)
	assert.Equal(t, domain.StepAddressEntry, flow.Step)
}

func TestSubmitAddress_AdvancesToPayment(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)

	flow, err := svc.SubmitAddress(testUser, validAddress())

	require.NoError(t, err)
	assert.Equal(t, domain.StepPaymentSelection, flow.Step)
	assert.Equal(t, "دمشق", flow.Address.City)
}

func TestBack_ReturnsToAddressEntry(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)

	flow, err := svc.Back(testUser)

	require.NoError(t, err)
	assert.Equal(t, domain.StepAddressEntry, flow.Step)
}

func TestBack_FromAddressEntryIsRejected(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)

	_, err = svc.Back(testUser)

	var terr *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, err, &terr)
}

func TestSubmitPayment_RequiresPaymentSelectionStep(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)

	_, _, err = svc.SubmitPayment(context.Background(), testUser, domain.PaymentMethodCash)

	var terr *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, err, &terr)
}

func TestSubmitPayment_PlacesOrderAndClearsCart(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)

	flow, order, err := svc.SubmitPayment(context.Background(), testUser, domain.PaymentMethodWallet)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.StepConfirmed, flow.Step)
	assert.Equal(t, order.ID, flow.OrderID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.PaymentMethodWallet, order.PaymentMethod)

	// 2 × 10000 plus 25000 shipping plus 10% tax on the subtotal
	assert.Equal(t, 20000.0, order.Subtotal)
	assert.Equal(t, 25000.0, order.Shipping)
	assert.Equal(t, 2000.0, order.Tax)
	assert.Equal(t, 47000.0, order.Total)

	assert.True(t, stores.Cart(testUser).Empty())
}

func TestSubmitPayment_InvalidMethod(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)

	_, _, err = svc.SubmitPayment(context.Background(), testUser, "barter")

	var verr *errors.ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestSubmitPayment_EmptyMethodFallsBackToCash(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)

	_, order, err := svc.SubmitPayment(context.Background(), testUser, "")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodCash, order.PaymentMethod)
}

func TestConfirmedIsTerminal(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)
	_, _, err = svc.SubmitPayment(context.Background(), testUser, domain.PaymentMethodCash)
	require.NoError(t, err)

	_, err = svc.SubmitAddress(testUser, validAddress())
	var terr *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, err, &terr)

	_, err = svc.Back(testUser)
	assert.ErrorAs(t, err, &terr)

	_, _, err = svc.SubmitPayment(context.Background(), testUser, domain.PaymentMethodCash)
	assert.ErrorAs(t, err, &terr)

	// Confirmed survives the empty-cart guard
	flow, err := svc.Current(testUser)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmed, flow.Step)
}

func TestSubmitPayment_ConcurrentDoubleSubmitPlacesOneOrder(t *testing.T) {
	stores := store.NewManager(storage.NewMemoryStore(), notify.NewCollector(), zap.NewNop())
	orders := repository.NewMemoryOrderRepository(zap.NewNop())
	svc := NewService(stores, orders, 50*time.Millisecond, zap.NewNop())

	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.SubmitPayment(context.Background(), testUser, domain.PaymentMethodCash)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var terr *errors.ErrInvalidStateTransition
		require.ErrorAs(t, err, &terr)
		rejected++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	placed, err := orders.ListAll(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Len(t, placed[0].Items, 1)
	assert.Equal(t, 47000.0, placed[0].Total)
	assert.True(t, stores.Cart(testUser).Empty())
}

func TestEmptyCartGuardDropsUnfinishedFlow(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)

	stores.Cart(testUser).Clear()

	_, err = svc.Current(testUser)
	assert.ErrorIs(t, err, ErrCartEmpty)

	// The flow is gone entirely, not just blocked
	_, err = svc.Current(testUser)
	assert.ErrorIs(t, err, ErrNoFlow)
}

func TestReset_AllowsANewCheckout(t *testing.T) {
	svc, stores := testService(t)
	fillCart(stores, testUser)
	_, err := svc.Begin(testUser)
	require.NoError(t, err)
	_, err = svc.SubmitAddress(testUser, validAddress())
	require.NoError(t, err)
	_, _, err = svc.SubmitPayment(context.Background(), testUser, domain.PaymentMethodCash)
	require.NoError(t, err)

	svc.Reset(testUser)
	fillCart(stores, testUser)

	flow, err := svc.Begin(testUser)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAddressEntry, flow.Step)
}
