// Package checkout implements the three-step checkout flow:
// AddressEntry → PaymentSelection → Confirmed. Steps only advance via
// explicit submission, payment may step back to the address form, and
// Confirmed is terminal. Submitting payment places the order, clears the
// cart and cannot be undone.
package checkout

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/repository"
	"github.com/jafarshop/storefront/internal/store"
	"github.com/jafarshop/storefront/pkg/errors"
)

// ErrCartEmpty aborts a flow whose cart has emptied; callers redirect to
// the cart screen.
var ErrCartEmpty = stderrors.New("checkout: cart is empty")

// ErrNoFlow means the user has no checkout in progress
var ErrNoFlow = stderrors.New("checkout: no flow in progress")

// Shipping cost and tax rate applied at order placement.
const (
	shippingCost = 25000
	taxRate      = 0.1
)

// Flow is one user's checkout state
type Flow struct {
	Step          domain.CheckoutStep    `json:"step"`
	Address       domain.ShippingAddress `json:"address"`
	PaymentMethod domain.PaymentMethod   `json:"payment_method"`
	OrderID       uuid.UUID              `json:"order_id,omitempty"`
}

// Service drives checkout flows, one per user
type Service struct {
	mu             sync.Mutex
	flows          map[string]*Flow
	stores         *store.Manager
	orders         repository.OrderRepository
	logger         *zap.Logger
	placementDelay time.Duration
}

// NewService creates the checkout service. placementDelay simulates the
// order-placement call; it always succeeds.
func NewService(stores *store.Manager, orders repository.OrderRepository, placementDelay time.Duration, logger *zap.Logger) *Service {
	return &Service{
		flows:          make(map[string]*Flow),
		stores:         stores,
		orders:         orders,
		logger:         logger,
		placementDelay: placementDelay,
	}
}

// Begin starts (or resumes) the user's checkout flow. An empty cart
// aborts with ErrCartEmpty.
func (s *Service) Begin(userID string) (Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if flow, ok := s.flows[userID]; ok {
		if err := s.guardLocked(userID, flow); err != nil {
			return Flow{}, err
		}
		return *flow, nil
	}

	if s.stores.Cart(userID).Empty() {
		return Flow{}, ErrCartEmpty
	}

	flow := &Flow{
		Step:          domain.StepAddressEntry,
		PaymentMethod: domain.DefaultPaymentMethod,
	}
	s.flows[userID] = flow
	return *flow, nil
}

// Current returns the user's flow state, applying the empty-cart guard
func (s *Service) Current(userID string) (Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return Flow{}, ErrNoFlow
	}
	if err := s.guardLocked(userID, flow); err != nil {
		return Flow{}, err
	}
	return *flow, nil
}

// SubmitAddress validates the shipping form and advances to payment
// selection. On validation failure the flow stays in AddressEntry.
func (s *Service) SubmitAddress(userID string, address domain.ShippingAddress) (Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return Flow{}, ErrNoFlow
	}
	if err := s.guardLocked(userID, flow); err != nil {
		return Flow{}, err
	}

	if !flow.Step.CanTransitionTo(domain.StepPaymentSelection) {
		return Flow{}, &errors.ErrInvalidStateTransition{
			From: flow.Step.String(),
			To:   domain.StepPaymentSelection.String(),
		}
	}

	if missing := address.MissingFields(); len(missing) > 0 {
		return *flow, &errors.ErrValidation{
			Message: "يرجى ملء جميع الحقول المطلوبة",
			Fields:  missing,
		}
	}

	flow.Address = address
	flow.Step = domain.StepPaymentSelection
	return *flow, nil
}

// Back returns from payment selection to the address form
func (s *Service) Back(userID string) (Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[userID]
	if !ok {
		return Flow{}, ErrNoFlow
	}
	if err := s.guardLocked(userID, flow); err != nil {
		return Flow{}, err
	}

	if !flow.Step.CanTransitionTo(domain.StepAddressEntry) {
		return Flow{}, &errors.ErrInvalidStateTransition{
			From: flow.Step.String(),
			To:   domain.StepAddressEntry.String(),
		}
	}

	flow.Step = domain.StepAddressEntry
	return *flow, nil
}

// SubmitPayment places the order: the simulated placement runs, the order
// is recorded, the cart is cleared and the flow reaches Confirmed. The
// side effect is irreversible; there is no path out of Confirmed.
func (s *Service) SubmitPayment(ctx context.Context, userID string, method domain.PaymentMethod) (Flow, *domain.Order, error) {
	s.mu.Lock()

	flow, ok := s.flows[userID]
	if !ok {
		s.mu.Unlock()
		return Flow{}, nil, ErrNoFlow
	}
	if err := s.guardLocked(userID, flow); err != nil {
		s.mu.Unlock()
		return Flow{}, nil, err
	}

	if !flow.Step.CanTransitionTo(domain.StepConfirmed) {
		from := flow.Step.String()
		s.mu.Unlock()
		return Flow{}, nil, &errors.ErrInvalidStateTransition{
			From: from,
			To:   domain.StepConfirmed.String(),
		}
	}

	if method == "" {
		method = domain.DefaultPaymentMethod
	}
	if !method.IsValid() {
		s.mu.Unlock()
		return *flow, nil, &errors.ErrValidation{Message: "طريقة دفع غير صالحة", Fields: []string{"payment_method"}}
	}
	flow.PaymentMethod = method
	s.mu.Unlock()

	// Simulated placement; stands in for the payment/fulfilment call and
	// always succeeds.
	if s.placementDelay > 0 {
		select {
		case <-time.After(s.placementDelay):
		case <-ctx.Done():
			return Flow{}, nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: the cart may have been emptied during the delay.
	if err := s.guardLocked(userID, flow); err != nil {
		return Flow{}, nil, err
	}
	// Re-validate the step too: a concurrent submission may have confirmed
	// the flow while the lock was released. Only one placement wins.
	if flow.Step != domain.StepPaymentSelection {
		return Flow{}, nil, &errors.ErrInvalidStateTransition{
			From: flow.Step.String(),
			To:   domain.StepConfirmed.String(),
		}
	}

	cart := s.stores.Cart(userID)
	lines := cart.Lines()
	items := make([]domain.OrderItem, 0, len(lines))
	subtotal := 0.0
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
			SellerID:  l.SellerID,
		})
		subtotal += l.Price * float64(l.Quantity)
	}

	tax := subtotal * taxRate
	order := &domain.Order{
		UserID:          userID,
		Items:           items,
		Status:          domain.OrderStatusPending,
		ShippingAddress: flow.Address,
		PaymentMethod:   flow.PaymentMethod,
		Subtotal:        subtotal,
		Shipping:        shippingCost,
		Tax:             tax,
		Total:           subtotal + shippingCost + tax,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return Flow{}, nil, err
	}

	cart.Clear()
	flow.Step = domain.StepConfirmed
	flow.OrderID = order.ID

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("total", order.Total),
	)
	return *flow, order, nil
}

// Reset discards a confirmed flow so the user can start a new checkout.
// Discarding an unfinished flow is also allowed; it loses the typed-in
// address only, never placed orders.
func (s *Service) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, userID)
}

// guardLocked enforces the every-render guard: a non-Confirmed flow with
// an empty cart is dropped and reported as ErrCartEmpty.
func (s *Service) guardLocked(userID string, flow *Flow) error {
	if flow.Step == domain.StepConfirmed {
		return nil
	}
	if s.stores.Cart(userID).Empty() {
		delete(s.flows, userID)
		return ErrCartEmpty
	}
	return nil
}
