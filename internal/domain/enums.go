package domain

import "strconv"

// PaymentMethod is one of the fixed payment options offered at checkout
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodCreditCard   PaymentMethod = "creditCard"
	PaymentMethodSyriatelCash PaymentMethod = "syriatelCash"
	PaymentMethodMTNCash      PaymentMethod = "mtnCash"
)

// DefaultPaymentMethod is preselected when the payment step opens
const DefaultPaymentMethod = PaymentMethodCash

// IsValid checks if the payment method is one of the fixed set
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash,
		PaymentMethodWallet,
		PaymentMethodCreditCard,
		PaymentMethodSyriatelCash,
		PaymentMethodMTNCash:
		return true
	default:
		return false
	}
}

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CheckoutStep is a state of the checkout flow
type CheckoutStep int

const (
	StepAddressEntry     CheckoutStep = 1
	StepPaymentSelection CheckoutStep = 2
	StepConfirmed        CheckoutStep = 3
)

func (s CheckoutStep) String() string {
	switch s {
	case StepAddressEntry:
		return "address_entry"
	case StepPaymentSelection:
		return "payment_selection"
	case StepConfirmed:
		return "confirmed"
	default:
		return "step_" + strconv.Itoa(int(s))
	}
}

// CanTransitionTo checks if a step transition is valid. Steps only advance
// via explicit submission; payment may go back to address entry; Confirmed
// is terminal.
func (s CheckoutStep) CanTransitionTo(next CheckoutStep) bool {
	switch s {
	case StepAddressEntry:
		return next == StepPaymentSelection
	case StepPaymentSelection:
		return next == StepAddressEntry || next == StepConfirmed
	case StepConfirmed:
		return false // Terminal state
	default:
		return false
	}
}

// TransactionType distinguishes wallet credits from debits
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// TransactionStatus is the settlement state of a wallet transaction
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)
