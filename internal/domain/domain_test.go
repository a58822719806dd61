package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutStepTransitions(t *testing.T) {
	assert.True(t, StepAddressEntry.CanTransitionTo(StepPaymentSelection))
	assert.False(t, StepAddressEntry.CanTransitionTo(StepConfirmed))

	assert.True(t, StepPaymentSelection.CanTransitionTo(StepAddressEntry))
	assert.True(t, StepPaymentSelection.CanTransitionTo(StepConfirmed))

	assert.False(t, StepConfirmed.CanTransitionTo(StepAddressEntry))
	assert.False(t, StepConfirmed.CanTransitionTo(StepPaymentSelection))
	assert.False(t, StepConfirmed.CanTransitionTo(StepConfirmed))
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodSyriatelCash.IsValid())
	assert.False(t, PaymentMethod("barter").IsValid())
	assert.Equal(t, PaymentMethodCash, DefaultPaymentMethod)
}

func TestCartLineCap(t *testing.T) {
	assert.Equal(t, DefaultMaxQuantity, CartLine{}.Cap())
	assert.Equal(t, 3, CartLine{MaxQuantity: 3}.Cap())
}

func TestShippingAddressMissingFields(t *testing.T) {
	assert.Equal(t,
		[]string{"name", "email", "phone", "address", "city"},
		ShippingAddress{}.MissingFields())

	full := ShippingAddress{
		Name: "ا", Email: "a@b.co", Phone: "0991234567",
		Address: "شارع", City: "دمشق",
	}
	assert.Empty(t, full.MissingFields())

	// Optional fields do not count
	full.State = ""
	full.PostalCode = ""
	assert.Empty(t, full.MissingFields())
}

func TestOfferActiveAt(t *testing.T) {
	offer := Offer{
		IsActive:   true,
		ValidFrom:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2024, 8, 31, 23, 59, 59, 0, time.UTC),
	}

	assert.True(t, offer.ActiveAt(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, offer.ActiveAt(offer.ValidFrom))
	assert.True(t, offer.ActiveAt(offer.ValidUntil))
	assert.False(t, offer.ActiveAt(offer.ValidFrom.Add(-time.Second)))
	assert.False(t, offer.ActiveAt(offer.ValidUntil.Add(time.Second)))

	offer.IsActive = false
	assert.False(t, offer.ActiveAt(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)))
}
