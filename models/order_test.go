package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	_, err = ParseOrderStatus("returned")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusProcessing))
	assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusShipped))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))

	// No skipping ahead, no moving backwards.
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusDelivered))
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusProcessing))

	// Cancellation from any non-terminal status.
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusProcessing.IsTerminal())
}

func TestShippingAddressMissingFields(t *testing.T) {
	complete := ShippingAddress{Name: "Jane Wanjiku", Phone: "792164579", Address: "Moi Avenue", City: "Nairobi"}
	assert.Empty(t, complete.MissingFields())

	partial := ShippingAddress{Name: "  ", City: "Nairobi"}
	assert.ElementsMatch(t, []string{"name", "phone", "address"}, partial.MissingFields())
}
