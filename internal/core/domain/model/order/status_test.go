package order_test

import (
	"testing"

	"urbanmart/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to order.Status
	}{
		{order.Pending, order.Confirmed},
		{order.Pending, order.Processing},
		{order.Pending, order.Cancelled},
		{order.Confirmed, order.Processing},
		{order.Confirmed, order.Shipped},
		{order.Confirmed, order.Cancelled},
		{order.Processing, order.Shipped},
		{order.Processing, order.Cancelled},
		{order.Shipped, order.Delivered},
		{order.Delivered, order.Refunded},
	}
	for _, tc := range allowed {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})
	}

	denied := []struct {
		from, to order.Status
	}{
		{order.Delivered, order.Pending},
		{order.Shipped, order.Pending},
		{order.Shipped, order.Cancelled},
		{order.Cancelled, order.Confirmed},
		{order.Refunded, order.Pending},
		{order.Pending, order.Delivered},
		{order.Pending, order.Shipped},
		{order.Delivered, order.Delivered},
	}
	for _, tc := range denied {
		t.Run(tc.from.String()+" to "+tc.to.String()+" denied", func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Refunded.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{
		"PENDING", "CONFIRMED", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED", "REFUNDED",
	} {
		status, err := order.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := order.ParseStatus("LOST")
	require.Error(t, err)

	require.Error(t, order.UnknownStatus.Validate())
}
