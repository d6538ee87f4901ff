package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

var placedAt = time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

func validLines() []order.Line {
	return []order.Line{
		{Item: "fried chicken", Quantity: 2, Amount: 3000},
		{Item: "coffee", Quantity: 1, Amount: 300},
	}
}

func TestNewOrder(t *testing.T) {
	id, sessionID := kernel.NewUUID(), kernel.NewUUID()
	dest := kernel.MustNewLocation(7, 9)

	t.Run("should create dispatched order with rendered receipt", func(t *testing.T) {
		o, err := order.NewOrder(id, sessionID, validLines(), "D1", 42, "12 Elm Street", dest, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.SessionID().IsEqual(sessionID))
		assert.Equal(t, []string{"2x fried chicken ($30.00)", "1x coffee ($3.00)"}, o.ReceiptLines())
		assert.Equal(t, kernel.Money(3300), o.Total())
		assert.Equal(t, "D1", o.AgentID())
		assert.Equal(t, 42, o.ETAMinutes())
		assert.Equal(t, placedAt.Add(42*time.Minute), o.DeliverBy())
		assert.Equal(t, order.Dispatched, o.Status())
	})

	t.Run("should reject missing parts", func(t *testing.T) {
		_, err := order.NewOrder(id, kernel.UUID{}, nil, "", -1, " ", kernel.Location{}, time.Time{})

		require.ErrorIs(t, err, order.ErrLinesAreRequired)
		require.ErrorIs(t, err, order.ErrAgentIsRequired)
		require.ErrorIs(t, err, order.ErrAddressIsRequired)
		require.ErrorIs(t, err, order.ErrPlacedAtIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid lines", func(t *testing.T) {
		lines := []order.Line{{Item: "coffee", Quantity: 0, Amount: 0}}
		_, err := order.NewOrder(id, sessionID, lines, "D1", 1, "x", dest, placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Deliver(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validLines(), "D3", 10, "a", kernel.MustNewLocation(1, 1), placedAt)
	require.NoError(t, err)

	require.NoError(t, o.Deliver())
	assert.Equal(t, order.Delivered, o.Status())

	err = o.Deliver()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_ReceiptIsImmutable(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validLines(), "D3", 10, "a", kernel.MustNewLocation(1, 1), placedAt)
	require.NoError(t, err)

	lines := o.ReceiptLines()
	lines[0] = "free pizza"

	assert.Equal(t, "2x fried chicken ($30.00)", o.ReceiptLines()[0])
}

func TestOrder_ZeroValueIsNotConstructed(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
