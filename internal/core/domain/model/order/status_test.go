package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"dispatched", order.Dispatched, false},
		{"delivered", order.Delivered, false},
		{"unknown", order.Unknown, true},
		{"out of range", order.Status(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_StringRoundTrip(t *testing.T) {
	for _, st := range []order.Status{order.Dispatched, order.Delivered} {
		parsed, err := order.ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}

	assert.Equal(t, "unknown", order.Unknown.String())
	_, err := order.ParseStatus("Created")
	require.Error(t, err)
}

func TestStatus_Deliver(t *testing.T) {
	next, err := order.Dispatched.Deliver()
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, next)

	_, err = order.Delivered.Deliver()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
