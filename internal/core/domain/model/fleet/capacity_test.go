package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/pkg/errs"
)

func TestClassifyLoad(t *testing.T) {
	tests := []struct {
		total int
		want  fleet.Capacity
	}{
		{0, fleet.Small},
		{1, fleet.Small},
		{2, fleet.Small},
		{3, fleet.Medium},
		{5, fleet.Medium},
		{6, fleet.Large},
		{20, fleet.Large},
		{21, fleet.Huge},
		{500, fleet.Huge},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fleet.ClassifyLoad(tt.total), "total %d", tt.total)
	}
}

func TestCapacity_CanServe(t *testing.T) {
	assert.True(t, fleet.Huge.CanServe(fleet.Small))
	assert.True(t, fleet.Medium.CanServe(fleet.Medium))
	assert.False(t, fleet.Small.CanServe(fleet.Medium))
	assert.False(t, fleet.Large.CanServe(fleet.Huge))
	assert.False(t, fleet.UnknownCapacity.CanServe(fleet.UnknownCapacity))
}

func TestCapacity_RoundTrip(t *testing.T) {
	for _, c := range []fleet.Capacity{fleet.Small, fleet.Medium, fleet.Large, fleet.Huge} {
		parsed, err := fleet.ParseCapacity(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := fleet.ParseCapacity("gigantic")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", fleet.Capacity(42).String())
	assert.Zero(t, fleet.Capacity(42).Rank())
}

func TestStatus_Transitions(t *testing.T) {
	next, err := fleet.Idle.Dispatch()
	require.NoError(t, err)
	assert.Equal(t, fleet.EnRoute, next)

	_, err = fleet.EnRoute.Dispatch()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	next, err = fleet.EnRoute.Release()
	require.NoError(t, err)
	assert.Equal(t, fleet.Idle, next)

	_, err = fleet.Idle.Release()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	parsed, err := fleet.ParseStatus("en_route")
	require.NoError(t, err)
	assert.Equal(t, fleet.EnRoute, parsed)
}
