package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		x       kernel.Coordinate
		y       kernel.Coordinate
		wantErr bool
	}{
		{name: "restaurant origin", x: 0, y: 0},
		{name: "agent on grid", x: 20, y: 20},
		{name: "upper bound", x: kernel.LocationMax, y: kernel.LocationMax},
		{name: "x below range", x: kernel.LocationMin - 1, y: 5, wantErr: true},
		{name: "x above range", x: kernel.LocationMax + 1, y: 5, wantErr: true},
		{name: "y below range", x: 5, y: kernel.LocationMin - 1, wantErr: true},
		{name: "y above range", x: 5, y: kernel.LocationMax + 1, wantErr: true},
		{name: "both axes invalid", x: -3, y: 99, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.x, tt.y)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, loc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.x, loc.X())
			assert.Equal(t, tt.y, loc.Y())
			assert.NoError(t, loc.Validate())
		})
	}
}

func TestLocation_ZeroValueIsInvalid(t *testing.T) {
	var loc kernel.Location

	require.ErrorIs(t, loc.Validate(), errs.ErrValueIsRequired)

	_, err := loc.Distance(kernel.Origin())
	require.Error(t, err)

	_, err = kernel.Origin().IsEqual(loc)
	require.Error(t, err)
}

func TestLocation_Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b kernel.Location
		want float64
	}{
		{name: "same point", a: kernel.MustNewLocation(4, 4), b: kernel.MustNewLocation(4, 4), want: 0},
		{name: "pythagorean triple", a: kernel.Origin(), b: kernel.MustNewLocation(3, 4), want: 5},
		{name: "diagonal", a: kernel.Origin(), b: kernel.MustNewLocation(2, 2), want: 2.8284271247461903},
		{name: "symmetric", a: kernel.MustNewLocation(30, 1), b: kernel.MustNewLocation(1, 30), want: 41.012193308819754},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Distance(tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)

			back, err := tt.b.Distance(tt.a)
			require.NoError(t, err)
			assert.InDelta(t, got, back, 1e-12)
		})
	}
}

func TestLocation_IsEqualAndString(t *testing.T) {
	a := kernel.MustNewLocation(10, 10)
	b := kernel.MustNewLocation(10, 10)
	c := kernel.MustNewLocation(10, 11)

	eq, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, eq)

	assert.Equal(t, "Location(10,11)", c.String())
}

func TestMustNewLocation_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewLocation(31, 0) })
}
