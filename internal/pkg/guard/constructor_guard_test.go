package guard_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("turn command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errLineNotConstructed := errors.New("line must be created via newLine")

	type line struct {
		item  string
		qty   int
		guard guard.ConstructorGuard
	}

	newLine := func(item string, qty int) (line, error) {
		if item == "" {
			return line{}, errors.New("item is required")
		}
		if qty < 1 {
			return line{}, errors.New("quantity must be positive")
		}
		return line{item: item, qty: qty, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		l, err := newLine("coffee", 2)

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLineNotConstructed))
		assert.Equal(t, 2, l.qty)
	})

	t.Run("literal_fails_validation", func(t *testing.T) {
		l := line{item: "coffee", qty: 2}

		assert.Equal(t, errLineNotConstructed, l.guard.Validate(errLineNotConstructed))
	})

	t.Run("constructor_rejects_bad_input", func(t *testing.T) {
		_, err := newLine("", 1)
		require.Error(t, err)

		_, err = newLine("coffee", 0)
		require.Error(t, err)
	})
}
