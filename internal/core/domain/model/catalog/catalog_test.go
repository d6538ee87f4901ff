package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

func TestNewEntry(t *testing.T) {
	t.Run("valid entry is normalized", func(t *testing.T) {
		e, err := catalog.NewEntry("  Coffee ", "LPH-004", 300, "Hot, black brewed coffee.")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "coffee", e.Name())
		assert.Equal(t, "LPH-004", e.ID())
		assert.Equal(t, kernel.Money(300), e.Price())
		assert.Equal(t, "coffee hot, black brewed coffee.", e.SearchText())
	})

	t.Run("free item is allowed", func(t *testing.T) {
		_, err := catalog.NewEntry("napkins", "LPH-900", 0, "")
		require.NoError(t, err)
	})

	t.Run("all violations are reported", func(t *testing.T) {
		_, err := catalog.NewEntry("", " ", -1, "")

		require.ErrorIs(t, err, catalog.ErrNameIsRequired)
		require.ErrorIs(t, err, catalog.ErrIDIsRequired)
		require.ErrorIs(t, err, catalog.ErrPriceIsInvalid)
	})

	t.Run("zero value", func(t *testing.T) {
		var e catalog.Entry
		require.ErrorIs(t, e.Validate(), catalog.ErrEntryIsNotConstructed)
	})
}

func TestNew_RejectsDuplicates(t *testing.T) {
	coffee, _ := catalog.NewEntry("coffee", "LPH-004", 300, "")
	coffeeAgain, _ := catalog.NewEntry("coffee", "LPH-104", 350, "")
	coke, _ := catalog.NewEntry("coke", "LPH-004", 250, "")

	_, err := catalog.New(coffee, coffeeAgain)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = catalog.New(coffee, coke)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = catalog.New(catalog.Entry{})
	require.ErrorIs(t, err, catalog.ErrEntryIsNotConstructed)
}

func TestDefault(t *testing.T) {
	menu := catalog.Default()

	require.Equal(t, 12, menu.Len())

	entries := menu.Entries()
	assert.Equal(t, "fried chicken", entries[0].Name())
	assert.Equal(t, "family chicken combo", entries[len(entries)-1].Name())

	chicken, ok := menu.Get("fried chicken")
	require.True(t, ok)
	assert.Equal(t, "LPH-001", chicken.ID())
	assert.Equal(t, "$15.00", chicken.Price().String())

	margherita, ok := menu.Get("pizza (margherita, small)")
	require.True(t, ok)
	assert.Equal(t, "$7.50", margherita.Price().String())

	assert.True(t, menu.Contains("coke"))
	assert.False(t, menu.Contains("buffalo sauce"))

	entries[0] = catalog.Entry{}
	assert.Equal(t, "fried chicken", menu.Entries()[0].Name(), "Entries must return a copy")
}
