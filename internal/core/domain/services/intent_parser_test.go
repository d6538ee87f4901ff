package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

func TestIntentParser_Parse_OrderWithAddress(t *testing.T) {
	p := newParser(t)

	intent := p.Parse("I want 2 fried chicken and coffee, address is 308 Negra Arroyo Lane")

	assert.Equal(t, []cart.Line{
		{Item: "fried chicken", Quantity: 2},
		{Item: "coffee", Quantity: 1},
	}, intent.Items)
	assert.Equal(t, "308 negra arroyo lane", intent.Address)
}

func TestIntentParser_Parse_Quantities(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		utterance string
		item      string
		want      int
	}{
		{"3 coke please", "coke", 3},
		{"a coke please", "coke", 1},
		{"12 wings", "chicken wings (6 pcs)", 12},
		{"0 coffee", "coffee", 1},
		{"99999999999999999999999 coffee", "coffee", cart.MaxQuantity},
		{"9223372036854775807 coffee", "coffee", cart.MaxQuantity},
		{"1000 coffee", "coffee", cart.MaxQuantity},
		{"999 coffee", "coffee", 999},
		{"2 buckets to go", "fried chicken", 2},
		{"table for 4, one grilled chicken", "grilled chicken", 1},
		{"coffee and then 3 coffee", "coffee", 3},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			intent := p.Parse(tt.utterance)
			require.Len(t, intent.Items, 1)
			assert.Equal(t, tt.item, intent.Items[0].Item)
			assert.Equal(t, tt.want, intent.Items[0].Quantity)
		})
	}
}

func TestIntentParser_Parse_EachItemOnce(t *testing.T) {
	p := newParser(t)

	intent := p.Parse("a coke and a cola")

	assert.Equal(t, []cart.Line{{Item: "coke", Quantity: 1}}, intent.Items)
}

func TestIntentParser_Parse_FirstTriggerDecidesQuantity(t *testing.T) {
	p := newParser(t)

	// "candy" is listed before "blue", so the number in front of "candy" counts.
	intent := p.Parse("5 blue 2 candy")

	assert.Equal(t, []cart.Line{{Item: "blue candy", Quantity: 2}}, intent.Items)
}

func TestIntentParser_Parse_SpicyAlsoMatchesFriedChicken(t *testing.T) {
	p := newParser(t)

	intent := p.Parse("2 spicy fried chicken")

	assert.Equal(t, []cart.Line{
		{Item: "fried chicken", Quantity: 1},
		{Item: "spicy fried chicken", Quantity: 2},
	}, intent.Items)
}

func TestIntentParser_Parse_Address(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{"explicit", "My address is 12 Elm Street", "12 elm street"},
		{"explicit wins over street guess", "address is 1 Main Lane", "1 main lane"},
		{"street guess", "I live on elm street", services.PlaceholderAddress},
		{"lane guess", "down the lane", services.PlaceholderAddress},
		{"empty explicit", "my address is   ", ""},
		{"none", "2 coke", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.utterance).Address)
		})
	}
}

func TestIntentParser_Parse_Nothing(t *testing.T) {
	p := newParser(t)

	intent := p.Parse("something sweet")

	assert.Empty(t, intent.Items)
	assert.Empty(t, intent.Address)
}

func TestNewIntentParser(t *testing.T) {
	t.Run("rejects items missing from the menu", func(t *testing.T) {
		_, err := services.NewIntentParser(catalog.Default(), []services.IntentRule{
			{Item: "tacos", Triggers: []string{"taco"}},
		})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("requires rules and a menu", func(t *testing.T) {
		_, err := services.NewIntentParser(catalog.Default(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = services.NewIntentParser(nil, services.DefaultRuleBook().Rules)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("custom table", func(t *testing.T) {
		p, err := services.NewIntentParser(catalog.Default(), []services.IntentRule{
			{Item: "pizza (pepperoni, medium)", Triggers: []string{"medium pepperoni", "large pie"}},
		})
		require.NoError(t, err)

		intent := p.Parse("3 large pie")
		assert.Equal(t, []cart.Line{{Item: "pizza (pepperoni, medium)", Quantity: 3}}, intent.Items)
	})
}
