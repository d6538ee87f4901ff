package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/domain/services"
)

type fixedGeocoder struct {
	loc kernel.Location
	err error
}

func (g fixedGeocoder) Locate(string) (kernel.Location, error) {
	return g.loc, g.err
}

func newParser(t *testing.T) *services.IntentParser {
	t.Helper()
	p, err := services.NewIntentParser(catalog.Default(), services.DefaultRuleBook().Rules)
	require.NoError(t, err)
	return p
}

func newSessionWithCart(t *testing.T, address string, lines ...cart.Line) *session.Session {
	t.Helper()
	s, err := session.NewSession(kernel.NewUUID())
	require.NoError(t, err)
	s.Cart().Merge(lines)
	if address != "" {
		require.NoError(t, s.Cart().SetAddress(address))
	}
	return s
}
