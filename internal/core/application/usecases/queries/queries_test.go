package queries_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/inventory"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f readFactory) Create() queries.ReadUoW {
	return f.factory.Create()
}

func newStore(t *testing.T) (ports.UnitOfWorkFactory, queries.ReadUoWFactory) {
	t.Helper()
	factory := memory.NewStore(inventory.Default(), fleet.DefaultRoster()).NewUnitOfWorkFactory()
	return factory, readFactory{factory: factory}
}

func TestGetMenuQueryHandler(t *testing.T) {
	handler := queries.NewGetMenuQueryHandler(catalog.Default())

	items, err := handler.Handle(context.Background(), queries.NewGetMenuQuery())
	require.NoError(t, err)
	require.Len(t, items, 12)
	assert.Equal(t, "fried chicken", items[0].Name)
	assert.Equal(t, "LPH-001", items[0].ID)
	assert.Equal(t, kernel.Money(1500), items[0].Price)

	_, err = handler.Handle(context.Background(), queries.GetMenuQuery{})
	require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}

func TestGetInventoryQueryHandler(t *testing.T) {
	ctx := context.Background()
	factory, reads := newStore(t)

	stock, err := factory.Create().InventoryRepository().GetForUpdate(ctx, []string{"LPH-001"})
	require.NoError(t, err)
	require.NoError(t, stock.Decrement("LPH-001", 4))
	require.NoError(t, factory.Create().InventoryRepository().Update(ctx, stock))

	handler := queries.NewGetInventoryQueryHandler(reads, catalog.Default())
	items, err := handler.Handle(ctx, queries.NewGetInventoryQuery())
	require.NoError(t, err)
	require.Len(t, items, 12)
	assert.Equal(t, queries.GetInventoryQueryResponse{Name: "fried chicken", ID: "LPH-001", Stock: 46}, items[0])
	assert.Equal(t, "coke", items[7].Name)
	assert.Equal(t, 2, items[7].Stock)
}

func TestGetFleetQueryHandler(t *testing.T) {
	ctx := context.Background()
	factory, reads := newStore(t)
	until := time.Date(2026, 1, 2, 12, 30, 0, 0, time.UTC)

	agents, err := factory.Create().FleetRepository().GetAll(ctx)
	require.NoError(t, err)
	require.NoError(t, agents[2].Dispatch(until))
	require.NoError(t, factory.Create().FleetRepository().Update(ctx, agents[2]))

	handler := queries.NewGetFleetQueryHandler(reads)
	got, err := handler.Handle(ctx, queries.NewGetFleetQuery())
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Gustavo", got[0].Name)
	assert.Equal(t, "large", got[0].Capacity)
	assert.Equal(t, "idle", got[0].Status)
	assert.Nil(t, got[0].BusyUntil)

	assert.Equal(t, "D3", got[2].ID)
	assert.Equal(t, "en_route", got[2].Status)
	require.NotNil(t, got[2].BusyUntil)
	assert.True(t, until.Equal(*got[2].BusyUntil))
}

func TestGetSessionQueryHandler(t *testing.T) {
	ctx := context.Background()
	factory, reads := newStore(t)

	s, err := session.NewSession(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, s.Say(session.RoleUser, "one coffee"))
	s.Cart().Merge([]cart.Line{{Item: "coffee", Quantity: 1}})
	require.NoError(t, s.Cart().SetAddress("9 Pine Street"))
	require.NoError(t, factory.Create().SessionRepository().Add(ctx, s))

	o, err := order.NewOrder(kernel.NewUUID(), s.ID(),
		[]order.Line{{Item: "coke", Quantity: 1, Amount: 250}},
		"D2", 12, "9 Pine Street", kernel.MustNewLocation(1, 2), time.Now())
	require.NoError(t, err)
	require.NoError(t, factory.Create().OrderRepository().Add(ctx, o))

	query, err := queries.NewGetSessionQuery(s.ID())
	require.NoError(t, err)

	got, err := queries.NewGetSessionQueryHandler(reads).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, s.ID(), got.ID)
	assert.Equal(t, "taking_order", got.Status)
	assert.Equal(t, "9 Pine Street", got.Address)
	assert.Equal(t, []cart.Line{{Item: "coffee", Quantity: 1}}, got.Cart)
	assert.Len(t, got.Transcript, 1)
	assert.Empty(t, got.PendingSuggestion)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "D2", got.Orders[0].AgentID)
	assert.Equal(t, []string{"1x coke ($2.50)"}, got.Orders[0].Receipt)
	assert.Equal(t, "dispatched", got.Orders[0].Status)
}

func TestGetSessionQueryHandler_NotFound(t *testing.T) {
	_, reads := newStore(t)

	query, err := queries.NewGetSessionQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = queries.NewGetSessionQueryHandler(reads).Handle(context.Background(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewGetSessionQuery_RejectsNilID(t *testing.T) {
	_, err := queries.NewGetSessionQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
