package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery reads current stock for every menu item.
type GetInventoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetInventoryQuery() GetInventoryQuery {
	return GetInventoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

type GetInventoryQueryResponse struct {
	Name  string
	ID    string
	Stock int
}

// GetInventoryQueryHandler reports stock in menu order. Items without a
// stock row read as zero.
type GetInventoryQueryHandler struct {
	uowFactory ReadUoWFactory
	menu       *catalog.Catalog
}

func NewGetInventoryQueryHandler(uowFactory ReadUoWFactory, menu *catalog.Catalog) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{uowFactory: uowFactory, menu: menu}
}

func (h GetInventoryQueryHandler) Handle(ctx context.Context, query GetInventoryQuery) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var items []GetInventoryQueryResponse
	err := read(ctx, h.uowFactory, func(uow ReadUoW) error {
		stock, err := uow.InventoryRepository().Get(ctx)
		if err != nil {
			return err
		}

		entries := h.menu.Entries()
		items = make([]GetInventoryQueryResponse, 0, len(entries))
		for _, e := range entries {
			items = append(items, GetInventoryQueryResponse{Name: e.Name(), ID: e.ID(), Stock: stock.Level(e.ID())})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
