package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the catalog in menu order.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type GetMenuQueryResponse struct {
	Name        string
	ID          string
	Price       kernel.Money
	Description string
}

// GetMenuQueryHandler reads the in-memory catalog; no storage is involved.
type GetMenuQueryHandler struct {
	menu *catalog.Catalog
}

func NewGetMenuQueryHandler(menu *catalog.Catalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menu}
}

func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := h.menu.Entries()
	items := make([]GetMenuQueryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, GetMenuQueryResponse{
			Name:        e.Name(),
			ID:          e.ID(),
			Price:       e.Price(),
			Description: e.Description(),
		})
	}
	return items, nil
}
