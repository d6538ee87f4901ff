package queries

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetFleetQueryIsNotConstructed = errors.New(
	"GetFleetQuery must be created via NewGetFleetQuery constructor",
)

// GetFleetQuery lists the delivery agents in roster order.
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

type GetFleetQueryResponse struct {
	ID        string
	Name      string
	Vehicle   string
	Capacity  string
	Status    string
	Location  kernel.Location
	BusyUntil *time.Time
}

type GetFleetQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetFleetQueryHandler(uowFactory ReadUoWFactory) GetFleetQueryHandler {
	return GetFleetQueryHandler{uowFactory: uowFactory}
}

func (h GetFleetQueryHandler) Handle(ctx context.Context, query GetFleetQuery) ([]GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var agents []GetFleetQueryResponse
	err := read(ctx, h.uowFactory, func(uow ReadUoW) error {
		all, err := uow.FleetRepository().GetAll(ctx)
		if err != nil {
			return err
		}
		agents = make([]GetFleetQueryResponse, 0, len(all))
		for _, a := range all {
			agents = append(agents, GetFleetQueryResponse{
				ID:        a.ID(),
				Name:      a.Name(),
				Vehicle:   a.Vehicle(),
				Capacity:  a.Capacity().String(),
				Status:    a.Status().String(),
				Location:  a.Location(),
				BusyUntil: a.BusyUntil(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return agents, nil
}
