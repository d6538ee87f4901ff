package commands

import (
	"context"
)

// ReleaseAgentsCommandHandler returns en route agents to idle once their ETA
// has passed and marks the orders they carried as delivered.
type ReleaseAgentsCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewReleaseAgentsCommandHandler(uowFactory FleetUoWFactory) ReleaseAgentsCommandHandler {
	return ReleaseAgentsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of agents released.
func (h ReleaseAgentsCommandHandler) Handle(ctx context.Context, cmd ReleaseAgentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	fleetRepo := uow.FleetRepository()
	orderRepo := uow.OrderRepository()

	agents, err := fleetRepo.GetAllDueForRelease(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}
	if len(agents) == 0 {
		return 0, nil
	}

	for _, a := range agents {
		orders, err := orderRepo.GetAllDispatchedByAgent(ctx, a.ID())
		if err != nil {
			return 0, err
		}
		for _, o := range orders {
			if err = o.Deliver(); err != nil {
				return 0, err
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return 0, err
			}
		}

		if err = a.Release(); err != nil {
			return 0, err
		}
		if err = fleetRepo.Update(ctx, a); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(agents), nil
}
