package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/session"
)

// StartSessionCommandHandler persists a fresh session that is taking an order.
type StartSessionCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewStartSessionCommandHandler(uowFactory SessionUoWFactory) StartSessionCommandHandler {
	return StartSessionCommandHandler{uowFactory: uowFactory}
}

func (h StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := session.NewSession(cmd.SessionID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
