package commands

import (
	"context"
)

// SetAddressCommandHandler writes a manual address override. A session whose
// last order was confirmed starts a new order first.
type SetAddressCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewSetAddressCommandHandler(uowFactory SessionUoWFactory) SetAddressCommandHandler {
	return SetAddressCommandHandler{uowFactory: uowFactory}
}

func (h SetAddressCommandHandler) Handle(ctx context.Context, cmd SetAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions := uow.SessionRepository()
	s, err := sessions.GetForUpdate(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = s.StartNewOrder(); err != nil {
		return err
	}
	if err = s.Cart().SetAddress(cmd.Address()); err != nil {
		return err
	}

	if err = sessions.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
