package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand opens a new, empty conversation under a caller chosen id.
type StartSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartSessionCommand(sessionID kernel.UUID) (StartSessionCommand, error) {
	cmd := StartSessionCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setSessionID(sessionID); err != nil {
		return StartSessionCommand{}, err
	}
	return cmd, nil
}

func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *StartSessionCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}
