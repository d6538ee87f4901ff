package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrProcessTurnCommandIsNotConstructed = errors.New(
	"ProcessTurnCommand must be created via NewProcessTurnCommand constructor",
)

// ProcessTurnCommand is one customer utterance in a session.
//
// Example:
//
//	cmd, err := NewProcessTurnCommand(sessionID, "2 fried chicken, address is 12 Elm Street")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	fmt.Println(result.Reply) // Added to cart: 2x fried chicken. Updated address to: 12 elm street.
type ProcessTurnCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	utterance string

	guard guard.ConstructorGuard
}

// NewProcessTurnCommand accepts any utterance, including an empty one.
func NewProcessTurnCommand(sessionID kernel.UUID, utterance string) (ProcessTurnCommand, error) {
	cmd := ProcessTurnCommand{
		utterance: utterance,
		guard:     guard.NewConstructorGuard(),
	}
	if err := cmd.setSessionID(sessionID); err != nil {
		return ProcessTurnCommand{}, err
	}
	return cmd, nil
}

func (c ProcessTurnCommand) Validate() error {
	return c.guard.Validate(ErrProcessTurnCommandIsNotConstructed)
}

func (c ProcessTurnCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ProcessTurnCommand) Utterance() string {
	return c.utterance
}

func (c *ProcessTurnCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}
