package commands

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrReleaseAgentsCommandIsNotConstructed = errors.New(
	"ReleaseAgentsCommand must be created via NewReleaseAgentsCommand constructor",
)

// ReleaseAgentsCommand brings back every agent whose delivery window ended by now.
type ReleaseAgentsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewReleaseAgentsCommand(now time.Time) (ReleaseAgentsCommand, error) {
	if now.IsZero() {
		return ReleaseAgentsCommand{}, errs.NewValueIsRequiredError("now")
	}
	return ReleaseAgentsCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (c ReleaseAgentsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseAgentsCommandIsNotConstructed)
}

func (c ReleaseAgentsCommand) Now() time.Time {
	return c.now
}
