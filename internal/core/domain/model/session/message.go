package session

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Role identifies who said a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Validate() error {
	if r != RoleUser && r != RoleAssistant {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
	return nil
}

// Message is one transcript entry.
type Message struct {
	Role    Role
	Content string
}
