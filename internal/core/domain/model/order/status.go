package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a confirmed order.
//
// State transitions:
//
//	Dispatched ──> Delivered
//
// Delivered is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Dispatched is the initial status: the agent has left the restaurant.
	Dispatched

	// Delivered indicates the agent has handed over the order.
	Delivered
)

var statusNames = map[Status]string{
	Dispatched: "dispatched",
	Delivered:  "delivered",
}

// ParseStatus converts the persisted form back into a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any value other than Dispatched or Delivered are invalid.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Dispatched -> Delivered
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (Unknown, error) if the order is not on its way
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
