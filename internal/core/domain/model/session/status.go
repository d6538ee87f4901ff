package session

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status is where the current order of a session stands.
type Status int

const (
	UnknownStatus Status = iota
	TakingOrder
	Processing
	Confirmed
)

var statusNames = map[Status]string{
	TakingOrder: "taking_order",
	Processing:  "processing",
	Confirmed:   "confirmed",
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known session status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid session status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// BeginFinalize: taking_order -> processing.
func (s Status) BeginFinalize() (Status, error) {
	return s.transition(TakingOrder, Processing)
}

// Confirm: processing -> confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transition(Processing, Confirmed)
}

// Reopen: processing -> taking_order, after a finalize attempt failed.
func (s Status) Reopen() (Status, error) {
	return s.transition(Processing, TakingOrder)
}

// StartNewOrder: confirmed -> taking_order.
func (s Status) StartNewOrder() (Status, error) {
	return s.transition(Confirmed, TakingOrder)
}

func (s Status) transition(from, to Status) (Status, error) {
	if s != from {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move from %s to %s", s, to),
		)
	}
	return to, nil
}
