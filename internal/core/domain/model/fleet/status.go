package fleet

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status is the availability of an agent.
type Status int

const (
	UnknownStatus Status = iota
	Idle
	EnRoute
)

var statusNames = map[Status]string{
	Idle:    "idle",
	EnRoute: "en_route",
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known agent status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid agent status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Dispatch moves an idle agent onto the road.
func (s Status) Dispatch() (Status, error) {
	if s != Idle {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispatch", s),
		)
	}
	return EnRoute, nil
}

// Release brings an en route agent back.
func (s Status) Release() (Status, error) {
	if s != EnRoute {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to release", s),
		)
	}
	return Idle, nil
}
