package fleet

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrIDIsRequired      = errs.NewValueIsRequiredError("id")
	ErrNameIsRequired    = errs.NewValueIsRequiredError("name")
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")

	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent is a delivery driver with a vehicle parked at a fixed grid location.
//
// busyUntil is set only while the agent is en route.
type Agent struct {
	id        string
	name      string
	vehicle   string
	capacity  Capacity
	location  kernel.Location
	status    Status
	busyUntil *time.Time
	guard     guard.ConstructorGuard
}

// NewAgent creates an idle agent.
func NewAgent(id, name, vehicle string, capacity Capacity, location kernel.Location) (*Agent, error) {
	a := &Agent{
		status: Idle,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setVehicle(vehicle),
		a.setCapacity(capacity),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAgent rebuilds an agent from storage.
func RestoreAgent(
	id, name, vehicle string,
	capacity Capacity,
	location kernel.Location,
	status Status,
	busyUntil *time.Time,
) (*Agent, error) {
	a, err := NewAgent(id, name, vehicle, capacity, location)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status == EnRoute && busyUntil == nil {
		return nil, errs.NewValueIsRequiredError("busy until")
	}

	a.status = status
	if status == EnRoute {
		until := *busyUntil
		a.busyUntil = &until
	}
	return a, nil
}

func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() string {
	return a.id
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Vehicle() string {
	return a.vehicle
}

func (a *Agent) Capacity() Capacity {
	return a.capacity
}

func (a *Agent) Location() kernel.Location {
	return a.location
}

func (a *Agent) Status() Status {
	return a.status
}

// BusyUntil is nil unless the agent is en route.
func (a *Agent) BusyUntil() *time.Time {
	if a.busyUntil == nil {
		return nil
	}
	until := *a.busyUntil
	return &until
}

func (a *Agent) IsIdle() bool {
	return a.status == Idle
}

// CanCarry reports whether the agent's vehicle is big enough for an order of the given size.
func (a *Agent) CanCarry(size Capacity) bool {
	return a.capacity.CanServe(size)
}

// Dispatch marks the agent en route until the given time.
func (a *Agent) Dispatch(until time.Time) error {
	next, err := a.status.Dispatch()
	if err != nil {
		return err
	}
	a.status = next
	a.busyUntil = &until
	return nil
}

// DueForRelease reports whether an en route agent's busy window ended at or before now.
func (a *Agent) DueForRelease(now time.Time) bool {
	return a.status == EnRoute && a.busyUntil != nil && !a.busyUntil.After(now)
}

// Release returns the agent to idle.
func (a *Agent) Release() error {
	next, err := a.status.Release()
	if err != nil {
		return err
	}
	a.status = next
	a.busyUntil = nil
	return nil
}

func (a *Agent) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIDIsRequired
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setVehicle(vehicle string) error {
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		return ErrVehicleIsRequired
	}
	a.vehicle = vehicle
	return nil
}

func (a *Agent) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	a.capacity = capacity
	return nil
}

func (a *Agent) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
