package services

import (
	"errors"
	"math"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// minutesPerDistanceUnit converts grid distance into minutes.
const minutesPerDistanceUnit = 2

// ErrNoEligibleAgent is returned when no agent can carry an order of the requested size.
var ErrNoEligibleAgent = errors.New("no eligible agent")

// Assignment is the result of a successful dispatch plan.
type Assignment struct {
	Agent       *fleet.Agent
	ETAMinutes  int
	Destination kernel.Location
	Size        fleet.Capacity
}

// DispatchPlanner picks the delivery agent for an order.
//
// Selection algorithm:
//   - Geocodes the address
//   - Sizes the order by total quantity
//   - Keeps agents whose vehicle can carry that size (and, when status
//     tracking is on, who are idle)
//   - Picks the agent parked closest to the restaurant; the first one wins a tie
//   - ETA is (agent distance + destination distance) * 2, rounded down
//
// The planner does not change any agent; the caller dispatches the result.
type DispatchPlanner struct {
	geocoder    Geocoder
	restaurant  kernel.Location
	requireIdle bool
}

// NewDispatchPlanner builds a planner.
//
// Parameters:
//   - geocoder: resolves delivery addresses to grid locations
//   - requireIdle: when set, agents that are en route are never chosen
//
// Returns:
//   - *DispatchPlanner: the planner
//   - error: ErrValueIsRequired when geocoder is nil
//
// Example:
//
//	planner, err := services.NewDispatchPlanner(services.NewHashGeocoder(), false)
//	if err != nil {
//	    return err
//	}
//	a, err := planner.Assign("12 Elm Street", lines, agents)
func NewDispatchPlanner(geocoder Geocoder, requireIdle bool) (*DispatchPlanner, error) {
	if geocoder == nil {
		return nil, errs.NewValueIsRequiredError("geocoder")
	}
	return &DispatchPlanner{
		geocoder:    geocoder,
		restaurant:  kernel.Origin(),
		requireIdle: requireIdle,
	}, nil
}

// Assign plans delivery of lines to address with one of agents.
//
// Returns ErrNoEligibleAgent when nobody can take the order.
func (p *DispatchPlanner) Assign(address string, lines []cart.Line, agents []*fleet.Agent) (Assignment, error) {
	destination, err := p.geocoder.Locate(address)
	if err != nil {
		return Assignment{}, err
	}

	size := fleet.ClassifyLoad(cart.TotalQuantity(lines))
	best, bestDistance, err := p.nearestEligible(size, agents)
	if err != nil {
		return Assignment{}, err
	}

	travel, err := p.restaurant.Distance(destination)
	if err != nil {
		return Assignment{}, err
	}

	return Assignment{
		Agent:       best,
		ETAMinutes:  int(math.Floor((bestDistance + travel) * minutesPerDistanceUnit)),
		Destination: destination,
		Size:        size,
	}, nil
}

func (p *DispatchPlanner) nearestEligible(size fleet.Capacity, agents []*fleet.Agent) (*fleet.Agent, float64, error) {
	var (
		best         *fleet.Agent
		bestDistance = math.MaxFloat64
	)

	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, 0, err
		}
		if !a.CanCarry(size) || (p.requireIdle && !a.IsIdle()) {
			continue
		}

		d, err := a.Location().Distance(p.restaurant)
		if err != nil {
			return nil, 0, err
		}
		if d < bestDistance {
			bestDistance = d
			best = a
		}
	}

	if best == nil {
		return nil, 0, ErrNoEligibleAgent
	}
	return best, bestDistance, nil
}
