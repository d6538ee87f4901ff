package fleet

import "orderdesk/internal/core/domain/model/kernel"

// DefaultRoster returns the restaurant's drivers in dispatch preference order.
// Ties on distance are broken by this order.
func DefaultRoster() []*Agent {
	specs := []struct {
		id, name, vehicle string
		capacity          Capacity
		x, y              kernel.Coordinate
	}{
		{"D1", "Gustavo", "Station Wagon", Large, 5, 5},
		{"D2", "Jesse", "Scooter", Small, 2, 2},
		{"D3", "Mike", "Armored Truck", Huge, 10, 10},
		{"D4", "Walter", "Sedan", Medium, 20, 20},
	}

	agents := make([]*Agent, 0, len(specs))
	for _, s := range specs {
		a, err := NewAgent(s.id, s.name, s.vehicle, s.capacity, kernel.MustNewLocation(s.x, s.y))
		if err != nil {
			panic(err)
		}
		agents = append(agents, a)
	}
	return agents
}
