package fleet

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Capacity is an ordered vehicle (and order) size class.
type Capacity int

const (
	UnknownCapacity Capacity = iota
	Small
	Medium
	Large
	Huge
)

// Load thresholds: a total strictly above the value moves the order up one class.
const (
	mediumLoadAbove = 2
	largeLoadAbove  = 5
	hugeLoadAbove   = 20
)

var capacityNames = map[Capacity]string{
	Small:  "small",
	Medium: "medium",
	Large:  "large",
	Huge:   "huge",
}

// ParseCapacity is the inverse of Capacity.String.
func ParseCapacity(s string) (Capacity, error) {
	for c, name := range capacityNames {
		if name == s {
			return c, nil
		}
	}
	return UnknownCapacity, errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%q is not a known capacity", s))
}

// ClassifyLoad sizes an order by its total item quantity.
func ClassifyLoad(totalQuantity int) Capacity {
	switch {
	case totalQuantity > hugeLoadAbove:
		return Huge
	case totalQuantity > largeLoadAbove:
		return Large
	case totalQuantity > mediumLoadAbove:
		return Medium
	default:
		return Small
	}
}

func (c Capacity) Validate() error {
	if _, ok := capacityNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not a valid capacity", c))
	}
	return nil
}

// Rank is 1 for small up to 4 for huge, 0 when invalid.
func (c Capacity) Rank() int {
	if c.Validate() != nil {
		return 0
	}
	return int(c)
}

// CanServe reports whether a vehicle of this capacity can carry an order of the given size.
func (c Capacity) CanServe(size Capacity) bool {
	return c.Rank() > 0 && c.Rank() >= size.Rank()
}

func (c Capacity) String() string {
	if name, ok := capacityNames[c]; ok {
		return name
	}
	return "unknown"
}
