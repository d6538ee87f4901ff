package kernel

import (
	"errors"
	"fmt"
	"math"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// Coordinate is one axis of a point on the delivery grid.
type Coordinate int

const (
	// LocationMin is the lowest coordinate on either axis. The restaurant sits at (0,0).
	LocationMin Coordinate = 0
	// LocationMax is the highest coordinate on either axis.
	LocationMax Coordinate = 30
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or MustNewLocation")

// Location is a validated point on the delivery grid.
//
// Example:
//
//	loc, err := kernel.NewLocation(5, 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // Location(5,5)
type Location struct { //nolint:recvcheck // setters use pointer receivers
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location after validating both coordinates.
//
// Parameters:
//   - x: horizontal coordinate within [LocationMin..LocationMax]
//   - y: vertical coordinate within [LocationMin..LocationMax]
//
// Returns:
//   - Location: the constructed value
//   - error: ErrValueIsOutOfRange for every axis outside the grid, joined
//
// Example:
//
//	loc, err := kernel.NewLocation(12, 7)
//	if err != nil {
//	    return err
//	}
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for compile-time constants such as the seed roster.
// It panics on invalid coordinates.
func MustNewLocation(x Coordinate, y Coordinate) Location {
	loc, err := NewLocation(x, y)
	if err != nil {
		panic(err)
	}
	return loc
}

// Origin returns the restaurant location (0,0).
func Origin() Location {
	return MustNewLocation(LocationMin, LocationMin)
}

// Validate reports whether the Location came from a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) X() Coordinate {
	return l.x
}

func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer as "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two constructed locations by coordinates.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance returns the straight-line (Euclidean) distance between two locations.
//
// Example:
//
//	a := kernel.MustNewLocation(0, 0)
//	b := kernel.MustNewLocation(3, 4)
//	d, _ := a.Distance(b) // 5
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := float64(l.x - other.x)
	dy := float64(l.y - other.y)
	return math.Hypot(dx, dy), nil
}

func (l *Location) setX(x Coordinate) error {
	if x < LocationMin || x > LocationMax {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMin, LocationMax)
	}

	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < LocationMin || y > LocationMax {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMin, LocationMax)
	}

	l.y = y
	return nil
}
