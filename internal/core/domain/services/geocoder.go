package services

import (
	"hash/fnv"

	"orderdesk/internal/core/domain/model/kernel"
)

const (
	geocodeMin kernel.Coordinate = 1
	geocodeMax kernel.Coordinate = 30
)

// Geocoder maps a delivery address to a grid point.
type Geocoder interface {
	Locate(address string) (kernel.Location, error)
}

var _ Geocoder = HashGeocoder{}

// HashGeocoder places an address deterministically from an FNV-1a hash of
// its bytes. The same address always lands on the same point, in [1..30] on
// both axes.
type HashGeocoder struct{}

func NewHashGeocoder() HashGeocoder {
	return HashGeocoder{}
}

func (HashGeocoder) Locate(address string) (kernel.Location, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(address))
	sum := h.Sum64()

	span := uint64(geocodeMax - geocodeMin + 1)
	x := geocodeMin + kernel.Coordinate(sum%span)
	y := geocodeMin + kernel.Coordinate((sum>>32)%span)
	return kernel.NewLocation(x, y)
}
