package inventory

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"orderdesk/internal/pkg/errs"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError carries the level that was found when a decrement was refused.
type InsufficientStockError struct {
	ItemID    string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s requested %d, available %d", ErrInsufficientStock, e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Stock is the aggregate of stock levels. Unknown ids read as zero.
type Stock struct {
	levels map[string]int
}

// NewStock copies levels into a new aggregate. Empty ids and negative counts are rejected.
func NewStock(levels map[string]int) (*Stock, error) {
	s := &Stock{levels: make(map[string]int, len(levels))}

	var errList []error
	for id, count := range levels {
		errList = append(errList, s.set(id, count))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return s, nil
}

// Level returns the current count for id.
func (s *Stock) Level(id string) int {
	return s.levels[id]
}

// Check reports whether qty units of id can be taken.
func (s *Stock) Check(id string, qty int) bool {
	return qty > 0 && s.levels[id] >= qty
}

// Decrement removes qty units of id, or fails with *InsufficientStockError.
func (s *Stock) Decrement(id string, qty int) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, "unbounded")
	}
	available := s.levels[id]
	if available < qty {
		return &InsufficientStockError{ItemID: id, Requested: qty, Available: available}
	}
	s.levels[id] = available - qty
	return nil
}

// Levels returns a snapshot of every tracked level.
func (s *Stock) Levels() map[string]int {
	out := make(map[string]int, len(s.levels))
	for id, count := range s.levels {
		out[id] = count
	}
	return out
}

// IDs returns the tracked item ids, sorted.
func (s *Stock) IDs() []string {
	ids := make([]string, 0, len(s.levels))
	for id := range s.levels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Stock) set(id string, count int) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	if count < 0 {
		return errs.NewValueIsOutOfRangeError(id, count, 0, "unbounded")
	}
	s.levels[id] = count
	return nil
}
