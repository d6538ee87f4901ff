package catalog

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Catalog is the ordered, immutable menu.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// New builds a catalog from entries in display order. Names and ids must be unique.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	ids := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[e.Name()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("duplicate menu item %q", e.Name()))
		}
		if _, dup := ids[e.ID()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("duplicate stock id %q", e.ID()))
		}
		ids[e.ID()] = struct{}{}
		c.byName[e.Name()] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Get looks an item up by its exact (lowercase) name.
func (c *Catalog) Get(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Entries returns a copy of the menu in insertion order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
