package catalog

import (
	"fmt"
)

// Catalog is an immutable, ordered collection of destinations.
// Order is significant: it breaks ranking ties.
type Catalog struct {
	entries []Destination
}

// New validates entries and builds a Catalog that owns its own copy of them.
func New(entries []Destination) (*Catalog, error) {
	owned := make([]Destination, 0, len(entries))
	for i, d := range entries {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		owned = append(owned, d.Clone())
	}
	return &Catalog{entries: owned}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultDestinations())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns copies of every entry in catalog order.
func (c *Catalog) All() []Destination {
	return c.Filter(func(Destination) bool { return true })
}

// ByCategory returns copies of the entries in cat, in catalog order.
func (c *Catalog) ByCategory(cat Category) []Destination {
	return c.Filter(func(d Destination) bool { return d.Category == cat })
}

// Filter returns copies of the entries keep accepts, in catalog order.
func (c *Catalog) Filter(keep func(Destination) bool) []Destination {
	out := make([]Destination, 0, len(c.entries))
	for _, d := range c.entries {
		if keep(d) {
			out = append(out, d.Clone())
		}
	}
	return out
}
