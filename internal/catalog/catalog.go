package catalog

import "fmt"

// Catalog is the immutable place collection shared by all searches. It is
// built once from an entry slice and never modified afterwards; refreshing
// the catalog means building a new Catalog, not mutating this one.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// New builds a catalog from entries. Duplicate ids are rejected.
func New(entries []Entry) (*Catalog, error) {
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry %d: empty id", i)
		}
		if prev, ok := byID[e.ID]; ok {
			return nil, fmt.Errorf("duplicate entry id %q (positions %d and %d)", e.ID, prev, i)
		}
		byID[e.ID] = i
	}
	return &Catalog{entries: entries, byID: byID}, nil
}

// Entries returns the backing entry slice. Callers must treat it as read-only.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// ByID returns the entry with the given id.
func (c *Catalog) ByID(id string) (*Entry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
