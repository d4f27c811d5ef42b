package encodeservice

import (
	"slices"
	"strings"
)

// binaryToTextPrefix marks block encodings such as base64_codec that turn
// arbitrary bytes into printable characters.
const binaryToTextPrefix = "base"

// Catalog is the immutable, sorted set of encodings used for sweeps.
type Catalog struct {
	names []string
	index map[string]struct{}
}

// NewCatalog snapshots the registry's canonical names and drops the ones
// that are not byte-oriented text encodings.
func NewCatalog(r *Registry) *Catalog {
	canonical := r.Canonical()

	names := make([]string, 0, len(canonical))
	for _, name := range canonical {
		if Excluded(name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	index := make(map[string]struct{}, len(names))
	for _, name := range names {
		index[name] = struct{}{}
	}
	return &Catalog{names: names, index: index}
}

// Excluded reports whether name is kept out of the catalog.
func Excluded(name string) bool {
	return name == rot13Name || strings.HasPrefix(name, binaryToTextPrefix)
}

// Names returns a copy of the catalog in lexicographic order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Contains reports whether name is a catalog entry.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.names)
}
