package encodeservice

import (
	"fmt"
	"slices"
	"strings"
)

const rot13Name = "rot_13"

// Entry is one registered encoding: its canonical name, the aliases that
// resolve to it and the codec that performs the transformation.
type Entry struct {
	Name    string
	Aliases []string
	Codec   Codec
}

// IANAName returns the IANA charset name of a text encoding, or "" when the
// entry has none.
func (e Entry) IANAName() string {
	if tc, ok := e.Codec.(textCodec); ok {
		return tc.ianaName()
	}
	return ""
}

// Registry maps encoding names and their aliases to codecs.
type Registry struct {
	entries map[string]Entry
	aliases map[string]string
}

// NewRegistry builds the registry of every supported encoding.
func NewRegistry() *Registry {
	var all []Entry
	all = append(all, unicodeEntries()...)
	all = append(all, charmapEntries()...)
	all = append(all, cjkEntries()...)
	all = append(all, hexEntry(), base64Entry(), base32Entry())
	all = append(all, compressEntries()...)
	all = append(all, Entry{Name: rot13Name, Aliases: []string{"rot13"}, Codec: rot13Codec{}})

	return newRegistry(all)
}

func newRegistry(all []Entry) *Registry {
	r := &Registry{
		entries: make(map[string]Entry, len(all)),
		aliases: make(map[string]string),
	}
	for _, e := range all {
		if e.Codec == nil {
			continue
		}
		r.entries[e.Name] = e
		r.aliases[normalizeName(e.Name)] = e.Name
		for _, alias := range e.Aliases {
			r.aliases[normalizeName(alias)] = e.Name
		}
	}
	return r
}

// Lookup resolves name, or one of its aliases, to a codec.
func (r *Registry) Lookup(name string) (Codec, error) {
	e, err := r.Entry(name)
	if err != nil {
		return nil, err
	}
	return e.Codec, nil
}

// Entry resolves name, or one of its aliases, to its registry entry.
func (r *Registry) Entry(name string) (Entry, error) {
	canonical, ok := r.aliases[normalizeName(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnresolvableEncoding, name)
	}
	return r.entries[canonical], nil
}

// Canonical returns the sorted, de-duplicated set of names the aliases point at.
func (r *Registry) Canonical() []string {
	seen := make(map[string]struct{}, len(r.entries))
	for _, canonical := range r.aliases {
		seen[canonical] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Entries returns every registered entry sorted by name.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for _, name := range r.Canonical() {
		entries = append(entries, r.entries[name])
	}
	return entries
}

// normalizeName lower-cases name and folds '-' and ' ' to '_', so "UTF-8",
// "utf 8" and "utf_8" resolve alike.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "_", " ", "_").Replace(name)
}
