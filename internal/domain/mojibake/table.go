// Package mojibake holds the table of known mis-decoded sequences and the
// pure scan and repair passes that run over it.
package mojibake

import (
	"fmt"
	"slices"
	"strings"
)

// Entry maps one broken sequence to its canonical replacement.
type Entry struct {
	Name      string `json:"name"`
	Broken    string `json:"broken"`
	Canonical string `json:"canonical"`
	Label     string `json:"label"`
}

// Description is the message reported for an occurrence of the entry.
func (e Entry) Description() string {
	return fmt.Sprintf("%s should be %s", e.Label, e.Canonical)
}

// Table is an ordered, read-only list of entries. Earlier entries take
// precedence: text they match is never seen by later ones.
type Table struct {
	entries []Entry
}

// NewTable validates entries and returns them as a Table. Every broken
// sequence and every name must be unique; canonical targets may repeat.
func NewTable(entries ...Entry) (*Table, error) {
	names := make(map[string]int, len(entries))
	broken := make(map[string]int, len(entries))

	for i, e := range entries {
		switch {
		case e.Name == "":
			return nil, fmt.Errorf("entry %d: name must not be empty", i)
		case e.Broken == "":
			return nil, fmt.Errorf("entry %q: broken sequence must not be empty", e.Name)
		case strings.IndexByte(e.Broken, 0) >= 0:
			return nil, fmt.Errorf("entry %q: broken sequence must not contain NUL", e.Name)
		case e.Canonical == "":
			return nil, fmt.Errorf("entry %q: canonical form must not be empty", e.Name)
		case strings.Contains(e.Canonical, e.Broken):
			return nil, fmt.Errorf("entry %q: canonical form contains its own broken sequence", e.Name)
		}
		if j, ok := names[e.Name]; ok {
			return nil, fmt.Errorf("entry %d: name %q already used by entry %d", i, e.Name, j)
		}
		if j, ok := broken[e.Broken]; ok {
			return nil, fmt.Errorf("entry %q: broken sequence %+q already mapped by %q", e.Name, e.Broken, entries[j].Name)
		}
		names[e.Name] = i
		broken[e.Broken] = i
	}

	return &Table{entries: slices.Clone(entries)}, nil
}

// Entries returns a copy of the entries in match order.
func (t *Table) Entries() []Entry { return slices.Clone(t.entries) }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the entry with the given name.
func (t *Table) Lookup(name string) (Entry, bool) {
	for _, e := range t.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Without returns a new table with the named entries removed.
// Unknown names are an error so that typos in configuration surface.
func (t *Table) Without(names ...string) (*Table, error) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := t.Lookup(n); !ok {
			return nil, fmt.Errorf("unknown pattern %q", n)
		}
		drop[n] = true
	}

	kept := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if !drop[e.Name] {
			kept = append(kept, e)
		}
	}
	return NewTable(kept...)
}

// Prepend returns a new table with extra entries placed ahead of the
// existing ones, so they win over built-in sequences.
func (t *Table) Prepend(extra ...Entry) (*Table, error) {
	return NewTable(append(slices.Clone(extra), t.entries...)...)
}
