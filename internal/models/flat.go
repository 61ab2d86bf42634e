package models

import "fmt"

// FlatEntry is one addressable leaf of a flattened document: a path such
// as "user.skills[2]" and the scalar found there. Value is always nil, a
// bool, a Number, a string, or Empty; containers are never stored here.
type FlatEntry struct {
	Path  string
	Value Value
}

// FlatDocument is the ordered result of flattening one canonical tree.
// It is constructed once, never mutated, and discarded after diffing.
type FlatDocument struct {
	entries []FlatEntry
	index   map[string]int
}

// NewFlatDocument builds a FlatDocument from entries in traversal order.
// Paths are unique by construction (mapping keys are unique per level),
// so the first occurrence wins if a caller hands in duplicates.
func NewFlatDocument(entries []FlatEntry) *FlatDocument {
	d := &FlatDocument{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := d.index[e.Path]; !ok {
			d.index[e.Path] = i
		}
	}
	return d
}

// Entries returns the flat entries in traversal order. Callers must not
// modify the returned slice.
func (d *FlatDocument) Entries() []FlatEntry {
	return d.entries
}

// Len reports the number of flat entries.
func (d *FlatDocument) Len() int {
	return len(d.entries)
}

// Lookup returns the scalar stored at path, if present.
func (d *FlatDocument) Lookup(path string) (Value, bool) {
	i, ok := d.index[path]
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

// DisplayScalar renders a flattened scalar the way reports show it:
// nil as "null", bools as "true"/"false", numbers as their source text,
// strings verbatim, and the empty-container sentinel as "(empty)".
func DisplayScalar(v Value) string {
	switch s := v.(type) {
	case nil:
		return "null"
	case bool:
		if s {
			return "true"
		}
		return "false"
	case Number:
		return string(s)
	case string:
		return s
	case Empty:
		return "(empty)"
	default:
		// Not reachable for values produced by the parsers, but keep
		// something printable for hand-built trees in tests.
		return fmt.Sprintf("%v", s)
	}
}
