package mapping

import (
	"maps"
	"slices"
)

// Layers is an ordered stack of tables. Index 0 is the base table; later
// tables take precedence.
type Layers []*Table

// Push returns the stack with t on top. The receiver is left untouched so
// snapshots taken before the push keep their view.
func (l Layers) Push(t *Table) Layers {
	out := make(Layers, 0, len(l)+1)
	out = append(out, l...)

	return append(out, t)
}

// Lookup returns the highest-precedence entry for an element type.
func (l Layers) Lookup(elementType string) (Entry, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] == nil {
			continue
		}

		if e, ok := l[i].Elements[elementType]; ok {
			return e, true
		}
	}

	return Entry{}, false
}

// Event returns the target name of a UIDL event, or the name unchanged.
func (l Layers) Event(name string) string {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] == nil {
			continue
		}

		if v, ok := l[i].Events[name]; ok {
			return v
		}
	}

	return name
}

// Attribute returns the target name of a UIDL attribute, or the name
// unchanged.
func (l Layers) Attribute(name string) string {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] == nil {
			continue
		}

		if v, ok := l[i].Attributes[name]; ok {
			return v
		}
	}

	return name
}

// Types returns every element type known to any layer, sorted.
func (l Layers) Types() []string {
	seen := make(map[string]struct{})

	for _, t := range l {
		if t == nil {
			continue
		}

		for k := range t.Elements {
			seen[k] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}
