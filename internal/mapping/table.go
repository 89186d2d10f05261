package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"uidl-generator/internal/uidl"
)

// Style strategies.
const (
	StylesMerge  = "merge"
	StylesIgnore = "ignore"
)

// Table is one mapping table.
type Table struct {
	// Elements maps UIDL element types to their concrete rendering.
	Elements map[string]Entry `yaml:"elements" json:"elements"`
	// Events renames UIDL event names to target event attributes.
	Events map[string]string `yaml:"events,omitempty" json:"events,omitempty"`
	// Attributes renames UIDL attribute names to target attribute names.
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// Entry is the rule for a single UIDL element type.
type Entry struct {
	ElementType string           `yaml:"elementType" json:"elementType"`
	Attrs       map[string]any   `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Style       map[string]any   `yaml:"style,omitempty" json:"style,omitempty"`
	Styles      string           `yaml:"styles,omitempty" json:"styles,omitempty"`
	SelfClosing bool             `yaml:"selfClosing,omitempty" json:"selfClosing,omitempty"`
	Dependency  *uidl.Dependency `yaml:"dependency,omitempty" json:"dependency,omitempty"`
}

// NewTable creates a table from element entries.
func NewTable(elements map[string]Entry) *Table {
	t := &Table{Elements: elements}
	applyDefaults(t)

	return t
}

// Validate checks that every entry maps to exactly one concrete tag and
// uses a known style strategy.
func (t *Table) Validate() error {
	var errs []error

	for _, key := range slices.Sorted(maps.Keys(t.Elements)) {
		e := t.Elements[key]
		if strings.TrimSpace(e.ElementType) == "" {
			errs = append(errs, fmt.Errorf("mapping for %q has no elementType", key))
		}

		switch e.Styles {
		case "", StylesMerge, StylesIgnore:
		default:
			errs = append(errs, fmt.Errorf("mapping for %q has unknown styles strategy %q", key, e.Styles))
		}
	}

	return errors.Join(errs...)
}

// Types returns the element types the table maps, sorted.
func (t *Table) Types() []string {
	return slices.Sorted(maps.Keys(t.Elements))
}
