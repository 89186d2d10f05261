package mapping

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed html.yaml
var htmlTable []byte

// LoadFile loads and parses a YAML or JSON mapping table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML (or JSON) data into a Table and validates it.
func Parse(data []byte) (*Table, error) {
	var t Table

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&t)

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// HTML returns a fresh copy of the built-in HTML base table.
func HTML() *Table {
	t, err := Parse(htmlTable)
	if err != nil {
		panic(fmt.Sprintf("built-in HTML mapping is invalid: %v", err))
	}

	return t
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Table) {
	for key, e := range t.Elements {
		if e.Styles == "" {
			e.Styles = StylesMerge
		}

		if e.Dependency != nil && e.Dependency.Type == "" {
			e.Dependency.Type = "package"
		}

		t.Elements[key] = e
	}
}

// Marshal serializes a Table to YAML.
func Marshal(t *Table) ([]byte, error) {
	return yaml.Marshal(t)
}

// WriteFile writes a Table to the given path.
func WriteFile(t *Table, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
