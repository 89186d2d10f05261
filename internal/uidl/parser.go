package uidl

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// Decode parses raw JSON into the generic document shape the validators
// and ParseComponentJSON operate on.
func Decode(data []byte) (map[string]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse UIDL JSON: %w", err)
	}

	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("UIDL document must be an object, got %T", v)
	}

	return doc, nil
}

// ParseComponentJSON converts a schema-valid document into a Component.
func ParseComponentJSON(doc map[string]any) (*Component, error) {
	var c Component
	if err := recompose(doc, &c); err != nil {
		return nil, fmt.Errorf("failed to parse component %v: %w", doc["name"], err)
	}

	return &c, nil
}

// ParseProjectJSON converts a project document into a Project.
func ParseProjectJSON(doc map[string]any) (*Project, error) {
	var p Project
	if err := recompose(doc, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project %v: %w", doc["name"], err)
	}

	return &p, nil
}

// recompose maps a generic document onto a typed value through the json
// struct tags of the model.
func recompose(doc map[string]any, target any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, target)
}
