package data

import (
	yaml "gopkg.in/yaml.v3"
)

// FromYAML parses a single YAML document into a data tree.  The document's
// top level must be a mapping, since renders are driven from a Map root.
func FromYAML(input []byte) (Map, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(input, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return make(Map), nil
	}
	return New(raw).(Map), nil
}

// FromYAMLValue parses a single YAML document into a data tree node of any
// shape (mapping, sequence, or scalar).
func FromYAMLValue(input []byte) (Value, error) {
	var raw interface{}
	if err := yaml.Unmarshal(input, &raw); err != nil {
		return nil, err
	}
	return New(raw), nil
}
