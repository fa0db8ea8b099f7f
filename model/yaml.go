package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts the option names understood by ParseGeneratedOption.
func (g *GeneratedOption) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: generated option must be a string", ErrInvalidSchema, node.Line)
	}

	v, err := ParseGeneratedOption(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*g = v

	return nil
}

// MarshalYAML writes the option name.
func (g GeneratedOption) MarshalYAML() (any, error) {
	if !g.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSchema, g)
	}

	return g.String(), nil
}

// ParseSchema decodes a YAML schema document:
//
//	table: {name: users, schema: auth}
//	columns:
//	  ID: {key: true, generated: identity}
//	  Name: {order: 0}
//	  Cache: {ignored: true}
//
// Unknown keys are rejected.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Schema{}, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return s, nil
}

// MarshalSchema encodes s as a YAML schema document.
func MarshalSchema(s Schema) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return data, nil
}
