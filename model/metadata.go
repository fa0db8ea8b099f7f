package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=GeneratedOption -linecomment -output=generated_string.go

// GeneratedOption tells whether the datastore produces a column value.
type GeneratedOption int

const (
	GeneratedNone     GeneratedOption = iota // none
	GeneratedIdentity                        // identity
	GeneratedComputed                        // computed
)

// ParseGeneratedOption parses "none", "identity" or "computed", ignoring
// case. The empty string is GeneratedNone.
func ParseGeneratedOption(s string) (GeneratedOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return GeneratedNone, nil
	case "identity":
		return GeneratedIdentity, nil
	case "computed":
		return GeneratedComputed, nil
	default:
		return GeneratedNone, fmt.Errorf("%w: unknown generated option %q", ErrInvalidSchema, s)
	}
}

func (g GeneratedOption) valid() bool {
	return g >= GeneratedNone && g <= GeneratedComputed
}

// Table is the table identity of a model.
type Table struct {
	Name   string `yaml:"name"`
	Schema string `yaml:"schema,omitempty"`
}

// Tabler is implemented by models that declare their table identity.
// Table is called once, on a zero value.
type Tabler interface {
	Table() Table
}

// Column is the classification metadata of one property.
type Column struct {
	// Order places the column before all columns without one.
	Order       *int            `yaml:"order,omitempty"`
	Ignored     bool            `yaml:"ignored,omitempty"`
	Key         bool            `yaml:"key,omitempty"`
	Generated   GeneratedOption `yaml:"generated,omitempty"`
	Concurrency bool            `yaml:"concurrency,omitempty"`
}

// Ordinal returns a pointer to n, for Column.Order literals.
func Ordinal(n int) *int { return &n }

// Schema is the declarative metadata of one model type. Columns are keyed
// by property name.
type Schema struct {
	Table   *Table            `yaml:"table,omitempty"`
	Columns map[string]Column `yaml:"columns,omitempty"`
}
