// Package series reads value series for the statsring command.
//
// Series come from a comma-separated argument ("500,500,500,500") or from a
// YAML or JSON file holding either a bare list or a {values: [...]} mapping.
package series

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Errors.
var (
	// ErrEmpty is returned when the input holds no values.
	ErrEmpty = errors.New("series: no values")

	// ErrNegative is returned for values below zero.
	ErrNegative = errors.New("series: negative value")

	// ErrNotFinite is returned for NaN or infinite values.
	ErrNotFinite = errors.New("series: value is not finite")
)

// document is the mapping form of a series file.
type document struct {
	Values []float64 `yaml:"values"`
}

// Parse parses comma- or whitespace-separated values.
func Parse(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("series: parse %q: %w", f, err)
		}
		values = append(values, v)
	}
	if err := Validate(values); err != nil {
		return nil, err
	}
	return values, nil
}

// Decode parses a YAML or JSON document.
func Decode(data []byte) ([]float64, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("series: decode: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, ErrEmpty
	}

	var values []float64
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&values); err != nil {
			return nil, fmt.Errorf("series: decode list: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("series: decode mapping: %w", err)
		}
		values = doc.Values
	default:
		return nil, fmt.Errorf("series: decode: want a list or a mapping, got %s", kindName(root.Kind))
	}

	if err := Validate(values); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadFile reads and decodes a series file.
func ReadFile(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	values, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Validate checks that values is non-empty, finite and non-negative.
// A series of zeros passes: the widget draws it without segments.
func Validate(values []float64) error {
	if len(values) == 0 {
		return ErrEmpty
	}
	for i, v := range values {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return fmt.Errorf("%w: index %d", ErrNotFinite, i)
		case v < 0:
			return fmt.Errorf("%w: index %d (%g)", ErrNegative, i, v)
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
