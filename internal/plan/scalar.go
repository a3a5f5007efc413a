package plan

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseDouble converts a YAML scalar to a float64. strconv is locale
// independent, so "24500.25", "-3", "1e3" parse the same everywhere.
func parseDouble(n *yaml.Node) (float64, error) {
	n = resolve(n)
	if n == nil {
		return 0, ErrEmptyScalar
	}
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("%w: expected a scalar, got a %s", ErrUnparsableNumber, kindName(n))
	}

	text := strings.TrimSpace(n.Value)
	if text == "" {
		return 0, ErrEmptyScalar
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableNumber, n.Value)
	}
	return v, nil
}

// parsePriceRange reads a [low, high] pair. Ordering is not checked.
func parsePriceRange(n *yaml.Node) (PriceRange, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return PriceRange{}, ErrNotASequence
	}
	if len(n.Content) != 2 {
		return PriceRange{}, fmt.Errorf("%w, got %d", ErrWrongArity, len(n.Content))
	}

	low, err := parseDouble(n.Content[0])
	if err != nil {
		return PriceRange{}, err
	}
	high, err := parseDouble(n.Content[1])
	if err != nil {
		return PriceRange{}, err
	}
	return PriceRange{Low: low, High: high}, nil
}

// requireDouble looks up a numeric field, naming it in any error.
func requireDouble(m mapping, field string) (float64, error) {
	n := m.get(field)
	if n == nil {
		return 0, missingField(field)
	}
	v, err := parseDouble(n)
	if err != nil {
		return 0, fieldError(field, err)
	}
	return v, nil
}

func requireRange(m mapping, field string) (PriceRange, error) {
	n := m.get(field)
	if n == nil {
		return PriceRange{}, missingField(field)
	}
	r, err := parsePriceRange(n)
	if err != nil {
		return PriceRange{}, fieldError(field, err)
	}
	return r, nil
}

// optionalRange treats a missing key or explicit null as absent.
func optionalRange(m mapping, field string) (*PriceRange, error) {
	n := m.get(field)
	if isNull(n) {
		return nil, nil
	}
	r, err := parsePriceRange(n)
	if err != nil {
		return nil, fieldError(field, err)
	}
	return &r, nil
}

func requireString(m mapping, field string) (string, error) {
	n := m.get(field)
	if isNull(n) {
		return "", missingField(field)
	}
	s, ok := scalarString(n)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got a %s", field, kindName(n))
	}
	return s, nil
}
