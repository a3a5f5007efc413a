package plan

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	keyDirection    = "direction"
	keyLabel        = "label"
	keyRange        = "range"
	keySL           = "sl"
	keyTP1          = "tp1"
	keyTP2          = "tp2"
	keyInvalid      = "invalid"
	keyInvalidation = "invalidation"
	keyNotes        = "notes"
)

// parseZone reads one zone map.
//
// Under SchemaZoneList the direction comes from the zone's own `direction`
// key and `invalid`/`notes` are optional. Under SchemaSlots the direction is
// implied by the slot, `label` is required and the optional range is called
// `invalidation`.
func parseZone(n *yaml.Node, schema Schema, slot Direction) (Zone, error) {
	m, ok := asMapping(n)
	if !ok {
		return Zone{}, fmt.Errorf("zone must be a YAML mapping, got a %s", kindName(n))
	}

	var z Zone
	var err error

	switch schema {
	case SchemaSlots:
		z.Direction = slot
		if z.Label, err = requireString(m, keyLabel); err != nil {
			return Zone{}, err
		}
	default:
		var text string
		if text, err = requireString(m, keyDirection); err != nil {
			return Zone{}, err
		}
		if z.Direction, err = parseDirectionToken(text); err != nil {
			return Zone{}, err
		}
	}

	if z.Range, err = requireRange(m, keyRange); err != nil {
		return Zone{}, err
	}
	if z.SL, err = requireDouble(m, keySL); err != nil {
		return Zone{}, err
	}
	if z.TP1, err = requireDouble(m, keyTP1); err != nil {
		return Zone{}, err
	}
	if z.TP2, err = requireDouble(m, keyTP2); err != nil {
		return Zone{}, err
	}

	invalidKey := keyInvalid
	if schema == SchemaSlots {
		invalidKey = keyInvalidation
	}
	if z.Invalidation, err = optionalRange(m, invalidKey); err != nil {
		return Zone{}, err
	}

	if schema != SchemaSlots {
		z.Notes = parseNotes(m.get(keyNotes))
	}

	return z, nil
}

// parseNotes copies a string-to-string map verbatim. Anything that is not a
// mapping is ignored, as are non-scalar values.
func parseNotes(n *yaml.Node) map[string]string {
	m, ok := asMapping(n)
	if !ok {
		if !isNull(n) {
			planLog.Debug("Ignoring non-mapping notes", "kind", kindName(n))
		}
		return nil
	}

	notes := make(map[string]string, len(m.node.Content)/2)
	_ = m.each(func(key string, val *yaml.Node) error {
		if s, ok := scalarString(val); ok {
			notes[key] = s
		}
		return nil
	})
	return notes
}

// parseFlip returns nil for a missing or null flip block.
func parseFlip(n *yaml.Node) (*FlipZone, error) {
	if isNull(n) {
		return nil, nil
	}
	m, ok := asMapping(n)
	if !ok {
		return nil, fmt.Errorf("flip must be a YAML mapping, got a %s", kindName(n))
	}

	if !m.has(keyRange) || !m.has(keyLabel) {
		return nil, errors.New("flip requires both range and label")
	}

	r, err := requireRange(m, keyRange)
	if err != nil {
		return nil, err
	}
	label, err := requireString(m, keyLabel)
	if err != nil {
		return nil, err
	}
	return &FlipZone{Range: r, Label: label}, nil
}
