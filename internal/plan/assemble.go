package plan

import (
	"fmt"

	"github.com/jwtly10/planview/internal/logging"
	"gopkg.in/yaml.v3"
)

var planLog = logging.New("plan")

// parseInstrument reads one ticker's block. docSchema is the layout implied
// by the document version (SchemaUnknown when unregistered).
func parseInstrument(n *yaml.Node, docSchema Schema) (InstrumentPlan, error) {
	m, ok := asMapping(n)
	if !ok {
		return InstrumentPlan{}, fmt.Errorf("instrument must be a YAML mapping, got a %s", kindName(n))
	}

	schema, err := detectSchema(m, docSchema)
	if err != nil {
		return InstrumentPlan{}, err
	}

	inst := InstrumentPlan{Schema: schema}

	switch schema {
	case SchemaZoneList:
		if inst.Zones, err = parseZoneList(m.get(keyZones)); err != nil {
			return InstrumentPlan{}, err
		}
	case SchemaSlots:
		for _, slot := range []struct {
			key string
			dir Direction
		}{
			{keyZoneLong, Buy},
			{keyZoneShort, Sell},
		} {
			zn := m.get(slot.key)
			if isNull(zn) {
				continue
			}
			z, err := parseZone(zn, SchemaSlots, slot.dir)
			if err != nil {
				return InstrumentPlan{}, fieldError(slot.key, err)
			}
			inst.Zones = append(inst.Zones, z)
		}
	}

	if inst.Flip, err = parseFlip(m.get(keyFlip)); err != nil {
		return InstrumentPlan{}, err
	}

	return inst, nil
}

func parseZoneList(n *yaml.Node) ([]Zone, error) {
	if isNull(n) {
		return nil, nil
	}
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s must be a YAML sequence, got a %s", keyZones, kindName(n))
	}

	zones := make([]Zone, 0, len(n.Content))
	for i, zn := range n.Content {
		z, err := parseZone(zn, SchemaZoneList, "")
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", keyZones, i, err)
		}
		zones = append(zones, z)
	}
	return zones, nil
}

// assemble builds the plan from the root mapping. It stops at the first
// failing instrument and reports it as an *InstrumentError.
func assemble(root *yaml.Node) (*StudyPlan, error) {
	m, ok := asMapping(root)
	if !ok {
		return nil, fmt.Errorf("%w: root must be a mapping, got a %s", ErrInvalidRoot, kindName(root))
	}

	version, okV := scalarString(m.get(keyVersion))
	generatedAt, okG := scalarString(m.get(keyGeneratedAt))
	if !okV || !okG || isNull(m.get(keyVersion)) || isNull(m.get(keyGeneratedAt)) {
		return nil, fmt.Errorf("missing required fields %s or %s", keyVersion, keyGeneratedAt)
	}

	p := &StudyPlan{
		Version:     version,
		GeneratedAt: generatedAt,
		Instruments: make(map[string]InstrumentPlan),
	}

	schema := SchemaForVersion(version)
	planLog.Debug("Assembling plan", "version", version, "schema", schema.String())

	err := m.each(func(ticker string, val *yaml.Node) error {
		if ticker == keyVersion || ticker == keyGeneratedAt {
			return nil
		}
		if _, dup := p.Instruments[ticker]; dup {
			planLog.Warn("Duplicate ticker ignored", "ticker", ticker)
			return nil
		}

		inst, err := parseInstrument(val, schema)
		if err != nil {
			return &InstrumentError{Ticker: ticker, Err: err}
		}
		p.Instruments[ticker] = inst
		planLog.Debug("Parsed instrument", "ticker", ticker, "zones", len(inst.Zones), "flip", inst.Flip != nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}
