package plan

import "fmt"

const (
	// SchemaUnknown means the version string is not registered and each
	// instrument is classified by its marker keys.
	SchemaUnknown Schema = iota
	// SchemaZoneList: `zones` sequence with per-zone `direction`.
	SchemaZoneList
	// SchemaSlots: `zone_long` / `zone_short` maps with a `label` each.
	SchemaSlots
)

type Schema int

func (s Schema) String() string {
	switch s {
	case SchemaZoneList:
		return "zone-list"
	case SchemaSlots:
		return "slots"
	default:
		return "unknown"
	}
}

const (
	keyVersion     = "v"
	keyGeneratedAt = "generated_at"

	keyZones     = "zones"
	keyZoneLong  = "zone_long"
	keyZoneShort = "zone_short"
	keyFlip      = "flip"
)

var knownVersions = map[string]Schema{
	"1.4":         SchemaZoneList,
	"1.5-min-obj": SchemaSlots,
}

// SchemaForVersion maps a plan `v` value to the zone layout it uses.
func SchemaForVersion(version string) Schema {
	return knownVersions[version]
}

// detectSchema picks the layout of one instrument from its marker keys.
// want is the schema implied by the document version, or SchemaUnknown.
func detectSchema(node mapping, want Schema) (Schema, error) {
	hasList := node.has(keyZones)
	hasSlots := node.has(keyZoneLong) || node.has(keyZoneShort)

	if hasList && hasSlots {
		return SchemaUnknown, fmt.Errorf("instrument mixes %q with %q/%q", keyZones, keyZoneLong, keyZoneShort)
	}

	switch want {
	case SchemaZoneList:
		if hasSlots {
			return want, fmt.Errorf("%q/%q are not part of the zone-list schema", keyZoneLong, keyZoneShort)
		}
		return want, nil
	case SchemaSlots:
		if hasList {
			return want, fmt.Errorf("%q is not part of the slot schema", keyZones)
		}
		return want, nil
	}

	if hasList {
		return SchemaZoneList, nil
	}
	// Flip-only or empty instruments default to the slot layout.
	return SchemaSlots, nil
}
