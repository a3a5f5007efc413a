package plan

import (
	"fmt"
	"sort"
)

const (
	Buy  Direction = "buy"
	Sell Direction = "sell"
)

// Direction is the trading side of a zone. The values match the YAML tokens.
type Direction string

// Token returns the upper-case form used in rendered output (BUY / SELL).
func (d Direction) Token() string {
	switch d {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "?"
	}
}

func parseDirectionToken(s string) (Direction, error) {
	switch Direction(s) {
	case Buy, Sell:
		return Direction(s), nil
	}
	return "", fmt.Errorf("direction must be %q or %q, got %q", Buy, Sell, s)
}

// PriceRange is a [low, high] band. Ordering is not enforced at parse time.
type PriceRange struct {
	Low  float64
	High float64
}

// Valid reports whether the range has positive width.
func (r PriceRange) Valid() bool {
	return r.High > r.Low
}

func (r PriceRange) Width() float64 {
	return r.High - r.Low
}

// Zone is a single trading setup.
type Zone struct {
	Direction    Direction
	Label        string
	Range        PriceRange
	SL           float64
	TP1          float64
	TP2          float64
	Invalidation *PriceRange

	// Notes holds free-form per-field remarks (zone list schema only).
	Notes map[string]string
}

// FlipZone marks the band where the trading bias inverts.
type FlipZone struct {
	Range PriceRange
	Label string
}

// InstrumentPlan is one ticker's zones plus an optional flip.
//
// Under SchemaSlots there is at most one zone per direction and the long zone
// comes first. Under SchemaZoneList any number of zones is allowed.
type InstrumentPlan struct {
	Schema Schema
	Zones  []Zone
	Flip   *FlipZone
}

// Long returns the first buy zone.
func (p InstrumentPlan) Long() (Zone, bool) {
	return p.first(Buy)
}

// Short returns the first sell zone.
func (p InstrumentPlan) Short() (Zone, bool) {
	return p.first(Sell)
}

func (p InstrumentPlan) first(d Direction) (Zone, bool) {
	for _, z := range p.Zones {
		if z.Direction == d {
			return z, true
		}
	}
	return Zone{}, false
}

// Empty is true when there are neither zones nor a flip.
func (p InstrumentPlan) Empty() bool {
	return len(p.Zones) == 0 && p.Flip == nil
}

// StudyPlan is the fully loaded plan document.
type StudyPlan struct {
	Version string
	// GeneratedAt is kept as the raw ISO-8601 string.
	GeneratedAt string
	Instruments map[string]InstrumentPlan
}

// Tickers returns the instrument keys in lexicographic order.
func (p StudyPlan) Tickers() []string {
	tickers := make([]string, 0, len(p.Instruments))
	for t := range p.Instruments {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// LoadResult flattens a load into a plan-or-message pair for callers that
// only want a string. Plan must not be read when ErrorMessage is set.
type LoadResult struct {
	Plan         StudyPlan
	ErrorMessage string
}

func (r LoadResult) Success() bool {
	return r.ErrorMessage == ""
}
