// Package format renders a loaded plan as plain monospace text.
//
// All prices use two fixed decimals with a period separator, independent of
// locale. Output depends only on the input plan.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwtly10/planview/internal/plan"
)

const noZones = "  (no zones)\n"

// Price renders a price with exactly two decimals, e.g. 25000 -> "25000.00".
func Price(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Range renders a price band as "low-high".
func Range(r plan.PriceRange) string {
	return Price(r.Low) + "-" + Price(r.High)
}

// Plan renders every instrument, tickers in lexicographic order. Each block
// repeats the version and the raw generation timestamp. A plan without
// instruments still gets the header and the (no zones) placeholder.
func Plan(p plan.StudyPlan) string {
	var sb strings.Builder

	tickers := p.Tickers()
	if len(tickers) == 0 {
		writeHeader(&sb, p)
		sb.WriteString(noZones)
		return sb.String()
	}

	for i, ticker := range tickers {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeInstrumentBlock(&sb, p, ticker, p.Instruments[ticker])
	}

	return sb.String()
}

func writeInstrumentBlock(sb *strings.Builder, p plan.StudyPlan, ticker string, inst plan.InstrumentPlan) {
	writeHeader(sb, p)
	sb.WriteString(fmt.Sprintf("=== %s ===\n", ticker))

	if inst.Empty() {
		sb.WriteString(noZones)
		return
	}

	if len(inst.Zones) > 0 {
		sb.WriteString(fmt.Sprintf("  %-3s %-5s %-21s %-10s %-10s %-10s %s\n",
			"#", "DIR", "RANGE", "SL", "TP1", "TP2", "INVALID"))
	}
	for i, z := range inst.Zones {
		invalid := "-"
		if z.Invalidation != nil {
			invalid = Range(*z.Invalidation)
		}
		sb.WriteString(fmt.Sprintf("  %-3d %-5s %-21s %-10s %-10s %-10s %s\n",
			i+1, z.Direction.Token(), Range(z.Range), Price(z.SL), Price(z.TP1), Price(z.TP2), invalid))
	}

	if inst.Flip != nil {
		sb.WriteString(fmt.Sprintf("  %-9s %-21s %s\n", "FLIP", Range(inst.Flip.Range), inst.Flip.Label))
	}
}

func writeHeader(sb *strings.Builder, p plan.StudyPlan) {
	sb.WriteString(fmt.Sprintf("Plan version: %s\n", p.Version))
	sb.WriteString(fmt.Sprintf("Generated at: %s\n", p.GeneratedAt))
}
