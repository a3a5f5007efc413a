package format

import (
	"fmt"
	"strings"

	"github.com/jwtly10/planview/internal/plan"
)

// MatchTicker picks the instrument to show for a chart symbol.
//
// Every ticker is upper-cased and looked for inside the upper-cased filter;
// the longest hit wins and ties go to the lexicographically first ticker, so
// "NQZ5" selects "NQ". With an empty filter, or no hit, the first ticker is
// returned and matched is false. ok is false only for a plan with no
// instruments.
func MatchTicker(p plan.StudyPlan, filter string) (ticker string, matched, ok bool) {
	tickers := p.Tickers()
	if len(tickers) == 0 {
		return "", false, false
	}
	if filter == "" {
		return tickers[0], false, true
	}

	upper := strings.ToUpper(filter)
	best := 0
	for _, t := range tickers {
		tu := strings.ToUpper(t)
		if tu != "" && len(tu) > best && strings.Contains(upper, tu) {
			ticker, best = t, len(tu)
		}
	}
	if best == 0 {
		return tickers[0], false, true
	}
	return ticker, true, true
}

// ForSymbol renders the single instrument that best matches symbolFilter,
// with the generation time shown in New York civil time.
func ForSymbol(p plan.StudyPlan, symbolFilter string) string {
	var sb strings.Builder
	date, clock := easternTimestamp(p.GeneratedAt)

	ticker, _, ok := MatchTicker(p, symbolFilter)
	if !ok {
		ticker = symbolFilter
		if ticker == "" {
			ticker = "-"
		}
	}

	sb.WriteString(fmt.Sprintf("Plan version: %s\n", p.Version))
	sb.WriteString(fmt.Sprintf("Generated date (NY): %s\n", date))
	sb.WriteString(fmt.Sprintf("Generated time (NY): %s\n", clock))
	sb.WriteString(fmt.Sprintf("Ticker: %s\n", ticker))

	inst := p.Instruments[ticker]
	if !ok || inst.Empty() {
		sb.WriteString(noZones)
		return sb.String()
	}

	for _, z := range inst.Zones {
		writeZoneLine(&sb, z)
	}
	if inst.Flip != nil {
		sb.WriteString(fmt.Sprintf("  Flip: %s | Range %s\n", inst.Flip.Label, Range(inst.Flip.Range)))
	}

	return sb.String()
}

func writeZoneLine(sb *strings.Builder, z plan.Zone) {
	title := "Long"
	if z.Direction == plan.Sell {
		title = "Short"
	}
	label := z.Label
	if label == "" {
		label = z.Direction.Token()
	}

	sb.WriteString(fmt.Sprintf("  %s: %s | Range %s | SL %s | TP1 %s | TP2 %s\n",
		title, label, Range(z.Range), Price(z.SL), Price(z.TP1), Price(z.TP2)))
	if z.Invalidation != nil {
		sb.WriteString(fmt.Sprintf("    Invalidation: %s\n", Range(*z.Invalidation)))
	}
}
