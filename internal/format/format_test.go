package format

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jwtly10/planview/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() plan.StudyPlan {
	return plan.StudyPlan{
		Version:     "1.5-min-obj",
		GeneratedAt: "2025-10-24T06:45:00Z",
		Instruments: map[string]plan.InstrumentPlan{
			"NQ": {
				Schema: plan.SchemaSlots,
				Zones: []plan.Zone{
					{
						Direction:    plan.Buy,
						Label:        "NQ long 24500-24900",
						Range:        plan.PriceRange{Low: 24500, High: 24900},
						SL:           24400,
						TP1:          25000,
						TP2:          25100,
						Invalidation: &plan.PriceRange{Low: 24350, High: 24380},
					},
					{
						Direction: plan.Sell,
						Label:     "NQ short 25250-25320",
						Range:     plan.PriceRange{Low: 25250, High: 25320},
						SL:        25360,
						TP1:       25210,
						TP2:       25150,
					},
				},
				Flip: &plan.FlipZone{Range: plan.PriceRange{Low: 24700, High: 24800}, Label: "Bias change"},
			},
			"ES": {Schema: plan.SchemaSlots},
		},
	}
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "25000.00", Price(25000))
	assert.Equal(t, "15420.25", Price(15420.25))
	assert.Equal(t, "0.13", Price(0.125000001))
	assert.Equal(t, "-3.50", Price(-3.5))
	assert.Equal(t, "24300.00-24380.00", Range(plan.PriceRange{Low: 24300, High: 24380}))
}

func TestPlan_Table(t *testing.T) {
	out := Plan(samplePlan())

	expectedES := "Plan version: 1.5-min-obj\n" +
		"Generated at: 2025-10-24T06:45:00Z\n" +
		"=== ES ===\n" +
		"  (no zones)\n"
	assert.True(t, strings.HasPrefix(out, expectedES), "ES block should come first:\n%s", out)

	assert.Contains(t, out, "\n\nPlan version: 1.5-min-obj\nGenerated at: 2025-10-24T06:45:00Z\n=== NQ ===\n")
	assert.Contains(t, out, "  1   BUY   24500.00-24900.00     24400.00   25000.00   25100.00   24350.00-24380.00\n")
	assert.Contains(t, out, "  2   SELL  25250.00-25320.00     25360.00   25210.00   25150.00   -\n")
	assert.Contains(t, out, "  FLIP      24700.00-24800.00     Bias change\n")
	assert.Less(t, strings.Index(out, "=== ES ==="), strings.Index(out, "=== NQ ==="))
}

func TestPlan_NoInstruments(t *testing.T) {
	assert.Equal(t, "Plan version: 1\nGenerated at: x\n  (no zones)\n",
		Plan(plan.StudyPlan{Version: "1", GeneratedAt: "x"}))
}

func TestPlan_InvalidationSurvivesLoadAndFormat(t *testing.T) {
	p, err := plan.Load(filepath.Join("..", "plan", "testdata", "nq_intraday_flip_example.yaml"))
	require.NoError(t, err)

	assert.Contains(t, Plan(*p), "24300.00-24380.00")
	assert.Contains(t, ForSymbol(*p, "NQ"), "    Invalidation: 24300.00-24380.00\n")
}

func TestPlan_IsDeterministic(t *testing.T) {
	p := samplePlan()
	p.Instruments["YM"] = plan.InstrumentPlan{}
	p.Instruments["CL"] = plan.InstrumentPlan{}

	first := Plan(p)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Plan(p))
	}
	assert.Less(t, strings.Index(first, "=== CL ==="), strings.Index(first, "=== ES ==="))
	assert.Less(t, strings.Index(first, "=== NQ ==="), strings.Index(first, "=== YM ==="))
}

func TestPlan_FlipOnlyInstrument(t *testing.T) {
	p := plan.StudyPlan{
		Version:     "1.4",
		GeneratedAt: "x",
		Instruments: map[string]plan.InstrumentPlan{
			"ES": {Flip: &plan.FlipZone{Range: plan.PriceRange{Low: 1, High: 2}, Label: "f"}},
		},
	}
	out := Plan(p)
	assert.NotContains(t, out, "(no zones)")
	assert.NotContains(t, out, "DIR")
	assert.Contains(t, out, "  FLIP      1.00-2.00             f\n")
}

func TestPlan_EveryPriceHasTwoDecimals(t *testing.T) {
	p, err := plan.Load(filepath.Join("..", "plan", "testdata", "zone_list_example.yaml"))
	require.NoError(t, err)

	out := Plan(*p)
	number := regexp.MustCompile(`\d+(\.\d+)?`)
	twoDecimals := regexp.MustCompile(`^\d+\.\d{2}$`)

	prices := 0
	for _, line := range strings.Split(out, "\n") {
		// Header lines carry the version and raw timestamp.
		if !strings.HasPrefix(line, "  ") {
			continue
		}
		for _, n := range number.FindAllString(line, -1) {
			if strings.Contains(n, ".") {
				assert.Regexp(t, twoDecimals, n)
				prices++
			}
		}
	}
	// 2 zones x (range 2 + sl + tp1 + tp2) + 1 invalid range + flip range
	assert.Equal(t, 2*5+2+2, prices)
	assert.Contains(t, out, "15420.25-15435.00")
	assert.Contains(t, out, "15410.00")
}

func TestForSymbol_BuildsTableWithZones(t *testing.T) {
	table := ForSymbol(samplePlan(), "NQZ5")

	assert.Contains(t, table, "Plan version: 1.5-min-obj")
	assert.Contains(t, table, "Generated date (NY): 2025-10-24")
	assert.Contains(t, table, "Generated time (NY): 02:45:00 America/New_York")
	assert.Contains(t, table, "Ticker: NQ")
	assert.Contains(t, table,
		"  Long: NQ long 24500-24900 | Range 24500.00-24900.00 | SL 24400.00 | TP1 25000.00 | TP2 25100.00")
	assert.Contains(t, table, "    Invalidation: 24350.00-24380.00")
	assert.Contains(t, table,
		"  Short: NQ short 25250-25320 | Range 25250.00-25320.00 | SL 25360.00 | TP1 25210.00 | TP2 25150.00")
	assert.Contains(t, table, "  Flip: Bias change | Range 24700.00-24800.00")
}

func TestForSymbol_EmptyInstrumentShowsPlaceholder(t *testing.T) {
	table := ForSymbol(samplePlan(), "ESZ5")

	assert.Contains(t, table, "Ticker: ES\n  (no zones)\n")
}

func TestForSymbol_EmptyPlan(t *testing.T) {
	p := plan.StudyPlan{Version: "1", GeneratedAt: "bad"}

	assert.Equal(t, "Plan version: 1\n"+
		"Generated date (NY): bad\n"+
		"Generated time (NY): -\n"+
		"Ticker: GCZ5\n"+
		"  (no zones)\n", ForSymbol(p, "GCZ5"))
	assert.Contains(t, ForSymbol(p, ""), "Ticker: -\n")
}

func TestForSymbol_UnlabelledZoneUsesDirection(t *testing.T) {
	p := plan.StudyPlan{
		Version:     "1.4",
		GeneratedAt: "2025-01-15T12:00:00Z",
		Instruments: map[string]plan.InstrumentPlan{
			"ES": {Zones: []plan.Zone{{Direction: plan.Sell, Range: plan.PriceRange{Low: 1, High: 2}, SL: 3, TP1: 0.5, TP2: 0.25}}},
		},
	}
	assert.Contains(t, ForSymbol(p, "ES"), "  Short: SELL | Range 1.00-2.00 | SL 3.00 | TP1 0.50 | TP2 0.25\n")
}

func TestMatchTicker(t *testing.T) {
	p := plan.StudyPlan{Instruments: map[string]plan.InstrumentPlan{"NQ": {}, "ES": {}}}

	ticker, matched, ok := MatchTicker(p, "NQZ5")
	assert.True(t, ok)
	assert.True(t, matched)
	assert.Equal(t, "NQ", ticker)

	ticker, matched, ok = MatchTicker(p, "esh6.cme")
	assert.True(t, ok)
	assert.True(t, matched)
	assert.Equal(t, "ES", ticker)

	ticker, matched, ok = MatchTicker(p, "UNKNOWN")
	assert.True(t, ok, "no match still falls back to an instrument")
	assert.False(t, matched)
	assert.Contains(t, []string{"ES", "NQ"}, ticker)

	ticker, _, ok = MatchTicker(p, "")
	assert.True(t, ok)
	assert.Equal(t, "ES", ticker)

	_, _, ok = MatchTicker(plan.StudyPlan{}, "NQ")
	assert.False(t, ok)
}

func TestMatchTicker_LongestWins(t *testing.T) {
	p := plan.StudyPlan{Instruments: map[string]plan.InstrumentPlan{"M": {}, "MNQ": {}, "NQ": {}}}

	ticker, matched, _ := MatchTicker(p, "MNQZ5")
	assert.True(t, matched)
	assert.Equal(t, "MNQ", ticker)

	// Equal length: lexicographically first wins.
	p = plan.StudyPlan{Instruments: map[string]plan.InstrumentPlan{"NQ": {}, "ZN": {}}}
	ticker, _, _ = MatchTicker(p, "ZNNQ")
	assert.Equal(t, "NQ", ticker)
}

func TestEasternTimestamp(t *testing.T) {
	tests := []struct {
		in, date, clock string
	}{
		{"2025-10-24T06:45:00Z", "2025-10-24", "02:45:00 America/New_York"},
		{"2025-01-15T12:00:00Z", "2025-01-15", "07:00:00 America/New_York"},
		{"2025-01-01T03:00:00Z", "2024-12-31", "22:00:00 America/New_York"},
		{"2025-03-09T06:59:59Z", "2025-03-09", "01:59:59 America/New_York"},
		{"2025-03-09T07:00:00Z", "2025-03-09", "03:00:00 America/New_York"},
		{"2025-11-02T05:59:59Z", "2025-11-02", "01:59:59 America/New_York"},
		{"2025-11-02T06:00:00Z", "2025-11-02", "01:00:00 America/New_York"},
		{"2025-07-04T16:30:00", "2025-07-04", "12:30:00 America/New_York"},
		{"2025-07-04T16:30:00.250Z", "2025-07-04", "12:30:00 America/New_York"},
		{"not a time", "not a time", "-"},
		{"", "", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			date, clock := easternTimestamp(tt.in)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, tt.clock, clock)
		})
	}
}
