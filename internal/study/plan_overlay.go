package study

import (
	"github.com/jwtly10/planview/internal/chart"
	"github.com/jwtly10/planview/internal/format"
	"github.com/jwtly10/planview/internal/types"
	"github.com/jwtly10/planview/internal/watch"
)

// PlanOverlay shows the trading plan for the chart's symbol. It polls its
// watcher on the last bar and rebuilds text and drawings when the plan or
// the symbol changes. While the file is broken the last good plan stays up.
type PlanOverlay struct {
	watcher  *watch.Watcher
	symbol   string
	tickSize float64

	generation uint64
	dirty      bool
	ticker     string
	text       string
	drawings   []chart.Drawing
}

func NewPlanOverlay(w *watch.Watcher, symbol string, tickSize float64) *PlanOverlay {
	return &PlanOverlay{
		watcher:  w,
		symbol:   symbol,
		tickSize: tickSize,
		dirty:    true,
	}
}

func (o *PlanOverlay) Name() string {
	return "Plan " + o.symbol
}

// SetSymbol switches the chart symbol; the layout is rebuilt on the next bar.
func (o *PlanOverlay) SetSymbol(symbol string) {
	if symbol != o.symbol {
		o.symbol = symbol
		o.dirty = true
	}
}

func (o *PlanOverlay) OnBar(bars []types.Bar, index int) {
	if index != len(bars)-1 {
		return
	}
	o.Refresh()
}

// Refresh polls the plan file and rebuilds the overlay if needed. It reports
// whether the overlay changed.
func (o *PlanOverlay) Refresh() bool {
	if _, err := o.watcher.Poll(); err != nil {
		studyLog.Debug("Plan poll failed", "path", o.watcher.Path(), "error", err)
	}

	gen := o.watcher.Generation()
	p, ok := o.watcher.Plan()
	if !ok {
		var text string
		if err := o.watcher.LastError(); err != nil {
			text = "Plan error: " + err.Error() + "\n"
		}
		if !o.dirty && text == o.text {
			return false
		}
		o.text = text
		o.ticker = ""
		o.drawings = nil
		o.dirty = false
		return true
	}
	if !o.dirty && gen == o.generation {
		return false
	}

	o.generation, o.dirty = gen, false
	o.text = format.ForSymbol(*p, o.symbol)

	ticker, _, found := format.MatchTicker(*p, o.symbol)
	o.ticker = ticker
	o.drawings = nil
	if found {
		o.drawings = chart.Layout(p.Instruments[ticker], chart.LayoutOptions{
			TickSize:    o.tickSize,
			GeneratedAt: p.GeneratedAt,
		})
	}

	studyLog.Debug("Overlay rebuilt", "symbol", o.symbol, "ticker", o.ticker, "drawings", len(o.drawings), "generation", gen)
	return true
}

// Close drops the drawings, like deleting chart objects when the study is removed.
func (o *PlanOverlay) Close() {
	o.drawings = nil
}

func (o *PlanOverlay) Ticker() string {
	return o.ticker
}

func (o *PlanOverlay) Text() string {
	return o.text
}

func (o *PlanOverlay) Drawings() []chart.Drawing {
	return o.drawings
}
