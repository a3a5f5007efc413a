// Package study drives chart studies bar by bar, the way a charting host
// calls a custom study once per bar.
package study

import (
	"github.com/jwtly10/planview/internal/logging"
	"github.com/jwtly10/planview/internal/types"
)

var studyLog = logging.New("study")

// Study receives every bar in order. index is the bar being calculated;
// bars holds the full series so far. Index 0 means a full recalculation.
type Study interface {
	OnBar(bars []types.Bar, index int)
	Name() string
}

// Closer is implemented by studies that hold resources past the last bar.
type Closer interface {
	Close()
}

type Engine struct {
	Bars []types.Bar
}

func NewEngine(bars []types.Bar) *Engine {
	return &Engine{Bars: bars}
}

// Run feeds all bars to each study, then closes studies that need it.
func (e *Engine) Run(studies ...Study) {
	studyLog.Debug("Starting run", "studies", len(studies), "total_bars", len(e.Bars))

	for i, bar := range e.Bars {
		studyLog.Debug("Processing bar", "index", i, "timestamp", bar.Timestamp, "close", bar.Close)
		for _, s := range studies {
			s.OnBar(e.Bars[:i+1], i)
		}
	}

	for _, s := range studies {
		if c, ok := s.(Closer); ok {
			studyLog.Debug("Closing study", "study", s.Name())
			c.Close()
		}
	}
}
