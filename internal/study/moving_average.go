package study

import (
	"fmt"
	"math"

	"github.com/jwtly10/planview/internal/indicator"
	"github.com/jwtly10/planview/internal/types"
)

const (
	DefaultPeriod = 20
	MaxPeriod     = 500
)

// MovingAverage plots the simple moving average of closes. Values before
// the window fills are NaN.
type MovingAverage struct {
	period int
	sma    *indicator.SMA
	values []float64
}

// NewMovingAverage clamps period into [1, MaxPeriod] like the study input.
func NewMovingAverage(period int) *MovingAverage {
	period = max(1, min(period, MaxPeriod))
	m := &MovingAverage{period: period}
	m.reset()
	return m
}

func (m *MovingAverage) Name() string {
	return fmt.Sprintf("SMA_%d", m.period)
}

func (m *MovingAverage) reset() {
	// period is always >= 1 here
	m.sma, _ = indicator.NewSMA(m.period)
	m.values = m.values[:0]
}

func (m *MovingAverage) OnBar(bars []types.Bar, index int) {
	if index == 0 || index < len(m.values) {
		m.reset()
	}
	// Catch up on any bars we were not called for.
	for _, b := range bars[len(m.values):index] {
		m.push(b.Close)
	}
	m.push(bars[index].Close)
}

func (m *MovingAverage) push(price float64) {
	m.sma.Update(price)
	m.values = append(m.values, m.sma.Value())
}

// Values is the subgraph, one entry per bar.
func (m *MovingAverage) Values() []float64 {
	return m.values
}

// Last returns the latest value, NaN when not ready.
func (m *MovingAverage) Last() float64 {
	if len(m.values) == 0 {
		return math.NaN()
	}
	return m.values[len(m.values)-1]
}

// DataStartIndex is the first bar with a value.
func (m *MovingAverage) DataStartIndex() int {
	return m.period - 1
}
