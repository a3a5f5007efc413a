package indicator

import (
	"errors"
	"math"

	"github.com/jwtly10/planview/internal/logging"
)

var smaLog = logging.New("sma")

// ErrInvalidPeriod is returned for a moving-average period below 1.
var ErrInvalidPeriod = errors.New("moving average period must be greater than zero")

// Indicator is a streaming calculation fed one price at a time.
type Indicator interface {
	Update(price float64)
	Value() float64
	Ready() bool
}

// SMA - Simple Moving Average over a fixed window, kept as a running sum.
type SMA struct {
	period int
	buf    []float64
	idx    int
	count  int
	sum    float64
}

func NewSMA(period int) (*SMA, error) {
	if period < 1 {
		return nil, ErrInvalidPeriod
	}
	return &SMA{
		period: period,
		buf:    make([]float64, period),
	}, nil
}

func (s *SMA) Update(price float64) {
	if s.count >= s.period {
		s.sum -= s.buf[s.idx]
	}
	s.buf[s.idx] = price
	s.sum += price
	s.idx = (s.idx + 1) % s.period
	s.count++

	smaLog.Debug("SMA updated", "period", s.period, "price", price, "value", s.Value(), "ready", s.Ready())
}

// Value returns NaN until period prices have been seen.
func (s *SMA) Value() float64 {
	if !s.Ready() {
		return math.NaN()
	}
	return s.sum / float64(s.period)
}

func (s *SMA) Ready() bool {
	return s.count >= s.period
}

func (s *SMA) Period() int {
	return s.period
}

// MovingAverage returns a series the same length as input where index i is
// the mean of input[i-period+1..i], and NaN for i < period-1.
func MovingAverage(input []float64, period int) ([]float64, error) {
	if period < 1 {
		return nil, ErrInvalidPeriod
	}

	out := make([]float64, len(input))
	sum := 0.0
	for i, v := range input {
		sum += v
		if i >= period {
			sum -= input[i-period]
		}
		if i+1 >= period {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// IndicatorsReady calls .Ready() on all indicators and returns true if all are ready
func IndicatorsReady(indicators ...Indicator) bool {
	for _, ind := range indicators {
		if !ind.Ready() {
			return false
		}
	}
	return true
}
