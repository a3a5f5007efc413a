// Package chart turns an instrument plan into an ordered list of chart
// drawings and renders that list as a TradingView Pine Script overlay.
package chart

import (
	"fmt"
	"math"

	"github.com/jwtly10/planview/internal/format"
	"github.com/jwtly10/planview/internal/logging"
	"github.com/jwtly10/planview/internal/plan"
)

var chartLog = logging.New("chart")

const DefaultTickSize = 0.25

const (
	Rectangle Kind = "RECTANGLE"
	Level     Kind = "LEVEL"
	Text      Kind = "TEXT"
	Marker    Kind = "MARKER"
)

// Kind is the drawing primitive.
type Kind string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type Align string

// Anchor says where along the plan's time span a drawing is placed.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

var (
	ColorBuy       = Color{0, 128, 0}
	ColorSell      = Color{178, 34, 34}
	ColorInvalid   = Color{105, 105, 105}
	ColorFlip      = Color{138, 43, 226}
	ColorZoneText  = Color{255, 255, 255}
	ColorStopLoss  = Color{220, 20, 60}
	ColorTP1       = Color{50, 205, 50}
	ColorTP2       = Color{0, 128, 0}
	ColorGenerated = Color{255, 204, 0}
)

// Drawing is one chart object. Rectangles use Top/Bottom, levels and text use
// Price. Relative text is positioned as a percentage of the visible range.
type Drawing struct {
	Kind         Kind
	Top          float64
	Bottom       float64
	Price        float64
	Text         string
	Color        Color
	Transparency int
	Align        Align
	Anchor       Anchor
	Bold         bool
	Relative     bool
}

type LayoutOptions struct {
	// TickSize rounds every price; values <= 0 fall back to DefaultTickSize.
	TickSize    float64
	GeneratedAt string
}

// Layout places one instrument's plan on a chart. Z-order is the slice
// order: invalidation bands, zone bands, flip band, level rays, then all
// text, then the generation marker. Bands whose rounded high is not above
// their rounded low are skipped.
func Layout(inst plan.InstrumentPlan, opts LayoutOptions) []Drawing {
	tick := opts.TickSize
	if tick <= 0 {
		tick = DefaultTickSize
	}
	round := func(v float64) float64 {
		return math.Round(v/tick) * tick
	}

	var shapes, labels []Drawing

	band := func(r plan.PriceRange, color Color, transparency int) (top, bottom float64, ok bool) {
		top, bottom = round(r.High), round(r.Low)
		if top <= bottom {
			chartLog.Debug("Skipping empty band", "low", r.Low, "high", r.High, "tick", tick)
			return 0, 0, false
		}
		shapes = append(shapes, Drawing{
			Kind:         Rectangle,
			Top:          top,
			Bottom:       bottom,
			Color:        color,
			Transparency: transparency,
			Anchor:       AnchorStart,
		})
		return top, bottom, true
	}

	for _, z := range inst.Zones {
		if z.Invalidation != nil {
			band(*z.Invalidation, ColorInvalid, 80)
		}
	}

	for _, z := range inst.Zones {
		top, bottom, ok := band(z.Range, zoneColor(z.Direction), 70)
		if !ok {
			continue
		}
		labels = append(labels, Drawing{
			Kind:   Text,
			Price:  (top + bottom) / 2,
			Text:   z.Label,
			Color:  ColorZoneText,
			Align:  AlignCenter,
			Anchor: AnchorCenter,
			Bold:   true,
		})
	}

	if f := inst.Flip; f != nil {
		if top, bottom, ok := band(f.Range, ColorFlip, 50); ok {
			labels = append(labels, Drawing{
				Kind:   Text,
				Price:  (top + bottom) / 2,
				Text:   f.Label,
				Color:  ColorZoneText,
				Align:  AlignRight,
				Anchor: AnchorEnd,
				Bold:   true,
			})
		}
	}

	for _, z := range inst.Zones {
		for _, lvl := range []struct {
			caption string
			price   float64
			color   Color
		}{
			{"SL", z.SL, ColorStopLoss},
			{"TP1", z.TP1, ColorTP1},
			{"TP2", z.TP2, ColorTP2},
		} {
			price := round(lvl.price)
			shapes = append(shapes, Drawing{Kind: Level, Price: price, Color: lvl.color, Anchor: AnchorStart})
			labels = append(labels, Drawing{
				Kind:   Text,
				Price:  price,
				Text:   lvl.caption + ": " + format.Price(price),
				Color:  lvl.color,
				Align:  AlignCenter,
				Anchor: AnchorEnd,
			})
		}
	}

	labels = append(labels, Drawing{
		Kind:     Text,
		Price:    98,
		Relative: true,
		Text:     "Plan generated " + opts.GeneratedAt,
		Color:    ColorGenerated,
		Align:    AlignLeft,
		Anchor:   AnchorStart,
		Bold:     true,
	})

	out := append(shapes, labels...)
	out = append(out, Drawing{Kind: Marker, Color: ColorGenerated, Anchor: AnchorStart})

	chartLog.Debug("Laid out instrument", "zones", len(inst.Zones), "drawings", len(out))
	return out
}

func zoneColor(d plan.Direction) Color {
	if d == plan.Buy {
		return ColorBuy
	}
	return ColorSell
}
