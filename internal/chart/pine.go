package chart

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jwtly10/planview/internal/format"
)

// PineLookback is how many bars back from the last bar the plan starts.
const PineLookback = 50

func allowDump() bool {
	// DEBUG_DUMP=1 prints the Pine Script overlay to stdout
	if os.Getenv("DEBUG_DUMP") == "1" {
		slog.Info("DEBUG_DUMP=1, dumping Pine Script to stdout")
		return true
	}
	return false
}

// DumpPineScript prints the overlay for ticker when DEBUG_DUMP=1.
func DumpPineScript(ticker string, drawings []Drawing) {
	if !allowDump() {
		return
	}
	fmt.Println(PineScript(ticker, drawings))
}

// PineScript renders drawings as a Pine v5 overlay that is drawn once on the
// last bar, spanning PineLookback bars to the left.
func PineScript(ticker string, drawings []Drawing) string {
	var sb strings.Builder

	sb.WriteString("//@version=5\n")
	sb.WriteString(fmt.Sprintf("indicator(%s, overlay=true, max_boxes_count=100, max_lines_count=100, max_labels_count=100)\n\n", pineString("Plan "+ticker)))
	sb.WriteString("// ============================================\n")
	sb.WriteString("// TRADING PLAN ZONES\n")
	sb.WriteString("// ============================================\n\n")
	sb.WriteString(fmt.Sprintf("start = bar_index - %d\n", PineLookback))
	sb.WriteString(fmt.Sprintf("mid = bar_index - %d\n", PineLookback/2))
	sb.WriteString("if barstate.islast\n")

	for _, d := range drawings {
		sb.WriteString("    ")
		sb.WriteString(pineStatement(d))
		sb.WriteString("\n")
	}

	return sb.String()
}

func pineStatement(d Drawing) string {
	switch d.Kind {
	case Rectangle:
		return fmt.Sprintf("box.new(start, %s, bar_index, %s, border_color=%s, bgcolor=color.new(%s, %d), extend=extend.right)",
			format.Price(d.Top), format.Price(d.Bottom), d.Color.Hex(), d.Color.Hex(), d.Transparency)
	case Level:
		return fmt.Sprintf("line.new(start, %s, bar_index, %s, color=%s, style=line.style_dashed, extend=extend.right)",
			format.Price(d.Price), format.Price(d.Price), d.Color.Hex())
	case Marker:
		return fmt.Sprintf("line.new(start, low, start, high, color=%s, width=2, extend=extend.both)", d.Color.Hex())
	default:
		y := format.Price(d.Price)
		if d.Relative {
			y = fmt.Sprintf("low + (high - low) * %s", format.Price(d.Price/100))
		}
		size := "size.small"
		if d.Bold {
			size = "size.normal"
		}
		return fmt.Sprintf("label.new(%s, %s, %s, textcolor=%s, color=color.new(color.black, 100), style=%s, size=%s)",
			pineX(d.Anchor), y, pineString(d.Text), d.Color.Hex(), pineLabelStyle(d.Align), size)
	}
}

func pineX(a Anchor) string {
	switch a {
	case AnchorCenter:
		return "mid"
	case AnchorEnd:
		return "bar_index"
	default:
		return "start"
	}
}

func pineLabelStyle(a Align) string {
	switch a {
	case AlignLeft:
		return "label.style_label_left"
	case AlignRight:
		return "label.style_label_right"
	default:
		return "label.style_label_center"
	}
}

var pineEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func pineString(s string) string {
	return `"` + pineEscaper.Replace(s) + `"`
}
