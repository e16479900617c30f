package components

import (
	"fmt"
	"strings"

	"github.com/mectus11/bplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HBar is one row of a horizontal bar list.
type HBar struct {
	Label  string
	Value  float64
	Amount string // formatted value shown after the bar
	Color  lipgloss.Color
}

// HBarList renders labeled horizontal bars scaled to the largest value.
// width is the total usable width per row.
func HBarList(bars []HBar, labelW, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	maxVal := 0.0
	maxAmountW := 0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
		if w := lipgloss.Width(b.Amount); w > maxAmountW {
			maxAmountW = w
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barMax := width - labelW - maxAmountW - 2
	if barMax < 1 {
		barMax = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var out strings.Builder
	for _, b := range bars {
		fill := int(b.Value / maxVal * float64(barMax))
		color := b.Color
		if color == "" {
			color = t.Accent
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", fill))
		fmt.Fprintf(&out, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, b.Label)),
			amountStyle.Render(fmt.Sprintf("%*s", maxAmountW, b.Amount)),
			bar)
	}
	return strings.TrimRight(out.String(), "\n")
}
