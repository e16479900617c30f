package components

import (
	"fmt"

	"github.com/mectus11/bplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForSpent returns green/yellow/orange/red based on the share of
// income already spent. Healthy up to 75%, a warning band to 90%, then
// danger, with red past the whole income.
func ColorForSpent(pct float64) string {
	t := theme.Active
	switch {
	case pct > 100:
		return string(t.Red)
	case pct > 90:
		return string(t.Orange)
	case pct > 75:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// SpentGauge renders a labeled progress bar for the spent percentage.
func SpentGauge(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	fill := pct / 100
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForSpent(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForSpent(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(fill) +
		" " + pctStyle.Render(fmt.Sprintf("%.1f%%", pct))
}
