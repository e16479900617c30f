package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette for CLI output.
var (
	ColorBorder = lipgloss.Color("#403E3C")
	ColorDim    = lipgloss.Color("#575653")
	ColorMuted  = lipgloss.Color("#878580")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorOrange = lipgloss.Color("#DA702C")
	ColorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorDim)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	// GoodStyle, WarnStyle and BadStyle color budget-health output.
	GoodStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	WarnStyle = lipgloss.NewStyle().Foreground(ColorOrange)
	BadStyle  = lipgloss.NewStyle().Foreground(ColorRed)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. A row of just "---" becomes a
// separator line. The first column is left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		for _, row := range t.Rows {
			if len(row) > numCols {
				numCols = len(row)
			}
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if lipgloss.Width(h) > widths[i] {
			widths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			continue
		}
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i], i == 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i == 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// pad returns cell padded to width w with one space on each side.
// Lipgloss width handles wide runes in currency symbols.
func pad(cell string, w int, alignLeft bool) string {
	gap := w - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if alignLeft {
		return " " + cell + strings.Repeat(" ", gap) + " "
	}
	return " " + strings.Repeat(" ", gap) + cell + " "
}

// RenderSpentBar renders the percentage-spent gauge. The fill is clamped
// to the bar width for display only; the label keeps the real value.
func RenderSpentBar(pct float64, width int) string {
	if width < 4 {
		width = 4
	}

	fill := int(pct / 100 * float64(width))
	if fill > width {
		fill = width
	}
	if fill < 0 {
		fill = 0
	}

	style := GoodStyle
	switch {
	case pct > 100:
		style = BadStyle
	case pct > 75:
		style = WarnStyle
	}

	bar := style.Render(strings.Repeat("█", fill)) + dimStyle.Render(strings.Repeat("░", width-fill))
	return fmt.Sprintf("%s %s", bar, style.Render(FormatPercent(pct)))
}

// RenderBreakdown renders labeled horizontal bars for named amounts,
// scaled against the largest entry.
func RenderBreakdown(labels []string, amounts []float64, symbol string, barWidth int) string {
	if len(labels) == 0 || len(labels) != len(amounts) {
		return ""
	}

	maxVal := 0.0
	labelW := 0
	for i, a := range amounts {
		if a > maxVal {
			maxVal = a
		}
		if w := lipgloss.Width(labels[i]); w > labelW {
			labelW = w
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var b strings.Builder
	for i, a := range amounts {
		barLen := int(a / maxVal * float64(barWidth))
		if barLen < 1 && a > 0 {
			barLen = 1
		}
		b.WriteString(fmt.Sprintf("  %s%s ",
			mutedStyle.Render(labels[i]),
			strings.Repeat(" ", labelW-lipgloss.Width(labels[i])),
		))
		b.WriteString(headerStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(FormatAmount(a, symbol)))
		b.WriteString("\n")
	}
	return b.String()
}
