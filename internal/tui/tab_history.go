package tui

import (
	"fmt"
	"strings"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/tui/components"
	"github.com/mectus11/bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateHistory(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.historyCursor < len(a.months)-1 {
			a.historyCursor++
		}
	case "k", "up":
		if a.historyCursor > 0 {
			a.historyCursor--
		}
	case "enter":
		if a.historyCursor < len(a.months) {
			b := a.archive[a.months[a.historyCursor]]
			if err := a.st.SaveDraft(a.profile, b.Inputs); err != nil {
				a.flash = err.Error()
				return a, nil
			}
			a.flash = fmt.Sprintf("%s: %s", a.tr.BudgetLoaded, cli.FormatMonth(b.Month))
			a.reload()
			a.activeTab = tabOverview
		}
	case "d":
		if a.historyCursor < len(a.months) {
			month := a.months[a.historyCursor]
			if err := a.st.DeleteBudget(a.profile, month); err != nil {
				a.flash = err.Error()
				return a, nil
			}
			a.flash = fmt.Sprintf("%s: %s", a.tr.BudgetDeleted, month)
			a.reload()
		}
	}
	return a, nil
}

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.months) == 0 {
		b.WriteString(components.ContentCard(a.tr.SavedBudgets,
			lipgloss.NewStyle().Foreground(t.TextDim).Render(a.tr.NoSavedBudgets), cw))
		return b.String()
	}

	innerW := components.CardInnerWidth(cw)

	// Saved budget list, newest first
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)

	var list strings.Builder
	for i, m := range a.months {
		sb := a.archive[m]
		remaining := cli.FormatAmount(sb.RemainingBudget, a.symbol)
		if sb.RemainingBudget < 0 {
			remaining = negStyle.Render(remaining)
		}
		line := fmt.Sprintf("%-14s %14s %14s %14s  %s",
			cli.Truncate(cli.FormatMonth(m), 14),
			cli.FormatAmount(sb.TotalIncome, a.symbol),
			cli.FormatAmount(sb.TotalExpenses, a.symbol),
			remaining,
			cli.FormatPercent(sb.PercentageSpent))
		if i == a.historyCursor {
			list.WriteString(selStyle.Render(line))
		} else {
			list.WriteString(rowStyle.Render(line))
		}
		list.WriteString("\n")
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	head := headStyle.Render(fmt.Sprintf("%-14s %14s %14s %14s  %s",
		a.tr.Month, a.tr.TotalIncome, a.tr.TotalExpenses, a.tr.RemainingBudget, a.tr.PercentageSpent))

	b.WriteString(components.ContentCard(
		fmt.Sprintf("%s [%s]", a.tr.SavedBudgets, a.profile),
		head+"\n"+strings.TrimRight(list.String(), "\n"), cw))
	b.WriteString("\n")

	// Spending trend, oldest to newest
	if len(a.months) > 1 {
		vals := make([]float64, len(a.months))
		for i, m := range a.months {
			vals[len(a.months)-1-i] = a.archive[m].TotalExpenses
		}
		b.WriteString(components.ContentCard(a.tr.TotalExpenses,
			components.Sparkline(vals, t.Accent), cw))
		b.WriteString("\n")
	}

	// Expense breakdown for the selected month
	if a.historyCursor < len(a.months) {
		sel := a.archive[a.months[a.historyCursor]]
		if len(sel.Expenses) > 0 {
			bars := make([]components.HBar, 0, len(sel.Expenses))
			for _, e := range sel.Expenses {
				bars = append(bars, components.HBar{
					Label:  cli.Truncate(e.Name, 16),
					Value:  e.Amount,
					Amount: cli.FormatAmount(e.Amount, a.symbol),
				})
			}
			b.WriteString(components.ContentCard(
				fmt.Sprintf("%s · %s", a.tr.Expenses, cli.FormatMonth(sel.Month)),
				components.HBarList(bars, 16, innerW), cw))
		}
	}

	return b.String()
}
