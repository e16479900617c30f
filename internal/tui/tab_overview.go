package tui

import (
	"fmt"
	"strings"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/model"
	"github.com/mectus11/bplan/internal/tui/components"
	"github.com/mectus11/bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// draftItem is one row of the combined income+expense list.
type draftItem struct {
	id      string
	name    string
	amount  float64
	date    string
	expense bool
}

func (a App) draftItems() []draftItem {
	items := make([]draftItem, 0, len(a.draft.ExtraIncome)+len(a.draft.Expenses))
	for _, it := range a.draft.ExtraIncome {
		items = append(items, draftItem{id: it.ID, name: it.Name, amount: it.Amount, date: it.Date})
	}
	for _, it := range a.draft.Expenses {
		items = append(items, draftItem{id: it.ID, name: it.Name, amount: it.Amount, date: it.Date, expense: true})
	}
	return items
}

func (a App) itemCount() int {
	return len(a.draft.ExtraIncome) + len(a.draft.Expenses)
}

func (a App) updateOverview(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.itemCursor < a.itemCount()-1 {
			a.itemCursor++
		}
	case "k", "up":
		if a.itemCursor > 0 {
			a.itemCursor--
		}
	case "i":
		a.itemVals = itemFormValues{}
		a.formKind = formAddIncome
		a.form = newItemForm(a.tr.ExtraIncome, &a.itemVals)
		return a, a.form.Init()
	case "e":
		a.itemVals = itemFormValues{}
		a.formKind = formAddExpense
		a.form = newItemForm(a.tr.Expenses, &a.itemVals)
		return a, a.form.Init()
	case "b":
		a.budgetVals = budgetFormValues{
			month:  a.draft.Month,
			salary: fmt.Sprintf("%g", a.draft.BaseSalary),
		}
		a.formKind = formBudget
		a.form = newBudgetForm(&a.budgetVals)
		return a, a.form.Init()
	case "d":
		items := a.draftItems()
		if a.itemCursor < len(items) {
			sel := items[a.itemCursor]
			if sel.expense {
				a.draft.RemoveExpense(sel.id)
			} else {
				a.draft.RemoveIncome(sel.id)
			}
			a.saveDraft()
		}
	case "S":
		saved, err := a.st.SaveBudget(a.profile, a.draft)
		if err != nil {
			a.flash = err.Error()
			return a, nil
		}
		a.flash = fmt.Sprintf("%s: %s", a.tr.BudgetSaved, cli.FormatMonth(saved.Month))
		a.reload()
	case "c":
		a.draft.Clear()
		a.saveDraft()
		a.flash = a.tr.InputsCleared
	}
	return a, nil
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary
	var b strings.Builder

	// Row 1: Summary metric cards
	remainColor := t.Green
	if s.RemainingBudget < 0 {
		remainColor = t.Red
	}
	quarters := components.LayoutRow(cw, 4)
	cards := []string{
		components.MetricCard(a.tr.TotalIncome, cli.FormatAmount(s.TotalIncome, a.symbol), "", t.TextPrimary, quarters[0]),
		components.MetricCard(a.tr.TotalExpenses, cli.FormatAmount(s.TotalExpenses, a.symbol), "", t.TextPrimary, quarters[1]),
		components.MetricCard(a.tr.RemainingBudget, cli.FormatAmount(s.RemainingBudget, a.symbol), "", remainColor, quarters[2]),
		components.MetricCard(a.tr.PercentageSpent, cli.FormatPercent(s.PercentageSpent), "", lipgloss.Color(components.ColorForSpent(s.PercentageSpent)), quarters[3]),
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	// Row 2: Spent gauge
	gaugeW := components.CardInnerWidth(cw) - 22
	if gaugeW < 10 {
		gaugeW = 10
	}
	b.WriteString(components.ContentCard("",
		components.SpentGauge(a.tr.PercentageSpent, s.PercentageSpent, 10, gaugeW), cw))
	b.WriteString("\n")

	// Row 3: Item list
	b.WriteString(a.renderItemCard(cw))
	b.WriteString("\n")

	// Row 4: Advice
	adviceStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true)
	b.WriteString(components.ContentCard(a.tr.FinancialAdvice,
		adviceStyle.Render(a.tr.Advice(model.Advise(s))), cw))

	return b.String()
}

func (a App) renderItemCard(cw int) string {
	t := theme.Active
	items := a.draftItems()

	innerW := components.CardInnerWidth(cw)

	var body strings.Builder
	salaryStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	fmt.Fprintf(&body, "%s\n",
		salaryStyle.Render(fmt.Sprintf("%s  %s", a.tr.BaseSalary, cli.FormatAmount(a.draft.BaseSalary, a.symbol))))

	if len(items) == 0 {
		body.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(a.tr.NoItems))
		return components.ContentCard(a.tr.BudgetTitle, body.String(), cw)
	}

	nameW := innerW - 30
	if nameW < 10 {
		nameW = 10
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)

	for i, it := range items {
		sign := incomeStyle.Render("+")
		if it.expense {
			sign = expenseStyle.Render("-")
		}
		line := fmt.Sprintf("%-*s %12s  %s",
			nameW, cli.Truncate(it.name, nameW),
			cli.FormatAmount(it.amount, a.symbol),
			it.date)
		if i == a.itemCursor {
			body.WriteString(sign + " " + selStyle.Render(line))
		} else {
			body.WriteString(sign + " " + rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	return components.ContentCard(a.tr.BudgetTitle, strings.TrimRight(body.String(), "\n"), cw)
}
