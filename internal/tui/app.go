// Package tui provides the interactive Bubble Tea dashboard for bplan.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/config"
	"github.com/mectus11/bplan/internal/i18n"
	"github.com/mectus11/bplan/internal/model"
	"github.com/mectus11/bplan/internal/store"
	"github.com/mectus11/bplan/internal/tui/components"
	"github.com/mectus11/bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabHistory
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	cfg config.Config

	// Profile and display preferences
	profile  string
	profiles []string
	currency store.Currency
	language store.Language
	tr       i18n.Strings
	symbol   string

	// Budget data for the active profile
	draft   model.Inputs
	summary model.Summary
	archive map[string]model.SavedBudget
	months  []string // archive keys, newest first

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string

	// Per-tab cursors
	itemCursor     int // overview: combined income+expense list
	historyCursor  int
	settingsCursor int

	// Active form, if any
	form       *huh.Form
	formKind   formKind
	itemVals   itemFormValues
	budgetVals budgetFormValues
	nameVals   nameFormValues
}

// NewApp creates the TUI app model. Data is loaded synchronously: the
// store is a local file and reads are immediate.
func NewApp(st *store.Store, cfg config.Config) App {
	a := App{st: st, cfg: cfg}
	a.reload()
	return a
}

// reload re-reads profile, preferences, draft and archive from the
// store. Malformed slots come back as defaults, so errors are dropped.
func (a *App) reload() {
	a.profile, _ = a.st.ActiveProfile()
	a.profiles, _ = a.st.Profiles()
	a.currency, _ = a.st.Currency()
	a.language, _ = a.st.Language()
	a.tr = i18n.ByCode(string(a.language))
	a.symbol = a.currency.Symbol()

	a.draft, _ = a.st.LoadDraft(a.profile)
	a.archive, _ = a.st.LoadArchive(a.profile)
	a.months = a.months[:0]
	for m := range a.archive {
		a.months = append(a.months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(a.months)))

	a.recompute()
	a.clampCursors()
}

func (a *App) recompute() {
	a.summary = model.Compute(a.draft)
}

func (a *App) clampCursors() {
	if n := a.itemCount(); a.itemCursor >= n {
		a.itemCursor = n - 1
	}
	if a.itemCursor < 0 {
		a.itemCursor = 0
	}
	if a.historyCursor >= len(a.months) {
		a.historyCursor = len(a.months) - 1
	}
	if a.historyCursor < 0 {
		a.historyCursor = 0
	}
	if a.settingsCursor >= a.settingsRowCount() {
		a.settingsCursor = a.settingsRowCount() - 1
	}
	if a.settingsCursor < 0 {
		a.settingsCursor = 0
	}
}

// saveDraft persists the draft and recomputes the summary.
func (a *App) saveDraft() {
	if err := a.st.SaveDraft(a.profile, a.draft); err != nil {
		a.flash = err.Error()
		return
	}
	a.recompute()
	a.clampCursors()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An active form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		a.flash = ""

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabOverview:
			return a.updateOverview(key)
		case tabHistory:
			return a.updateHistory(key)
		case tabSettings:
			return a.updateSettings(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.applyForm()
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// applyForm commits a completed form to the store.
func (a *App) applyForm() {
	switch a.formKind {
	case formAddIncome:
		item := model.NewIncomeItem(strings.TrimSpace(a.itemVals.name), parseFormAmount(a.itemVals.amount), "", a.itemVals.date)
		a.draft.AddIncome(item)
		a.saveDraft()

	case formAddExpense:
		item := model.NewExpenseItem(strings.TrimSpace(a.itemVals.name), parseFormAmount(a.itemVals.amount), "", a.itemVals.date)
		a.draft.AddExpense(item)
		a.saveDraft()

	case formBudget:
		a.draft.Month = strings.TrimSpace(a.budgetVals.month)
		if strings.TrimSpace(a.budgetVals.salary) != "" {
			a.draft.BaseSalary = parseFormAmount(a.budgetVals.salary)
		}
		a.saveDraft()

	case formNewProfile:
		name := strings.TrimSpace(a.nameVals.name)
		if err := a.st.CreateProfile(name); err != nil {
			a.flash = err.Error()
			return
		}
		a.flash = fmt.Sprintf("%s: %s", a.tr.ProfileCreated, name)
		a.reload()

	case formRenameProfile:
		name := strings.TrimSpace(a.nameVals.name)
		if err := a.st.RenameProfile(a.profile, name); err != nil {
			a.flash = err.Error()
			return
		}
		a.flash = fmt.Sprintf("%s: %s", a.tr.ProfileRenamed, name)
		a.reload()
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  bplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"o h x", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Navigate lists"},
		}},
		{"Overview", []struct{ key, desc string }{
			{"i", "Add income item"},
			{"e", "Add expense item"},
			{"b", "Set month / salary"},
			{"d", "Delete selected item"},
			{"S", "Save budget for this month"},
			{"c", "Clear draft"},
		}},
		{"History", []struct{ key, desc string }{
			{"Enter", "Load budget into draft"},
			{"d", "Delete saved budget"},
		}},
		{"Settings", []struct{ key, desc string }{
			{"Enter", "Cycle value / switch profile"},
			{"n", "New profile"},
			{"R", "Rename active profile"},
			{"D", "Delete the selected profile"},
		}},
	}

	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + summary pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(a.profile) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(cli.FormatMonth(a.draft.Month)) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(string(a.currency)) +
		pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab) + "\n" + pillRowStyle.Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.profile, a.draft.Month, a.flash)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content, or the active form
	var content string
	if a.form != nil {
		content = a.form.View()
	} else {
		switch a.activeTab {
		case tabOverview:
			content = a.renderOverviewTab(cw)
		case tabHistory:
			content = a.renderHistoryTab(cw)
		case tabSettings:
			content = a.renderSettingsTab(cw)
		}
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Place content with background fill
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}
