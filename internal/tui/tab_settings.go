package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mectus11/bplan/internal/config"
	"github.com/mectus11/bplan/internal/i18n"
	"github.com/mectus11/bplan/internal/store"
	"github.com/mectus11/bplan/internal/tui/components"
	"github.com/mectus11/bplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldProfile = iota
	settingsFieldCurrency
	settingsFieldLanguage
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsRowCount is the cursor range: the preference fields followed
// by one row per profile.
func (a App) settingsRowCount() int {
	return settingsFieldCount + len(a.profiles)
}

// profileUnderCursor returns the profile row the settings cursor is on,
// or "" when the cursor is on a preference field.
func (a App) profileUnderCursor() string {
	idx := a.settingsCursor - settingsFieldCount
	if idx < 0 || idx >= len(a.profiles) {
		return ""
	}
	return a.profiles[idx]
}

func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settingsCursor < a.settingsRowCount()-1 {
			a.settingsCursor++
		}
	case "k", "up":
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
	case "enter":
		if p := a.profileUnderCursor(); p != "" {
			a.switchToProfile(p)
		} else {
			a.cycleSetting()
		}
	case "n":
		a.nameVals = nameFormValues{}
		a.formKind = formNewProfile
		a.form = newProfileForm("New profile", &a.nameVals)
		return a, a.form.Init()
	case "R":
		a.nameVals = nameFormValues{name: a.profile}
		a.formKind = formRenameProfile
		a.form = newProfileForm("Rename profile", &a.nameVals)
		return a, a.form.Init()
	case "D":
		a.deleteProfileUnderCursor()
	}
	return a, nil
}

func (a *App) switchToProfile(name string) {
	if name == a.profile {
		return
	}
	if err := a.st.SwitchProfile(name); err != nil {
		a.flash = err.Error()
		return
	}
	a.flash = fmt.Sprintf("%s %s", a.tr.SwitchedTo, name)
	a.reload()
}

// cycleSetting advances the selected field to its next value and
// persists the change.
func (a *App) cycleSetting() {
	switch a.settingsCursor {
	case settingsFieldProfile:
		if len(a.profiles) < 2 {
			return
		}
		next := a.profiles[0]
		for i, p := range a.profiles {
			if p == a.profile {
				next = a.profiles[(i+1)%len(a.profiles)]
			}
		}
		a.switchToProfile(next)

	case settingsFieldCurrency:
		next := nextOf(store.Currencies, a.currency)
		if err := a.st.SetCurrency(next); err != nil {
			a.flash = err.Error()
			return
		}
		a.currency = next
		a.symbol = next.Symbol()

	case settingsFieldLanguage:
		next := nextOf(store.Languages, a.language)
		if err := a.st.SetLanguage(next); err != nil {
			a.flash = err.Error()
			return
		}
		a.language = next
		a.tr = i18n.ByCode(string(next))

	case settingsFieldTheme:
		names := theme.Names()
		next := names[0]
		for i, n := range names {
			if n == theme.Active.Name {
				next = names[(i+1)%len(names)]
			}
		}
		theme.SetActive(next)
		a.cfg.Appearance.Theme = next
		if err := config.Save(a.cfg); err != nil {
			a.flash = err.Error()
		}
	}
}

// nextOf returns the element after cur, wrapping around.
func nextOf[T comparable](all []T, cur T) T {
	for i, v := range all {
		if v == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// deleteProfileUnderCursor removes the profile on the selected list
// row. The cursor has to be on a profile row, so the destructive key
// only ever hits an aimed target; the store refuses the active one.
func (a *App) deleteProfileUnderCursor() {
	target := a.profileUnderCursor()
	if target == "" {
		a.flash = "select a profile below to delete it"
		return
	}
	if err := a.st.DeleteProfile(target); err != nil {
		if errors.Is(err, store.ErrCannotDeleteActiveProfile) {
			a.flash = "the active profile cannot be deleted; switch first"
			return
		}
		a.flash = err.Error()
		return
	}
	a.flash = fmt.Sprintf("%s: %s", a.tr.ProfileDeleted, target)
	a.reload()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	fields := []struct {
		label string
		value string
	}{
		{a.tr.Profile, a.profile},
		{"Currency", fmt.Sprintf("%s (%s)", a.currency, a.symbol)},
		{"Language", string(a.language)},
		{"Theme", theme.Active.Name},
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	for i, f := range fields {
		marker := "  "
		vs := valueStyle
		if i == a.settingsCursor {
			marker = "> "
			vs = selStyle
		}
		fmt.Fprintf(&body, "%s%s %s\n",
			marker,
			labelStyle.Render(fmt.Sprintf("%-10s", f.label)),
			vs.Render(f.value))
	}
	body.WriteString("\n")
	body.WriteString(dimStyle.Render("enter cycles · n new profile · R rename active"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", body.String(), cw))
	b.WriteString("\n")

	// Profile list; j/k continues down into it
	cursorStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	var plist strings.Builder
	for i, p := range a.profiles {
		marker := "  "
		if p == a.profile {
			marker = "* "
		}
		line := marker + p
		switch {
		case i == a.settingsCursor-settingsFieldCount:
			plist.WriteString(cursorStyle.Render("> " + line))
		case p == a.profile:
			plist.WriteString(selStyle.Render("  " + line))
		default:
			plist.WriteString(valueStyle.Render("  " + line))
		}
		plist.WriteString("\n")
	}
	plist.WriteString("\n")
	plist.WriteString(dimStyle.Render("enter switches · D deletes the selected profile"))
	b.WriteString(components.ContentCard(a.tr.Profile, strings.TrimRight(plist.String(), "\n"), cw))

	return b.String()
}
