package tui

import (
	"path/filepath"
	"testing"

	"github.com/mectus11/bplan/internal/config"
	"github.com/mectus11/bplan/internal/model"
	"github.com/mectus11/bplan/internal/store"
)

func openTestApp(t *testing.T) (*store.Store, App) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "bplan.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, NewApp(st, config.DefaultConfig())
}

func TestNewAppLoadsDraft(t *testing.T) {
	st, _ := openTestApp(t)

	in := model.Inputs{
		Month:      "2025-06",
		BaseSalary: 2000,
		ExtraIncome: []model.IncomeItem{
			model.NewIncomeItem("Freelance", 300, "", ""),
		},
		Expenses: []model.ExpenseItem{
			model.NewExpenseItem("Rent", 500, "", ""),
		},
	}
	if err := st.SaveDraft(store.DefaultProfile, in); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	a := NewApp(st, config.DefaultConfig())
	if a.profile != store.DefaultProfile {
		t.Errorf("profile = %q", a.profile)
	}
	if a.summary.TotalIncome != 2300 {
		t.Errorf("TotalIncome = %v, want 2300", a.summary.TotalIncome)
	}
	if got := a.itemCount(); got != 2 {
		t.Errorf("itemCount = %d, want 2", got)
	}

	items := a.draftItems()
	if items[0].expense || !items[1].expense {
		t.Error("draftItems should list income before expenses")
	}
}

func TestDeleteSelectedItem(t *testing.T) {
	st, _ := openTestApp(t)

	in := model.Inputs{Month: "2025-06"}
	in.AddExpense(model.NewExpenseItem("Rent", 500, "", ""))
	in.AddExpense(model.NewExpenseItem("Food", 250, "", ""))
	if err := st.SaveDraft(store.DefaultProfile, in); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	a := NewApp(st, config.DefaultConfig())
	m, _ := a.updateOverview("d")
	a = m.(App)

	if got := a.itemCount(); got != 1 {
		t.Fatalf("itemCount after delete = %d, want 1", got)
	}
	if a.draft.Expenses[0].Name != "Food" {
		t.Errorf("remaining expense = %q, want Food", a.draft.Expenses[0].Name)
	}

	// Deletion must have been persisted
	reloaded, err := st.LoadDraft(store.DefaultProfile)
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if len(reloaded.Expenses) != 1 {
		t.Errorf("persisted expenses = %d, want 1", len(reloaded.Expenses))
	}
}

func TestHistoryMonthsNewestFirst(t *testing.T) {
	st, _ := openTestApp(t)

	for _, month := range []string{"2025-03", "2025-06", "2025-01"} {
		if _, err := st.SaveBudget(store.DefaultProfile, model.Inputs{Month: month, BaseSalary: 100}); err != nil {
			t.Fatalf("SaveBudget(%s): %v", month, err)
		}
	}

	a := NewApp(st, config.DefaultConfig())
	want := []string{"2025-06", "2025-03", "2025-01"}
	if len(a.months) != len(want) {
		t.Fatalf("months = %v", a.months)
	}
	for i, m := range want {
		if a.months[i] != m {
			t.Errorf("months[%d] = %q, want %q", i, a.months[i], m)
		}
	}
}

func TestDeleteProfileTargetsCursorRow(t *testing.T) {
	st, _ := openTestApp(t)

	for _, name := range []string{"Work", "Side"} {
		if err := st.CreateProfile(name); err != nil {
			t.Fatalf("CreateProfile(%s): %v", name, err)
		}
	}
	if err := st.SwitchProfile(store.DefaultProfile); err != nil {
		t.Fatalf("SwitchProfile: %v", err)
	}

	a := NewApp(st, config.DefaultConfig())
	// Profiles are [Default, Work, Side]; aim the cursor at "Side".
	a.settingsCursor = settingsFieldCount + 2
	if got := a.profileUnderCursor(); got != "Side" {
		t.Fatalf("profileUnderCursor = %q, want Side", got)
	}

	m, _ := a.updateSettings("D")
	a = m.(App)

	profiles, err := st.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	want := []string{store.DefaultProfile, "Work"}
	if len(profiles) != len(want) || profiles[0] != want[0] || profiles[1] != want[1] {
		t.Errorf("profiles after delete = %v, want %v", profiles, want)
	}
	if a.settingsCursor >= a.settingsRowCount() {
		t.Errorf("settingsCursor %d out of range after delete", a.settingsCursor)
	}
}

func TestDeleteProfileRequiresProfileRow(t *testing.T) {
	st, _ := openTestApp(t)

	if err := st.CreateProfile("Work"); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	a := NewApp(st, config.DefaultConfig())
	a.settingsCursor = settingsFieldCurrency // a preference field, not a profile row

	m, _ := a.updateSettings("D")
	a = m.(App)

	profiles, err := st.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("profiles = %v, want both kept", profiles)
	}
	if a.flash == "" {
		t.Error("expected a hint when D is pressed off the profile list")
	}
}

func TestDeleteProfileRefusesActive(t *testing.T) {
	st, _ := openTestApp(t)

	if err := st.CreateProfile("Work"); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	// CreateProfile switched to Work; aim at it anyway.
	a := NewApp(st, config.DefaultConfig())
	a.settingsCursor = settingsFieldCount + 1
	if got := a.profileUnderCursor(); got != "Work" {
		t.Fatalf("profileUnderCursor = %q, want Work", got)
	}

	m, _ := a.updateSettings("D")
	a = m.(App)

	profiles, err := st.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("profiles = %v, active profile must survive", profiles)
	}
	if a.flash == "" {
		t.Error("expected a refusal message when deleting the active profile")
	}
}

func TestSaveBudgetFromOverview(t *testing.T) {
	st, _ := openTestApp(t)

	in := model.Inputs{Month: "2025-06", BaseSalary: 2000}
	in.AddExpense(model.NewExpenseItem("Rent", 500, "", ""))
	if err := st.SaveDraft(store.DefaultProfile, in); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	a := NewApp(st, config.DefaultConfig())
	m, _ := a.updateOverview("S")
	a = m.(App)

	if len(a.months) != 1 || a.months[0] != "2025-06" {
		t.Fatalf("months after save = %v", a.months)
	}
	if got := a.archive["2025-06"].RemainingBudget; got != 1500 {
		t.Errorf("RemainingBudget = %v, want 1500", got)
	}
}
