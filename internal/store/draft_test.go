package store

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mectus11/bplan/internal/model"
)

func TestDraftRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := model.Inputs{
		Month:       "2025-04",
		BaseSalary:  1800.50,
		ExtraIncome: []model.IncomeItem{{ID: "i1", Name: "Bonus", Amount: 250, Color: "#879A39", Date: "2025-04-28"}},
		Expenses:    []model.ExpenseItem{{ID: "e1", Name: "Rent", Amount: 700}},
	}
	if err := s.SaveDraft(DefaultProfile, in); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	got, err := s.LoadDraft(DefaultProfile)
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("LoadDraft = %+v, want %+v", got, in)
	}
}

func TestDraftAutosaveLastWriteWins(t *testing.T) {
	s := openTestStore(t)

	in := model.Inputs{Month: "2025-04", BaseSalary: 100, ExtraIncome: []model.IncomeItem{}, Expenses: []model.ExpenseItem{}}
	if err := s.SaveDraft(DefaultProfile, in); err != nil {
		t.Fatal(err)
	}
	in.BaseSalary = 200
	if err := s.SaveDraft(DefaultProfile, in); err != nil {
		t.Fatal(err)
	}

	got, _ := s.LoadDraft(DefaultProfile)
	if got.BaseSalary != 200 {
		t.Errorf("BaseSalary = %v, want 200 (last write)", got.BaseSalary)
	}
}

func TestLoadDraftAbsentResetsToDefaults(t *testing.T) {
	s := openTestStore(t)

	// Profile switch to a profile with no draft: inputs reset.
	got, err := s.LoadDraft("Travel")
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if got.Month != time.Now().Format(model.MonthKeyLayout) {
		t.Errorf("Month = %q, want current month", got.Month)
	}
	if got.BaseSalary != 0 || len(got.ExtraIncome) != 0 || len(got.Expenses) != 0 {
		t.Errorf("defaults not empty: %+v", got)
	}
}

func TestLoadDraftMalformed(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(draftKey(DefaultProfile), "][ corrupt"); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadDraft(DefaultProfile)
	if !errors.Is(err, ErrMalformedData) {
		t.Errorf("err = %v, want ErrMalformedData diagnostic", err)
	}
	if got.BaseSalary != 0 || len(got.Expenses) != 0 {
		t.Errorf("corrupt draft did not reset to defaults: %+v", got)
	}
}

func TestLoadDraftBadMonth(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(draftKey(DefaultProfile), `{"month":"not-a-month","baseSalary":50}`); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadDraft(DefaultProfile)
	if !errors.Is(err, ErrMalformedData) {
		t.Errorf("err = %v, want ErrMalformedData diagnostic", err)
	}
	if got.BaseSalary != 0 {
		t.Errorf("BaseSalary = %v, want reset to 0", got.BaseSalary)
	}
}

func TestDraftsIsolatedPerProfile(t *testing.T) {
	s := openTestStore(t)

	a := model.Inputs{Month: "2025-01", BaseSalary: 111, ExtraIncome: []model.IncomeItem{}, Expenses: []model.ExpenseItem{}}
	b := model.Inputs{Month: "2025-02", BaseSalary: 222, ExtraIncome: []model.IncomeItem{}, Expenses: []model.ExpenseItem{}}
	if err := s.SaveDraft("A", a); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDraft("B", b); err != nil {
		t.Fatal(err)
	}

	gotA, _ := s.LoadDraft("A")
	gotB, _ := s.LoadDraft("B")
	if gotA.BaseSalary != 111 || gotB.BaseSalary != 222 {
		t.Errorf("profile drafts bled into each other: A=%v B=%v", gotA.BaseSalary, gotB.BaseSalary)
	}
}
