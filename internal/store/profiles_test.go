package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mectus11/bplan/internal/model"
)

func TestFirstRunDefaults(t *testing.T) {
	s := openTestStore(t)

	profiles, err := s.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if !reflect.DeepEqual(profiles, []string{DefaultProfile}) {
		t.Errorf("Profiles = %v, want [Default]", profiles)
	}

	active, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile: %v", err)
	}
	if active != DefaultProfile {
		t.Errorf("ActiveProfile = %q, want Default", active)
	}
}

func TestCreateProfileSwitchesActive(t *testing.T) {
	s := openTestStore(t)

	if err := s.CreateProfile("Work"); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	profiles, _ := s.Profiles()
	if !reflect.DeepEqual(profiles, []string{"Default", "Work"}) {
		t.Errorf("Profiles = %v, want [Default Work]", profiles)
	}
	active, _ := s.ActiveProfile()
	if active != "Work" {
		t.Errorf("ActiveProfile = %q, want Work", active)
	}

	// A new profile starts empty: no slots exist at its keys.
	if _, ok, _ := s.Get(draftKey("Work")); ok {
		t.Error("new profile has a draft slot")
	}
	if _, ok, _ := s.Get(archiveKey("Work")); ok {
		t.Error("new profile has an archive slot")
	}
}

func TestCreateDuplicateProfile(t *testing.T) {
	s := openTestStore(t)
	if err := s.CreateProfile("Work"); err != nil {
		t.Fatal(err)
	}

	err := s.CreateProfile("Work")
	if !errors.Is(err, ErrDuplicateProfile) {
		t.Fatalf("CreateProfile(dup) = %v, want ErrDuplicateProfile", err)
	}

	// No state change on failure.
	profiles, _ := s.Profiles()
	if !reflect.DeepEqual(profiles, []string{"Default", "Work"}) {
		t.Errorf("Profiles changed on failed create: %v", profiles)
	}
}

func TestDeleteActiveProfileRefused(t *testing.T) {
	s := openTestStore(t)

	err := s.DeleteProfile(DefaultProfile)
	if !errors.Is(err, ErrCannotDeleteActiveProfile) {
		t.Fatalf("DeleteProfile(active) = %v, want ErrCannotDeleteActiveProfile", err)
	}

	profiles, _ := s.Profiles()
	if !reflect.DeepEqual(profiles, []string{DefaultProfile}) {
		t.Errorf("profile set changed: %v", profiles)
	}
	active, _ := s.ActiveProfile()
	if active != DefaultProfile {
		t.Errorf("active profile changed: %q", active)
	}
}

func TestDeleteProfileRemovesData(t *testing.T) {
	s := openTestStore(t)
	if err := s.CreateProfile("Old"); err != nil {
		t.Fatal(err)
	}
	draft := model.Inputs{Month: "2025-03", BaseSalary: 900, ExtraIncome: []model.IncomeItem{}, Expenses: []model.ExpenseItem{}}
	if err := s.SaveDraft("Old", draft); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveBudget("Old", draft); err != nil {
		t.Fatal(err)
	}

	// Switch away so Old becomes deletable.
	if err := s.SwitchProfile(DefaultProfile); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteProfile("Old"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}

	profiles, _ := s.Profiles()
	if !reflect.DeepEqual(profiles, []string{DefaultProfile}) {
		t.Errorf("Profiles = %v, want [Default]", profiles)
	}
	if _, ok, _ := s.Get(draftKey("Old")); ok {
		t.Error("deleted profile still has a draft slot")
	}
	if _, ok, _ := s.Get(archiveKey("Old")); ok {
		t.Error("deleted profile still has an archive slot")
	}
}

func TestRenameProfileMovesData(t *testing.T) {
	s := openTestStore(t)

	draft := model.Inputs{
		Month:       "2025-05",
		BaseSalary:  1500,
		ExtraIncome: []model.IncomeItem{{ID: "i1", Name: "Tutoring", Amount: 120}},
		Expenses:    []model.ExpenseItem{{ID: "e1", Name: "Rent", Amount: 600}},
	}
	if err := s.SaveDraft(DefaultProfile, draft); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveBudget(DefaultProfile, draft); err != nil {
		t.Fatal(err)
	}

	if err := s.RenameProfile(DefaultProfile, "Personal"); err != nil {
		t.Fatalf("RenameProfile: %v", err)
	}

	profiles, _ := s.Profiles()
	if !reflect.DeepEqual(profiles, []string{"Personal"}) {
		t.Errorf("Profiles = %v, want [Personal]", profiles)
	}
	active, _ := s.ActiveProfile()
	if active != "Personal" {
		t.Errorf("active = %q, want Personal (rename follows active)", active)
	}

	got, err := s.LoadDraft("Personal")
	if err != nil {
		t.Fatalf("LoadDraft after rename: %v", err)
	}
	if !reflect.DeepEqual(got, draft) {
		t.Errorf("draft after rename = %+v, want %+v", got, draft)
	}
	if _, ok, _ := s.Get(draftKey(DefaultProfile)); ok {
		t.Error("old draft slot still present after rename")
	}

	archive, _ := s.LoadArchive("Personal")
	if len(archive) != 1 {
		t.Errorf("archive after rename has %d entries, want 1", len(archive))
	}
}

func TestRenameRoundTrip(t *testing.T) {
	s := openTestStore(t)

	draft := model.Inputs{Month: "2025-07", BaseSalary: 2000, ExtraIncome: []model.IncomeItem{}, Expenses: []model.ExpenseItem{}}
	if err := s.SaveDraft(DefaultProfile, draft); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveBudget(DefaultProfile, draft); err != nil {
		t.Fatal(err)
	}
	origDraft, _, _ := s.Get(draftKey(DefaultProfile))
	origArchive, _, _ := s.Get(archiveKey(DefaultProfile))

	if err := s.RenameProfile(DefaultProfile, "B"); err != nil {
		t.Fatal(err)
	}
	if err := s.RenameProfile("B", DefaultProfile); err != nil {
		t.Fatal(err)
	}

	// Bit-for-bit restoration of the original slots.
	gotDraft, ok, _ := s.Get(draftKey(DefaultProfile))
	if !ok || gotDraft != origDraft {
		t.Errorf("draft slot not restored: got %q", gotDraft)
	}
	gotArchive, ok, _ := s.Get(archiveKey(DefaultProfile))
	if !ok || gotArchive != origArchive {
		t.Errorf("archive slot not restored: got %q", gotArchive)
	}
}

func TestRenameToExistingProfile(t *testing.T) {
	s := openTestStore(t)
	if err := s.CreateProfile("Work"); err != nil {
		t.Fatal(err)
	}

	err := s.RenameProfile("Work", DefaultProfile)
	if !errors.Is(err, ErrDuplicateProfile) {
		t.Fatalf("RenameProfile(collision) = %v, want ErrDuplicateProfile", err)
	}
}

func TestRenameNoopWhenUnchanged(t *testing.T) {
	s := openTestStore(t)
	if err := s.RenameProfile(DefaultProfile, DefaultProfile); err != nil {
		t.Fatalf("RenameProfile(same name) = %v, want nil", err)
	}
}

func TestRenameWithoutDataLeavesSlotsAbsent(t *testing.T) {
	s := openTestStore(t)
	if err := s.RenameProfile(DefaultProfile, "Fresh"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(draftKey("Fresh")); ok {
		t.Error("rename created an empty draft slot")
	}
	if _, ok, _ := s.Get(archiveKey("Fresh")); ok {
		t.Error("rename created an empty archive slot")
	}
}

func TestMalformedProfileList(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put(keyProfiles, "{not json"); err != nil {
		t.Fatal(err)
	}

	profiles, err := s.Profiles()
	if !errors.Is(err, ErrMalformedData) {
		t.Errorf("Profiles on corrupt slot: err = %v, want ErrMalformedData diagnostic", err)
	}
	if !reflect.DeepEqual(profiles, []string{DefaultProfile}) {
		t.Errorf("Profiles = %v, want recovery to [Default]", profiles)
	}
}
