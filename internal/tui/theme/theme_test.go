package theme

import "testing"

func TestByNameKnown(t *testing.T) {
	for _, name := range Names() {
		if got := ByName(name); got.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, got.Name)
		}
	}
}

func TestByNameUnknownFallsBack(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != PaperDark.Name {
		t.Errorf("ByName fallback = %q, want %q", got.Name, PaperDark.Name)
	}
}

func TestExists(t *testing.T) {
	if !Exists("terminal") {
		t.Error("Exists(terminal) = false")
	}
	if Exists("no-such-theme") {
		t.Error("Exists(no-such-theme) = true")
	}
}

func TestSetActive(t *testing.T) {
	prev := Active
	defer func() { Active = prev }()

	SetActive("nightfall")
	if Active.Name != "nightfall" {
		t.Errorf("Active.Name = %q after SetActive", Active.Name)
	}
}
