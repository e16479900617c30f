package store

import "testing"

func TestKeyDerivationInjective(t *testing.T) {
	// Names chosen to collide under naive string concatenation:
	// prefixes of one another, separators inside names.
	names := []string{
		"Default",
		"Default2",
		"Work",
		"Work/Side",
		"Work/Side/draft",
		"profile",
		"a/b",
		"a%2Fb",
	}

	seen := map[string]string{}
	for _, name := range names {
		for _, key := range []string{draftKey(name), archiveKey(name)} {
			if prev, dup := seen[key]; dup {
				t.Errorf("key %q derived for both %q and %q", key, prev, name)
			}
			seen[key] = name
		}
	}
}

func TestKeyDerivationDeterministic(t *testing.T) {
	if draftKey("Travel") != draftKey("Travel") {
		t.Error("draftKey not deterministic")
	}
	if draftKey("Travel") == archiveKey("Travel") {
		t.Error("draft and archive slots collide for the same profile")
	}
}
