package store

import "net/url"

// Process-wide slots, independent of any profile.
const (
	keyProfiles = "profiles"
	keyActive   = "active_profile"
	keyCurrency = "currency"
	keyLanguage = "language"
)

// draftKey returns the slot holding profile's working draft.
//
// Profile names are path-escaped before joining, so the derivation is
// injective: distinct names never collide, including names that are
// prefixes of one another or contain the separator itself.
func draftKey(profile string) string {
	return "profile/" + url.PathEscape(profile) + "/draft"
}

// archiveKey returns the slot holding profile's saved-budget archive.
func archiveKey(profile string) string {
	return "profile/" + url.PathEscape(profile) + "/archive"
}
