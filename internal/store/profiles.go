package store

import (
	"encoding/json"
	"fmt"
	"slices"
)

// DefaultProfile is the profile that exists on first run and anchors the
// "profile set is never empty" invariant.
const DefaultProfile = "Default"

// Profiles returns the ordered profile list. An absent or malformed slot
// yields the initial single-profile set (malformed content additionally
// carries an ErrMalformedData diagnostic).
func (s *Store) Profiles() ([]string, error) {
	raw, ok, err := s.Get(keyProfiles)
	if err != nil {
		return []string{DefaultProfile}, err
	}
	if !ok {
		return []string{DefaultProfile}, nil
	}

	var profiles []string
	if err := json.Unmarshal([]byte(raw), &profiles); err != nil {
		return []string{DefaultProfile}, fmt.Errorf("%w: profile list: %v", ErrMalformedData, err)
	}
	if len(profiles) == 0 {
		return []string{DefaultProfile}, nil
	}
	return profiles, nil
}

// ActiveProfile returns the active profile name, defaulting to
// DefaultProfile when unset.
func (s *Store) ActiveProfile() (string, error) {
	name, ok, err := s.Get(keyActive)
	if err != nil || !ok || name == "" {
		return DefaultProfile, err
	}
	return name, nil
}

// CreateProfile appends name to the profile set and switches the active
// profile to it. A newly created profile starts with an empty draft and
// empty archive: nothing is written at its keys. Fails with
// ErrDuplicateProfile when the name is already present.
func (s *Store) CreateProfile(name string) error {
	profiles, err := s.Profiles()
	if err != nil {
		return err
	}
	if slices.Contains(profiles, name) {
		return fmt.Errorf("%w: %q", ErrDuplicateProfile, name)
	}

	if err := s.putProfiles(append(profiles, name)); err != nil {
		return err
	}
	return s.SwitchProfile(name)
}

// SwitchProfile persists name as the active profile. The caller is
// responsible for only passing names already in the profile set, and for
// reloading the draft and archive afterwards.
func (s *Store) SwitchProfile(name string) error {
	return s.Put(keyActive, name)
}

// RenameProfile replaces oldName with newName in the profile set and
// moves the draft and archive slots to the new name's keys. Slots with
// no data stay absent. If oldName was active, newName becomes active.
// Fails with ErrDuplicateProfile when newName is already taken by a
// different profile.
func (s *Store) RenameProfile(oldName, newName string) error {
	if oldName == newName {
		return nil
	}

	profiles, err := s.Profiles()
	if err != nil {
		return err
	}
	if slices.Contains(profiles, newName) {
		return fmt.Errorf("%w: %q", ErrDuplicateProfile, newName)
	}

	// Both slots move in one transaction, so a failure mid-migration
	// cannot leave one slot under each name.
	err = s.Move(
		[2]string{draftKey(oldName), draftKey(newName)},
		[2]string{archiveKey(oldName), archiveKey(newName)},
	)
	if err != nil {
		return fmt.Errorf("migrating profile data: %w", err)
	}

	for i, p := range profiles {
		if p == oldName {
			profiles[i] = newName
		}
	}
	if err := s.putProfiles(profiles); err != nil {
		return err
	}

	active, err := s.ActiveProfile()
	if err != nil {
		return err
	}
	if active == oldName {
		return s.SwitchProfile(newName)
	}
	return nil
}

// DeleteProfile removes name from the profile set and permanently
// deletes its draft and archive slots. The active profile can never be
// deleted: ErrCannotDeleteActiveProfile, no state change.
func (s *Store) DeleteProfile(name string) error {
	active, err := s.ActiveProfile()
	if err != nil {
		return err
	}
	if name == active {
		return fmt.Errorf("%w: %q", ErrCannotDeleteActiveProfile, name)
	}

	profiles, err := s.Profiles()
	if err != nil {
		return err
	}
	remaining := slices.DeleteFunc(profiles, func(p string) bool { return p == name })
	if err := s.putProfiles(remaining); err != nil {
		return err
	}

	if err := s.Delete(draftKey(name)); err != nil {
		return err
	}
	return s.Delete(archiveKey(name))
}

func (s *Store) putProfiles(profiles []string) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encoding profile list: %w", err)
	}
	return s.Put(keyProfiles, string(data))
}
