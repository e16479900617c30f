package store

import (
	"encoding/json"
	"fmt"

	"github.com/mectus11/bplan/internal/model"
)

// LoadArchive returns profile's whole saved-budget archive, keyed by
// month ("YYYY-MM"). An absent slot yields an empty map; a slot that
// fails to parse yields an empty map plus an ErrMalformedData
// diagnostic.
func (s *Store) LoadArchive(profile string) (map[string]model.SavedBudget, error) {
	raw, ok, err := s.Get(archiveKey(profile))
	if err != nil {
		return map[string]model.SavedBudget{}, err
	}
	if !ok {
		return map[string]model.SavedBudget{}, nil
	}

	archive := map[string]model.SavedBudget{}
	if err := json.Unmarshal([]byte(raw), &archive); err != nil {
		return map[string]model.SavedBudget{}, fmt.Errorf("%w: archive for %q: %v", ErrMalformedData, profile, err)
	}
	return archive, nil
}

// SaveBudget computes the summary for in and upserts it into profile's
// archive under the inputs' month key, persisting the whole map. Saving
// the same month again silently overwrites the previous entry.
func (s *Store) SaveBudget(profile string, in model.Inputs) (model.SavedBudget, error) {
	archive, err := s.LoadArchive(profile)
	if err != nil {
		return model.SavedBudget{}, err
	}

	saved := model.Snapshot(in)
	archive[in.Month] = saved

	if err := s.putArchive(profile, archive); err != nil {
		return model.SavedBudget{}, err
	}
	return saved, nil
}

// LoadBudget returns the archive entry for month, if present. The read
// does not alter the archive.
func (s *Store) LoadBudget(profile, month string) (model.SavedBudget, bool, error) {
	archive, err := s.LoadArchive(profile)
	if err != nil {
		return model.SavedBudget{}, false, err
	}
	saved, ok := archive[month]
	return saved, ok, nil
}

// DeleteBudget removes the entry for month and persists the archive.
// A missing month is a silent no-op.
func (s *Store) DeleteBudget(profile, month string) error {
	archive, err := s.LoadArchive(profile)
	if err != nil {
		return err
	}
	if _, ok := archive[month]; !ok {
		return nil
	}
	delete(archive, month)
	return s.putArchive(profile, archive)
}

func (s *Store) putArchive(profile string, archive map[string]model.SavedBudget) error {
	data, err := json.Marshal(archive)
	if err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}
	return s.Put(archiveKey(profile), string(data))
}
