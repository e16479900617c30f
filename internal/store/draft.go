package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mectus11/bplan/internal/model"
)

// SaveDraft writes profile's whole working draft, replacing any previous
// value. Called on every input change; writing the same draft twice is a
// no-op in effect.
func (s *Store) SaveDraft(profile string, in model.Inputs) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	return s.Put(draftKey(profile), string(data))
}

// LoadDraft returns profile's stored draft. When the slot is absent the
// inputs reset to defaults (current month, zero salary, empty items).
// A draft that fails to parse is treated the same way, with the parse
// failure returned as an ErrMalformedData diagnostic alongside the
// usable defaults.
func (s *Store) LoadDraft(profile string) (model.Inputs, error) {
	raw, ok, err := s.Get(draftKey(profile))
	if err != nil {
		return model.DefaultInputs(time.Now()), err
	}
	if !ok {
		return model.DefaultInputs(time.Now()), nil
	}

	var in model.Inputs
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return model.DefaultInputs(time.Now()), fmt.Errorf("%w: draft for %q: %v", ErrMalformedData, profile, err)
	}
	if _, err := model.ParseMonth(in.Month); err != nil {
		return model.DefaultInputs(time.Now()), fmt.Errorf("%w: draft month for %q: %v", ErrMalformedData, profile, err)
	}
	if in.ExtraIncome == nil {
		in.ExtraIncome = []model.IncomeItem{}
	}
	if in.Expenses == nil {
		in.Expenses = []model.ExpenseItem{}
	}
	return in, nil
}
