package i18n

import (
	"testing"

	"github.com/mectus11/bplan/internal/model"
)

func TestByCode(t *testing.T) {
	if ByCode("fr").TotalIncome != "Revenu total" {
		t.Error("fr table not returned for code fr")
	}
	if ByCode("en").TotalIncome != "Total Income" {
		t.Error("en table not returned for code en")
	}
	if ByCode("tlh").TotalIncome != "Total Income" {
		t.Error("unknown code did not fall back to English")
	}
}

func TestAdviceCoversAllLevels(t *testing.T) {
	s := ByCode("en")
	levels := []model.AdviceLevel{
		model.AdviceStart, model.AdviceOverBudget, model.AdviceDanger, model.AdviceGood,
	}
	seen := map[string]bool{}
	for _, lvl := range levels {
		msg := s.Advice(lvl)
		if msg == "" {
			t.Errorf("empty advice for level %v", lvl)
		}
		if seen[msg] {
			t.Errorf("duplicate advice message for level %v", lvl)
		}
		seen[msg] = true
	}
}
