package model

import "testing"

func TestAdvise(t *testing.T) {
	cases := []struct {
		name string
		s    Summary
		want AdviceLevel
	}{
		{"no income", Summary{}, AdviceStart},
		{"over budget", Summary{TotalIncome: 100, RemainingBudget: -50, PercentageSpent: 150}, AdviceOverBudget},
		{"near limit", Summary{TotalIncome: 100, RemainingBudget: 5, PercentageSpent: 95}, AdviceDanger},
		{"warning band stays good", Summary{TotalIncome: 100, RemainingBudget: 15, PercentageSpent: 85}, AdviceGood},
		{"at threshold stays good", Summary{TotalIncome: 100, RemainingBudget: 10, PercentageSpent: 90}, AdviceGood},
		{"just past threshold", Summary{TotalIncome: 100, RemainingBudget: 9.9, PercentageSpent: 90.1}, AdviceDanger},
		{"healthy", Summary{TotalIncome: 100, RemainingBudget: 60, PercentageSpent: 40}, AdviceGood},
	}
	for _, tc := range cases {
		if got := Advise(tc.s); got != tc.want {
			t.Errorf("%s: Advise = %v, want %v", tc.name, got, tc.want)
		}
	}
}
