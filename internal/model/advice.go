package model

// AdviceLevel classifies a budget's health for display and reports.
type AdviceLevel int

// Advice levels, from "nothing entered yet" to healthy.
const (
	AdviceStart AdviceLevel = iota
	AdviceOverBudget
	AdviceDanger
	AdviceGood
)

// dangerThreshold is the percentage-spent level above which a budget is
// flagged as close to its limit. Spending exactly the threshold still
// counts as healthy.
const dangerThreshold = 90.0

// Advise classifies the summary.
func Advise(s Summary) AdviceLevel {
	switch {
	case s.TotalIncome == 0:
		return AdviceStart
	case s.RemainingBudget < 0:
		return AdviceOverBudget
	case s.PercentageSpent > dangerThreshold:
		return AdviceDanger
	default:
		return AdviceGood
	}
}
