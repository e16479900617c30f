// Package model defines the budget data model and derived computations.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MonthKeyLayout is the Go time layout for month keys ("YYYY-MM").
const MonthKeyLayout = "2006-01"

// IncomeItem is a supplementary income entry in a monthly budget.
type IncomeItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color,omitempty"`
	Date   string  `json:"date,omitempty"` // "YYYY-MM-DD"
}

// ExpenseItem is a single expense entry in a monthly budget.
type ExpenseItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color,omitempty"`
	Date   string  `json:"date,omitempty"` // "YYYY-MM-DD"
}

// Inputs is the raw budget input set for one month — the working draft.
type Inputs struct {
	Month       string        `json:"month"` // "YYYY-MM"
	BaseSalary  float64       `json:"baseSalary"`
	ExtraIncome []IncomeItem  `json:"extraIncome"`
	Expenses    []ExpenseItem `json:"expenses"`
}

// Summary holds the derived totals for a set of inputs.
type Summary struct {
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpenses   float64 `json:"totalExpenses"`
	RemainingBudget float64 `json:"remainingBudget"`
	PercentageSpent float64 `json:"percentageSpent"`
}

// SavedBudget is a finalized month snapshot: the inputs plus their summary.
type SavedBudget struct {
	Inputs
	Summary
}

// Compute derives the summary from raw inputs. Pure and total: it never
// fails, applies no rounding, and never clamps a negative remainder.
func Compute(in Inputs) Summary {
	totalIncome := in.BaseSalary
	for _, item := range in.ExtraIncome {
		totalIncome += item.Amount
	}

	var totalExpenses float64
	for _, item := range in.Expenses {
		totalExpenses += item.Amount
	}

	pct := 0.0
	if totalIncome > 0 {
		pct = totalExpenses / totalIncome * 100
	}

	return Summary{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		RemainingBudget: totalIncome - totalExpenses,
		PercentageSpent: pct,
	}
}

// Snapshot pairs inputs with their computed summary.
func Snapshot(in Inputs) SavedBudget {
	return SavedBudget{Inputs: in, Summary: Compute(in)}
}

// DefaultInputs returns an empty draft for the current month.
func DefaultInputs(now time.Time) Inputs {
	return Inputs{
		Month:       now.Format(MonthKeyLayout),
		ExtraIncome: []IncomeItem{},
		Expenses:    []ExpenseItem{},
	}
}

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(MonthKeyLayout, s)
}

// NewIncomeItem builds an income item with a freshly assigned ID.
// Amount validation happens at the input boundary, not here.
func NewIncomeItem(name string, amount float64, color, date string) IncomeItem {
	return IncomeItem{
		ID:     uuid.NewString(),
		Name:   name,
		Amount: amount,
		Color:  color,
		Date:   date,
	}
}

// NewExpenseItem builds an expense item with a freshly assigned ID.
func NewExpenseItem(name string, amount float64, color, date string) ExpenseItem {
	return ExpenseItem{
		ID:     uuid.NewString(),
		Name:   name,
		Amount: amount,
		Color:  color,
		Date:   date,
	}
}

// AddIncome appends an income item to the draft.
func (in *Inputs) AddIncome(item IncomeItem) {
	in.ExtraIncome = append(in.ExtraIncome, item)
}

// AddExpense appends an expense item to the draft.
func (in *Inputs) AddExpense(item ExpenseItem) {
	in.Expenses = append(in.Expenses, item)
}

// UpdateIncome replaces the income item with a matching ID in place.
// Returns false if no item has that ID.
func (in *Inputs) UpdateIncome(item IncomeItem) bool {
	for i := range in.ExtraIncome {
		if in.ExtraIncome[i].ID == item.ID {
			in.ExtraIncome[i] = item
			return true
		}
	}
	return false
}

// UpdateExpense replaces the expense item with a matching ID in place.
func (in *Inputs) UpdateExpense(item ExpenseItem) bool {
	for i := range in.Expenses {
		if in.Expenses[i].ID == item.ID {
			in.Expenses[i] = item
			return true
		}
	}
	return false
}

// RemoveIncome deletes the income item with the given ID.
// Returns false if no item has that ID.
func (in *Inputs) RemoveIncome(id string) bool {
	for i := range in.ExtraIncome {
		if in.ExtraIncome[i].ID == id {
			in.ExtraIncome = append(in.ExtraIncome[:i], in.ExtraIncome[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveExpense deletes the expense item with the given ID.
func (in *Inputs) RemoveExpense(id string) bool {
	for i := range in.Expenses {
		if in.Expenses[i].ID == id {
			in.Expenses = append(in.Expenses[:i], in.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// Clear resets salary and both item lists, keeping the month.
func (in *Inputs) Clear() {
	in.BaseSalary = 0
	in.ExtraIncome = []IncomeItem{}
	in.Expenses = []ExpenseItem{}
}
