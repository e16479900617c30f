package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mectus11/bplan/internal/model"

	"github.com/charmbracelet/huh"
)

// formKind tells applyForm what to do with a completed form.
type formKind int

const (
	formNone formKind = iota
	formAddIncome
	formAddExpense
	formBudget
	formNewProfile
	formRenameProfile
)

// itemFormValues backs the add-income and add-expense forms.
type itemFormValues struct {
	name   string
	amount string
	date   string
}

// budgetFormValues backs the month/salary form.
type budgetFormValues struct {
	month  string
	salary string
}

// nameFormValues backs the profile create/rename forms.
type nameFormValues struct {
	name string
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("not a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateSalary(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

func validateMonth(s string) error {
	if _, err := model.ParseMonth(s); err != nil {
		return fmt.Errorf("want YYYY-MM")
	}
	return nil
}

// parseFormAmount converts a validated amount string to a float.
func parseFormAmount(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	return v
}

func newItemForm(title string, vals *itemFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&vals.name).
				Validate(validateName),
			huh.NewInput().
				Title("Amount").
				Value(&vals.amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Date (optional)").
				Placeholder("YYYY-MM-DD").
				Value(&vals.date).
				Validate(validateDate),
		).Title(title),
	)
}

func newBudgetForm(vals *budgetFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Month").
				Placeholder("YYYY-MM").
				Value(&vals.month).
				Validate(validateMonth),
			huh.NewInput().
				Title("Base salary").
				Value(&vals.salary).
				Validate(validateSalary),
		).Title("Budget month"),
	)
}

func newProfileForm(title string, vals *nameFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Profile name").
				Value(&vals.name).
				Validate(validateName),
		).Title(title),
	)
}
