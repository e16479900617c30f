// Package i18n holds the interface string tables.
package i18n

import "github.com/mectus11/bplan/internal/model"

// Strings is one language's interface text.
type Strings struct {
	BudgetTitle     string
	TotalIncome     string
	TotalExpenses   string
	RemainingBudget string
	PercentageSpent string
	BaseSalary      string
	ExtraIncome     string
	Expenses        string
	Month           string
	Profile         string
	SavedBudgets    string
	NoSavedBudgets  string
	NoItems         string
	FinancialAdvice string

	BudgetSaved    string
	BudgetLoaded   string
	BudgetDeleted  string
	SwitchedTo     string
	ProfileCreated string
	ProfileRenamed string
	ProfileDeleted string
	InputsCleared  string

	AdviceStart      string
	AdviceOverBudget string
	AdviceDanger     string
	AdviceGood       string
}

var en = Strings{
	BudgetTitle:     "MONTHLY BUDGET",
	TotalIncome:     "Total Income",
	TotalExpenses:   "Total Expenses",
	RemainingBudget: "Remaining Budget",
	PercentageSpent: "Spent",
	BaseSalary:      "Base Salary",
	ExtraIncome:     "Extra Income",
	Expenses:        "Expenses",
	Month:           "Month",
	Profile:         "Profile",
	SavedBudgets:    "Saved Budgets",
	NoSavedBudgets:  "No saved budgets yet.",
	NoItems:         "No items.",
	FinancialAdvice: "Financial Advice",

	BudgetSaved:    "Budget saved",
	BudgetLoaded:   "Budget loaded",
	BudgetDeleted:  "Budget deleted",
	SwitchedTo:     "Switched to",
	ProfileCreated: "Profile created",
	ProfileRenamed: "Profile renamed",
	ProfileDeleted: "Profile deleted",
	InputsCleared:  "Budget inputs cleared",

	AdviceStart:      "Add your salary and expenses to see where your money goes.",
	AdviceOverBudget: "You are over budget. Review your expenses and cut back where you can.",
	AdviceDanger:     "You are close to your limit. Keep an eye on discretionary spending.",
	AdviceGood:       "Your budget looks healthy. Consider putting the surplus into savings.",
}

var fr = Strings{
	BudgetTitle:     "BUDGET MENSUEL",
	TotalIncome:     "Revenu total",
	TotalExpenses:   "Dépenses totales",
	RemainingBudget: "Budget restant",
	PercentageSpent: "Dépensé",
	BaseSalary:      "Salaire de base",
	ExtraIncome:     "Revenus supplémentaires",
	Expenses:        "Dépenses",
	Month:           "Mois",
	Profile:         "Profil",
	SavedBudgets:    "Budgets enregistrés",
	NoSavedBudgets:  "Aucun budget enregistré.",
	NoItems:         "Aucun élément.",
	FinancialAdvice: "Conseil financier",

	BudgetSaved:    "Budget enregistré",
	BudgetLoaded:   "Budget chargé",
	BudgetDeleted:  "Budget supprimé",
	SwitchedTo:     "Passé à",
	ProfileCreated: "Profil créé",
	ProfileRenamed: "Profil renommé",
	ProfileDeleted: "Profil supprimé",
	InputsCleared:  "Saisies réinitialisées",

	AdviceStart:      "Ajoutez votre salaire et vos dépenses pour voir où va votre argent.",
	AdviceOverBudget: "Vous dépassez votre budget. Révisez vos dépenses et réduisez où c'est possible.",
	AdviceDanger:     "Vous approchez de votre limite. Surveillez les dépenses superflues.",
	AdviceGood:       "Votre budget est sain. Pensez à épargner le surplus.",
}

// ByCode returns the string table for a language code, falling back to
// English for unknown codes.
func ByCode(code string) Strings {
	if code == "fr" {
		return fr
	}
	return en
}

// Advice returns the advice message for a level.
func (s Strings) Advice(level model.AdviceLevel) string {
	switch level {
	case model.AdviceStart:
		return s.AdviceStart
	case model.AdviceOverBudget:
		return s.AdviceOverBudget
	case model.AdviceDanger:
		return s.AdviceDanger
	default:
		return s.AdviceGood
	}
}
