package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/model"
)

// parseAmount parses a non-negative monetary amount, accepting both dot
// and comma decimal separators.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("amount must be a non-negative number, got %q", s)
	}
	return v, nil
}

// parseItemAmount parses an item amount, which must be strictly positive.
func parseItemAmount(s string) (float64, error) {
	v, err := parseAmount(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %q", s)
	}
	return v, nil
}

// parseItemDate validates an optional "YYYY-MM-DD" item date.
func parseItemDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date %q: want \"YYYY-MM-DD\"", s)
	}
	return s, nil
}

// shortID abbreviates an item ID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// matchID resolves an ID argument against the given IDs: exact match
// first, then unique prefix.
func matchID(ids []string, arg string) (string, error) {
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
	}

	var found string
	for _, id := range ids {
		if strings.HasPrefix(id, arg) {
			if found != "" {
				return "", fmt.Errorf("ambiguous id %q", arg)
			}
			found = id
		}
	}
	if found == "" {
		return "", fmt.Errorf("no item with id %q", arg)
	}
	return found, nil
}

// incomeTable renders income items for list output.
func incomeTable(items []model.IncomeItem, symbol string) cli.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{shortID(item.ID), item.Name, item.Date, cli.FormatAmount(item.Amount, symbol)})
	}
	return cli.Table{Headers: []string{"ID", "Name", "Date", "Amount"}, Rows: rows}
}

// expenseTable renders expense items for list output.
func expenseTable(items []model.ExpenseItem, symbol string) cli.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{shortID(item.ID), item.Name, item.Date, cli.FormatAmount(item.Amount, symbol)})
	}
	return cli.Table{Headers: []string{"ID", "Name", "Date", "Amount"}, Rows: rows}
}
