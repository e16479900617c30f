// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mectus11/bplan/internal/model"
)

// FormatAmount formats a monetary amount with thousands separators and
// two decimals, followed by the currency symbol.
// e.g., 1234.5 with "€" -> "1,234.50 €"
func FormatAmount(v float64, symbol string) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	formatted := groupThousands(intPart) + "." + fracPart
	if neg {
		formatted = "-" + formatted
	}
	if symbol == "" {
		return formatted
	}
	return formatted + " " + symbol
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatMonth renders a "YYYY-MM" month key as a human-readable label.
// Malformed keys are returned unchanged.
func FormatMonth(monthKey string) string {
	d, err := model.ParseMonth(monthKey)
	if err != nil {
		return monthKey
	}
	return d.Format("January 2006")
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// Truncate shortens s to at most n runes, ending with an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
