package cli

import (
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		v      float64
		symbol string
		want   string
	}{
		{0, "$", "0.00 $"},
		{1234.5, "€", "1,234.50 €"},
		{1234567.891, "$", "1,234,567.89 $"},
		{-300, "£", "-300.00 £"},
		{42, "", "42.00"},
		{700, "د.ت", "700.00 د.ت"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.v, tc.symbol); got != tc.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tc.v, tc.symbol, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(30.434782); got != "30.4%" {
		t.Errorf("FormatPercent = %q, want 30.4%%", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q, want 0.0%%", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth("2025-06"); got != "June 2025" {
		t.Errorf("FormatMonth = %q, want June 2025", got)
	}
	if got := FormatMonth("garbage"); got != "garbage" {
		t.Errorf("FormatMonth(garbage) = %q, want passthrough", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range cases {
		if got := FormatNumber(n); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Groceries", 20); got != "Groceries" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("A very long expense name", 10); got != "A very lo…" {
		t.Errorf("Truncate long = %q", got)
	}
}

func TestRenderTableSmoke(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Income", "2,300.00 $"},
			{"---"},
			{"Remaining", "1,600.00 $"},
		},
	})
	if out == "" {
		t.Fatal("empty table output")
	}
	for _, want := range []string{"Metric", "Total Income", "1,600.00 $"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}
