package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mectus11/bplan/internal/i18n"
	"github.com/mectus11/bplan/internal/model"

	"github.com/signintech/gopdf"
)

func TestFilename(t *testing.T) {
	if got := Filename("2025-06"); got != "budget-report-2025-06.pdf" {
		t.Errorf("Filename = %q", got)
	}
}

func TestFindFontConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FindFont(path)
	if err != nil {
		t.Fatalf("FindFont: %v", err)
	}
	if got != path {
		t.Errorf("FindFont = %q, want configured path", got)
	}
}

func TestFindFontMissingConfiguredPath(t *testing.T) {
	if _, err := FindFont(filepath.Join(t.TempDir(), "absent.ttf")); err == nil {
		t.Error("FindFont accepted a nonexistent configured path")
	}
}

func TestRender(t *testing.T) {
	fontPath, err := FindFont("")
	if errors.Is(err, ErrNoFont) {
		t.Skip("no system TTF font available")
	}
	if err != nil {
		t.Fatalf("FindFont: %v", err)
	}

	saved := model.Snapshot(model.Inputs{
		Month:       "2025-06",
		BaseSalary:  2000,
		ExtraIncome: []model.IncomeItem{{ID: "i1", Name: "Freelance", Amount: 300}},
		Expenses: []model.ExpenseItem{
			{ID: "e1", Name: "Rent", Amount: 500},
			{ID: "e2", Name: "Groceries", Amount: 200},
		},
	})

	data, err := Render(saved, i18n.ByCode("en"), "$", fontPath)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(8, len(data))])
	}
}

func TestBreakPageStartsNewPageNearBottom(t *testing.T) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if got := breakPage(&pdf, marginY, lineH); got != marginY {
		t.Errorf("breakPage near top moved y to %v", got)
	}
	if got := breakPage(&pdf, pageH-marginY-lineH, lineH); got != pageH-marginY-lineH {
		t.Errorf("breakPage with exactly one line left moved y to %v", got)
	}
	if got := breakPage(&pdf, pageH-marginY, lineH); got != marginY {
		t.Errorf("breakPage at the bottom returned %v, want top of a new page", got)
	}
}

func TestRenderManyExpensesSpansPages(t *testing.T) {
	fontPath, err := FindFont("")
	if errors.Is(err, ErrNoFont) {
		t.Skip("no system TTF font available")
	}
	if err != nil {
		t.Fatalf("FindFont: %v", err)
	}

	in := model.Inputs{Month: "2025-06", BaseSalary: 5000}
	for i := 0; i < 60; i++ {
		in.Expenses = append(in.Expenses, model.ExpenseItem{
			ID:     fmt.Sprintf("e%d", i),
			Name:   fmt.Sprintf("Expense %d", i),
			Amount: 10,
		})
	}

	data, err := Render(model.Snapshot(in), i18n.ByCode("en"), "$", fontPath)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Page objects carry /Type /Page; subtract the /Type /Pages tree node.
	pages := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	if pages < 2 {
		t.Errorf("60-item report produced %d page(s), want at least 2", pages)
	}
}
