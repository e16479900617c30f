// Package report generates the downloadable PDF budget report.
package report

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/i18n"
	"github.com/mectus11/bplan/internal/model"

	"github.com/signintech/gopdf"
)

// ErrNoFont is returned when no usable TTF font can be found. PDF text
// needs an embedded font; set report.font_path in the config to fix it.
var ErrNoFont = errors.New("no TTF font found for the PDF report")

// fontCandidates are common system font locations tried when no font is
// configured.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// FindFont resolves the report font: the configured path when set,
// otherwise the first existing candidate.
func FindFont(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("configured report font %q: %w", configured, err)
		}
		return configured, nil
	}
	for _, path := range fontCandidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNoFont
}

// Filename returns the report file name for a month key.
func Filename(monthKey string) string {
	return "budget-report-" + monthKey + ".pdf"
}

// Page geometry (A4 portrait, points).
const (
	pageW      = 595.0
	pageH      = 842.0
	marginX    = 40.0
	marginY    = 40.0
	headerH    = 110.0
	lineH      = 22.0
	sectionGap = 18.0
)

// breakPage starts a new page when the next line would run past the
// bottom margin, returning the adjusted y.
func breakPage(pdf *gopdf.GoPdf, y, need float64) float64 {
	if y+need <= pageH-marginY {
		return y
	}
	pdf.AddPage()
	return marginY
}

// Render produces the PDF report for a saved budget.
func Render(b model.SavedBudget, tr i18n.Strings, symbol, fontPath string) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont("main", fontPath); err != nil {
		return nil, fmt.Errorf("loading report font: %w", err)
	}

	pdf.AddPage()

	// Header band
	pdf.SetFillColor(58, 169, 159)
	pdf.RectFromUpperLeftWithStyle(0, 0, pageW, headerH, "F")

	pdf.SetTextColor(255, 255, 255)
	if err := pdf.SetFont("main", "", 26); err != nil {
		return nil, fmt.Errorf("setting font: %w", err)
	}
	pdf.SetX(marginX)
	pdf.SetY(30)
	_ = pdf.Cell(nil, tr.BudgetTitle)

	_ = pdf.SetFont("main", "", 12)
	pdf.SetX(marginX)
	pdf.SetY(66)
	_ = pdf.Cell(nil, fmt.Sprintf("%s: %s", tr.Month, cli.FormatMonth(b.Month)))
	pdf.SetX(marginX)
	pdf.SetY(84)
	_ = pdf.Cell(nil, time.Now().Format("2006-01-02"))

	y := headerH + 30

	// Summary
	pdf.SetTextColor(28, 27, 26)
	_ = pdf.SetFont("main", "", 16)
	pdf.SetX(marginX)
	pdf.SetY(y)
	_ = pdf.Cell(nil, tr.BudgetTitle)
	y += lineH + 6

	_ = pdf.SetFont("main", "", 12)
	summaryRows := []struct {
		label string
		value string
	}{
		{tr.TotalIncome, cli.FormatAmount(b.TotalIncome, symbol)},
		{tr.TotalExpenses, cli.FormatAmount(b.TotalExpenses, symbol)},
		{tr.RemainingBudget, cli.FormatAmount(b.RemainingBudget, symbol)},
		{tr.PercentageSpent, cli.FormatPercent(b.PercentageSpent)},
	}
	for _, row := range summaryRows {
		y = writeRow(&pdf, y, row.label, row.value)
	}
	y += sectionGap

	// Advice
	_ = pdf.SetFont("main", "", 16)
	pdf.SetX(marginX)
	pdf.SetY(y)
	_ = pdf.Cell(nil, tr.FinancialAdvice)
	y += lineH + 4

	level := model.Advise(b.Summary)
	switch level {
	case model.AdviceOverBudget:
		pdf.SetTextColor(209, 77, 65)
	case model.AdviceDanger:
		pdf.SetTextColor(218, 112, 44)
	default:
		pdf.SetTextColor(135, 154, 57)
	}
	_ = pdf.SetFont("main", "", 12)
	pdf.SetX(marginX)
	pdf.SetY(y)
	_ = pdf.Cell(nil, tr.Advice(level))
	pdf.SetTextColor(28, 27, 26)
	y += lineH + sectionGap

	// Income breakdown
	y = writeSection(&pdf, y, tr.ExtraIncome)
	y = writeRow(&pdf, y, tr.BaseSalary, cli.FormatAmount(b.BaseSalary, symbol))
	for _, item := range b.ExtraIncome {
		y = writeRow(&pdf, y, item.Name, cli.FormatAmount(item.Amount, symbol))
	}
	y += sectionGap

	// Expense breakdown
	y = writeSection(&pdf, y, tr.Expenses)
	if len(b.Expenses) == 0 {
		y = writeRow(&pdf, y, tr.NoItems, "")
	}
	for _, item := range b.Expenses {
		y = writeRow(&pdf, y, item.Name, cli.FormatAmount(item.Amount, symbol))
	}

	return pdf.GetBytesPdf(), nil
}

func writeSection(pdf *gopdf.GoPdf, y float64, title string) float64 {
	// Keep the heading with at least one row of its section.
	y = breakPage(pdf, y, 2*lineH+6)
	_ = pdf.SetFont("main", "", 16)
	pdf.SetX(marginX)
	pdf.SetY(y)
	_ = pdf.Cell(nil, title)
	_ = pdf.SetFont("main", "", 12)
	return y + lineH + 6
}

func writeRow(pdf *gopdf.GoPdf, y float64, label, value string) float64 {
	y = breakPage(pdf, y, lineH)
	pdf.SetX(marginX + 10)
	pdf.SetY(y)
	_ = pdf.Cell(nil, label)
	if value != "" {
		pdf.SetX(320)
		pdf.SetY(y)
		_ = pdf.Cell(nil, value)
	}
	return y + lineH
}
