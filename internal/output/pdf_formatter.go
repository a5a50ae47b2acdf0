package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders an A4 report with the summary, scenario comparison and
// yearly trajectory tables.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	opts FormatOptions
}

func (p PDFFormatter) Format(results *domain.CalculationResult, opts FormatOptions) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(true, pdfMarginBottom)

	r := &pdfReport{
		pdf:  doc,
		tr:   doc.UnicodeTranslatorFromDescriptor(""),
		opts: opts.withDefaults(),
	}
	r.addSummaryPage(results)
	r.addComparison(results)
	r.addTrajectory(results.Trajectory)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) heading(text string) {
	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 78, 137)
	r.pdf.CellFormat(pdfContentWidth, 8, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) keyValues(rows []SummaryCard) {
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	for i, row := range rows {
		fill := i%2 == 0
		r.pdf.CellFormat(pdfContentWidth*0.55, 7, r.tr(row.Label), "1", 0, "L", fill, 0, "")
		r.pdf.CellFormat(pdfContentWidth*0.45, 7, r.tr(row.Value), "1", 1, "R", fill, 0, "")
	}
}

func (r *pdfReport) tableHeader(widths []float64, titles []string) {
	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(0, 78, 137)
	r.pdf.SetTextColor(255, 255, 255)
	for i, title := range titles {
		r.pdf.CellFormat(widths[i], 7, r.tr(title), "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFillColor(245, 247, 250)
}

func (r *pdfReport) addSummaryPage(results *domain.CalculationResult) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(255, 107, 53)
	r.pdf.CellFormat(pdfContentWidth, 14, "Coast FIRE Projection", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.CellFormat(pdfContentWidth, 6, r.tr("Currency: "+r.opts.Currency), "", 1, "C", false, 0, "")

	r.heading("Inputs")
	r.keyValues(InputViews(results.Parameters, r.opts))

	r.heading("Results")
	r.keyValues(SummaryCards(results, r.opts))

	r.heading("Assumptions")
	for _, a := range assumptionsFor(results) {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+a), "", "L", false)
	}
}

func (r *pdfReport) addComparison(results *domain.CalculationResult) {
	r.heading("Scenario Comparison")
	widths := []float64{70, 50, 25, 35}
	r.tableHeader(widths, []string{"Scenario", "Time to Coast FIRE", "Age", "Monthly"})
	for i, v := range ComparisonViews(results, r.opts) {
		fill := i%2 == 1
		r.pdf.CellFormat(widths[0], 6, r.tr(v.Name), "1", 0, "L", fill, 0, "")
		r.pdf.CellFormat(widths[1], 6, r.tr(v.YearsToCoast), "1", 0, "L", fill, 0, "")
		r.pdf.CellFormat(widths[2], 6, v.AgeAtCoast, "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[3], 6, r.tr(v.Monthly), "1", 1, "R", fill, 0, "")
	}

	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		r.pdf.Ln(3)
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr(fmt.Sprintf("Fastest scenario: %s (%s at %s/month)",
			rec.ScenarioName, FormatYears(rec.YearsToCoast), FormatCurrency(rec.MonthlyContribution, r.opts))), "", "L", false)
		r.pdf.SetFont("Arial", "", 10)
	}
}

func (r *pdfReport) addTrajectory(traj domain.Trajectory) {
	r.pdf.AddPage()
	r.heading("Portfolio Trajectory")
	widths := []float64{20, 53, 53, 54}
	r.tableHeader(widths, []string{"Age", traj.SavingsPhase.Label, traj.CoastingPhase.Label, traj.TraditionalPath.Label})
	for i := 0; i < traj.Len(); i++ {
		fill := i%2 == 1
		r.pdf.CellFormat(widths[0], 5, FormatAge(traj.TraditionalPath.Points[i].Age), "1", 0, "C", fill, 0, "")
		r.pdf.CellFormat(widths[1], 5, r.tr(balanceCell(traj.SavingsPhase.Points[i].Balance, r.opts)), "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[2], 5, r.tr(balanceCell(traj.CoastingPhase.Points[i].Balance, r.opts)), "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[3], 5, r.tr(balanceCell(traj.TraditionalPath.Points[i].Balance, r.opts)), "1", 1, "R", fill, 0, "")
	}
	r.pdf.Ln(3)
	r.pdf.CellFormat(pdfContentWidth, 6, r.tr(fmt.Sprintf("Coast FIRE Number: %s    FIRE Number at Retirement: %s",
		FormatCurrency(traj.CoastFIRENumber, r.opts), FormatCurrency(traj.FutureFIRENumber, r.opts))), "", 1, "L", false, 0, "")
}
