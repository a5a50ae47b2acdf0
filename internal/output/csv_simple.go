package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// CSVSummarizer implements the comparison CSV output (one row per scenario, in input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.CalculationResult, _ FormatOptions) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "MonthlyContribution", "MonthsToCoast", "YearsToCoast", "AgeAtCoast", "ReachedWithinCap", "FinalBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range results.Comparison {
		record := []string{
			row.Name,
			fixed2(row.MonthlyContribution),
			intToString(row.Projection.ElapsedMonths),
			fixed2(row.YearsToCoast),
			fixed2(row.AgeAtCoast),
			boolToString(row.Projection.ReachedWithinCap),
			fixed2(row.Projection.Balance),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
