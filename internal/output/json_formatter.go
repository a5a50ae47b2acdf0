package output

import (
	json "github.com/goccy/go-json"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// JSONFormatter serializes the calculation as pretty-printed JSON, alongside
// the display strings the other formatters show.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

// JSONReport is the document produced by JSONFormatter.
type JSONReport struct {
	Currency   string                    `json:"currency"`
	Summary    []SummaryCard             `json:"summary"`
	Comparison []ComparisonView          `json:"comparison"`
	Result     *domain.CalculationResult `json:"result"`
}

// NewJSONReport assembles the JSON document for results.
func NewJSONReport(results *domain.CalculationResult, opts FormatOptions) JSONReport {
	opts = opts.withDefaults()
	return JSONReport{
		Currency:   opts.Currency,
		Summary:    SummaryCards(results, opts),
		Comparison: ComparisonViews(results, opts),
		Result:     results,
	}
}

func (j JSONFormatter) Format(results *domain.CalculationResult, opts FormatOptions) ([]byte, error) {
	return json.MarshalIndent(NewJSONReport(results, opts), "", "  ")
}
