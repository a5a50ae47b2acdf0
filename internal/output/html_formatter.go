package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a Chart.js growth chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlFuncs = template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"json": toJS,
}

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(htmlTemplateSource))

// toJS embeds v as a JavaScript literal. A marshal failure aborts template
// execution.
func toJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode chart data: %w", err)
	}
	return template.JS(b), nil
}

// chartData is the dataset payload handed to Chart.js.
type chartData struct {
	Labels      []string   `json:"labels"`
	Savings     []*float64 `json:"savings"`
	Coasting    []*float64 `json:"coasting"`
	Traditional []*float64 `json:"traditional"`
}

func newChartData(traj domain.Trajectory) chartData {
	labels := make([]string, 0, traj.Len())
	for _, age := range traj.Ages() {
		labels = append(labels, FormatAge(age))
	}
	return chartData{
		Labels:      labels,
		Savings:     traj.SavingsPhase.Values(),
		Coasting:    traj.CoastingPhase.Values(),
		Traditional: traj.TraditionalPath.Values(),
	}
}

func (h HTMLFormatter) Format(results *domain.CalculationResult, opts FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	opts = opts.withDefaults()
	data := struct {
		Result         *domain.CalculationResult
		Options        FormatOptions
		Symbol         string
		Inputs         []SummaryCard
		Cards          []SummaryCard
		Comparison     []ComparisonView
		Recommendation Recommendation
		Assumptions    []string
		Chart          chartData
		Labels         []string
	}{
		Result:         results,
		Options:        opts,
		Symbol:         opts.Symbol(),
		Inputs:         InputViews(results.Parameters, opts),
		Cards:          SummaryCards(results, opts),
		Comparison:     ComparisonViews(results, opts),
		Recommendation: AnalyzeScenarios(results),
		Assumptions:    assumptionsFor(results),
		Chart:          newChartData(results.Trajectory),
		Labels: []string{
			results.Trajectory.SavingsPhase.Label,
			results.Trajectory.CoastingPhase.Label,
			results.Trajectory.TraditionalPath.Label,
		},
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
