package output

import (
	"sort"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/decimal"
)

// Recommendation encapsulates the fastest scenario of a comparison, measured
// against the first row (the current plan).
type Recommendation struct {
	ScenarioName        string
	MonthlyContribution float64
	YearsToCoast        float64
	YearsSaved          float64
	ExtraMonthly        float64
}

// AnalyzeScenarios selects the scenario that reaches Coast FIRE soonest.
// Rows that never reach the target are ignored; ties keep input order.
func AnalyzeScenarios(results *domain.CalculationResult) Recommendation {
	if results == nil || len(results.Comparison) == 0 {
		return Recommendation{}
	}
	baseline := results.Comparison[0]

	var ranks []domain.ComparisonRow
	for _, row := range results.Comparison {
		if row.Projection.ReachedWithinCap {
			ranks = append(ranks, row)
		}
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Projection.ElapsedMonths < ranks[j].Projection.ElapsedMonths
	})
	best := ranks[0]

	rec := Recommendation{
		ScenarioName:        best.Name,
		MonthlyContribution: best.MonthlyContribution,
		YearsToCoast:        best.YearsToCoast,
		ExtraMonthly:        decimal.NewMoney(best.MonthlyContribution).Sub(decimal.NewMoney(baseline.MonthlyContribution)).Float(),
	}
	if baseline.Projection.ReachedWithinCap {
		rec.YearsSaved = baseline.YearsToCoast - best.YearsToCoast
	}
	return rec
}
