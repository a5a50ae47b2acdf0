package calculation

import (
	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// DefaultOverrides returns the standard comparison: the current plan, 50% more,
// 25% less, and a fixed 500 per month.
func DefaultOverrides() []domain.ContributionOverride {
	return []domain.ContributionOverride{
		{Name: "Coast FIRE (Current Plan)", Multiplier: floatPtr(1)},
		{Name: "Aggressive Savings (+50%)", Multiplier: floatPtr(1.5)},
		{Name: "Conservative Savings (-25%)", Multiplier: floatPtr(0.75)},
		{Name: "Minimal Savings (500/mo)", Amount: floatPtr(500)},
	}
}

// BuildComparison projects each override against the non-inflating Coast FIRE
// target and returns one row per override, in input order.
func BuildComparison(p domain.ParameterSet, overrides []domain.ContributionOverride) []domain.ComparisonRow {
	targets := ComputeTargets(p)
	rows := make([]domain.ComparisonRow, 0, len(overrides))
	for _, o := range overrides {
		monthly := o.MonthlyAmount(p.MonthlyContribution)
		res := ProjectToTarget(p.CurrentSavings, monthly, p.ReturnRate, targets.CoastFIRENumber, ProjectionOptions{})
		rows = append(rows, domain.ComparisonRow{
			Name:                o.Name,
			MonthlyContribution: monthly,
			Projection:          res,
			YearsToCoast:        res.Years(),
			AgeAtCoast:          p.CurrentAge + res.Years(),
		})
	}
	return rows
}

func floatPtr(f float64) *float64 { return &f }
