package output

import (
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/decimal"
)

// SummaryCard is one headline figure of a calculation.
type SummaryCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryCards renders the headline figures shown at the top of every report.
// Investment growth is floored at zero for display.
func SummaryCards(results *domain.CalculationResult, opts FormatOptions) []SummaryCard {
	return []SummaryCard{
		{"Coast FIRE Number", FormatCurrency(results.Targets.CoastFIRENumber, opts)},
		{"Traditional FIRE Number", FormatCurrency(results.Targets.TraditionalFIRENumber, opts)},
		{"Time to Coast FIRE", FormatProjection(results.CoastProjection)},
		{"Time to Traditional FIRE", FormatProjection(results.TraditionalProjection)},
		{"Total Contributions", FormatCurrency(results.TotalContributions, opts)},
		{"Investment Growth", FormatCurrency(decimal.Max(decimal.NewMoney(results.InvestmentGrowth), decimal.Zero()).Float(), opts)},
	}
}

// ComparisonView is a display-ready comparison row.
type ComparisonView struct {
	Name         string `json:"name"`
	YearsToCoast string `json:"years_to_coast"`
	AgeAtCoast   string `json:"age_at_coast"`
	Monthly      string `json:"monthly_contribution"`
}

// ComparisonViews formats the scenario comparison rows in input order.
func ComparisonViews(results *domain.CalculationResult, opts FormatOptions) []ComparisonView {
	views := make([]ComparisonView, 0, len(results.Comparison))
	for _, row := range results.Comparison {
		age := FormatAge(row.AgeAtCoast)
		if !row.Projection.ReachedWithinCap {
			age = "-"
		}
		views = append(views, ComparisonView{
			Name:         row.Name,
			YearsToCoast: FormatProjection(row.Projection),
			AgeAtCoast:   age,
			Monthly:      FormatCurrency(row.MonthlyContribution, opts),
		})
	}
	return views
}

// InputViews lists the calculation inputs as label/value pairs.
func InputViews(p domain.ParameterSet, opts FormatOptions) []SummaryCard {
	return []SummaryCard{
		{"Current Age", FormatAge(p.CurrentAge)},
		{"Target Retirement Age", FormatAge(p.RetirementAge)},
		{"Current Savings", FormatCurrency(p.CurrentSavings, opts)},
		{"Monthly Contribution", FormatCurrency(p.MonthlyContribution, opts)},
		{"Annual Expenses (today)", FormatCurrency(p.AnnualExpenses, opts)},
		{"Expected Return", FormatPercentage(p.ReturnRate)},
		{"Inflation", FormatPercentage(p.InflationRate)},
		{"Safe Withdrawal Rate", FormatPercentage(p.SafeWithdrawalRate)},
	}
}
