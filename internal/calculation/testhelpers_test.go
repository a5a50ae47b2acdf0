package calculation

import "github.com/rpgo/coastfire-calculator/internal/domain"

// exampleParameters is the calculator's default plan: age 30 to 65, 50k saved,
// 1k/month, 40k expenses, 7% return, 3% inflation, 4% withdrawal.
func exampleParameters() domain.ParameterSet {
	return domain.ParameterSet{
		CurrentAge:          30,
		RetirementAge:       65,
		CurrentSavings:      50000,
		MonthlyContribution: 1000,
		AnnualExpenses:      40000,
		ReturnRate:          0.07,
		InflationRate:       0.03,
		SafeWithdrawalRate:  0.04,
	}
}
