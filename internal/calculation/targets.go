package calculation

import (
	"math"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// ComputeTargets derives the FIRE targets for a validated ParameterSet.
//
// The traditional number is today's expenses over the withdrawal rate. The
// future number inflates expenses to the retirement age first, and the coast
// number discounts the future number back to today at the real return rate.
func ComputeTargets(p domain.ParameterSet) domain.TargetFigures {
	years := p.YearsToRetirement()
	realRate := p.RealReturnRate()

	futureExpenses := p.AnnualExpenses * math.Pow(1+p.InflationRate, years)
	futureFIRE := futureExpenses / p.SafeWithdrawalRate

	return domain.TargetFigures{
		YearsToRetirement:     years,
		RealReturnRate:        realRate,
		FutureExpenses:        futureExpenses,
		FutureFIRENumber:      futureFIRE,
		TraditionalFIRENumber: p.AnnualExpenses / p.SafeWithdrawalRate,
		CoastFIRENumber:       futureFIRE / math.Pow(1+realRate, years),
	}
}
