package calculation

import (
	"math"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/dateutil"
)

// MaxProjectionMonths caps every projection at 100 years.
const MaxProjectionMonths = 1200

// ProjectionOptions controls whether the target grows while projecting.
type ProjectionOptions struct {
	InflatingTarget     bool
	TargetInflationRate float64
}

// MonthlyRate converts an annual return into the equivalent monthly
// compounding rate.
func MonthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/dateutil.MonthsPerYear) - 1
}

// ProjectToTarget simulates monthly growth plus contribution until the balance
// reaches target or MaxProjectionMonths elapse.
//
// With an inflating target, the target grows by TargetInflationRate after every
// twelfth month, checked before that month is counted. A balance that can never
// grow still runs to the cap and comes back with ReachedWithinCap unset.
func ProjectToTarget(balance, contribution, annualRate, target float64, opts ProjectionOptions) domain.ProjectionResult {
	if balance >= target {
		return domain.ProjectionResult{ReachedWithinCap: true, Balance: balance, Target: target}
	}

	growth := 1 + MonthlyRate(annualRate)
	months := 0
	for balance < target && months < MaxProjectionMonths {
		balance = balance*growth + contribution
		if opts.InflatingTarget && months > 0 && months%dateutil.MonthsPerYear == 0 {
			target *= 1 + opts.TargetInflationRate
		}
		months++
	}

	return domain.ProjectionResult{
		ElapsedMonths:    months,
		ReachedWithinCap: balance >= target,
		Balance:          balance,
		Target:           target,
	}
}
