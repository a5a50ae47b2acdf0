package output

import "github.com/rpgo/coastfire-calculator/internal/domain"

// DefaultAssumptions lists the modeling assumptions rendered when a result
// carries none of its own.
var DefaultAssumptions = []string{
	"Investment returns compound monthly at the annual rate's monthly equivalent",
	"Contributions are added at the end of each month",
	"Traditional FIRE target grows with inflation once per year",
	"No taxes or fees are modeled",
}

// assumptionsFor returns the result's assumptions, or DefaultAssumptions.
func assumptionsFor(results *domain.CalculationResult) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
