package calculation

import (
	"math"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/dateutil"
)

// MaxTrajectoryYears bounds the charted horizon.
const MaxTrajectoryYears = 50

// Series labels used by every renderer.
const (
	SavingsPhaseLabel    = "Savings Phase (Contributing)"
	CoastingPhaseLabel   = "Coasting Phase (No Contributions)"
	TraditionalPathLabel = "Traditional FIRE Path"
)

// BuildTrajectory produces yearly balances from the current age up to
// retirement (at most MaxTrajectoryYears).
//
// Contributions continue through year coastYears and stop afterwards; those
// years land on the savings series and the rest on the coasting series. The
// traditional path keeps contributing for the whole horizon.
func BuildTrajectory(p domain.ParameterSet, targets domain.TargetFigures, coastYears int) domain.Trajectory {
	totalYears := math.Min(targets.YearsToRetirement, MaxTrajectoryYears)
	growth := 1 + MonthlyRate(p.ReturnRate)

	n := 0
	if totalYears >= 0 {
		n = int(math.Floor(totalYears)) + 1
	}
	savings := make([]domain.TrajectoryPoint, 0, n)
	coasting := make([]domain.TrajectoryPoint, 0, n)
	traditional := make([]domain.TrajectoryPoint, 0, n)

	balance := p.CurrentSavings
	traditionalBalance := p.CurrentSavings

	for year := 0; float64(year) <= totalYears; year++ {
		age := p.CurrentAge + float64(year)

		if year == 0 {
			savings = append(savings, point(age, p.CurrentSavings))
			coasting = append(coasting, domain.TrajectoryPoint{Age: age})
			traditional = append(traditional, point(age, p.CurrentSavings))
			continue
		}

		contributing := year <= coastYears
		for month := 0; month < dateutil.MonthsPerYear; month++ {
			if contributing {
				balance = balance*growth + p.MonthlyContribution
			} else {
				balance = balance * growth
			}
			traditionalBalance = traditionalBalance*growth + p.MonthlyContribution
		}

		if contributing {
			savings = append(savings, point(age, balance))
			coasting = append(coasting, domain.TrajectoryPoint{Age: age})
		} else {
			savings = append(savings, domain.TrajectoryPoint{Age: age})
			coasting = append(coasting, point(age, balance))
		}
		traditional = append(traditional, point(age, traditionalBalance))
	}

	return domain.Trajectory{
		SavingsPhase:     domain.Series{Label: SavingsPhaseLabel, Points: savings},
		CoastingPhase:    domain.Series{Label: CoastingPhaseLabel, Points: coasting},
		TraditionalPath:  domain.Series{Label: TraditionalPathLabel, Points: traditional},
		CoastFIRENumber:  targets.CoastFIRENumber,
		FutureFIRENumber: targets.FutureFIRENumber,
	}
}

func point(age, balance float64) domain.TrajectoryPoint {
	b := balance
	return domain.TrajectoryPoint{Age: age, Balance: &b}
}
