package calculation

import (
	"fmt"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/pkg/dateutil"
	"github.com/rpgo/coastfire-calculator/pkg/decimal"
)

// CalculationEngine orchestrates a complete Coast FIRE calculation
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate validates p and runs every projection for it. A nil or empty
// overrides list compares the default scenarios. Validation failures are
// returned as *ValidationError.
func (ce *CalculationEngine) Calculate(p domain.ParameterSet, overrides []domain.ContributionOverride) (*domain.CalculationResult, error) {
	if err := ValidateParameters(p); err != nil {
		ce.Logger.Warnf("rejected parameters: %v", err)
		return nil, err
	}

	targets := ComputeTargets(p)
	ce.Logger.Debugf("targets: years=%.2f real=%.4f traditional=%.2f future=%.2f coast=%.2f",
		targets.YearsToRetirement, targets.RealReturnRate, targets.TraditionalFIRENumber,
		targets.FutureFIRENumber, targets.CoastFIRENumber)

	coast := ProjectToTarget(p.CurrentSavings, p.MonthlyContribution, p.ReturnRate, targets.CoastFIRENumber, ProjectionOptions{})
	traditional := ProjectToTarget(p.CurrentSavings, p.MonthlyContribution, p.ReturnRate, targets.TraditionalFIRENumber, ProjectionOptions{
		InflatingTarget:     true,
		TargetInflationRate: p.InflationRate,
	})
	ce.logProjection("coast", coast)
	ce.logProjection("traditional", traditional)

	if len(overrides) == 0 {
		overrides = DefaultOverrides()
	}
	comparison := BuildComparison(p, overrides)
	trajectory := BuildTrajectory(p, targets, dateutil.CeilYears(coast.ElapsedMonths))

	yearsToCoast := coast.Years()
	annual := decimal.NewMoney(p.MonthlyContribution).Annual()
	contributed := annual.Mul(decimal.NewMoney(yearsToCoast).Decimal)
	principal := decimal.NewMoney(p.CurrentSavings).Add(decimal.NewMoneyFromDecimal(contributed))
	totalContributions := contributed.InexactFloat64()

	return &domain.CalculationResult{
		Parameters:            p,
		Targets:               targets,
		CoastProjection:       coast,
		TraditionalProjection: traditional,
		YearsToCoast:          yearsToCoast,
		YearsToTraditional:    traditional.Years(),
		CoastAge:              dateutil.AgeAfter(p.CurrentAge, coast.ElapsedMonths),
		TotalContributions:    totalContributions,
		InvestmentGrowth:      decimal.NewMoney(targets.CoastFIRENumber).Sub(principal).Float(),
		Comparison:            comparison,
		Trajectory:            trajectory,
		Assumptions:           p.GenerateAssumptions(),
	}, nil
}

// CalculateConfiguration runs Calculate for a loaded configuration.
func (ce *CalculationEngine) CalculateConfiguration(cfg *domain.Configuration) (*domain.CalculationResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	return ce.Calculate(cfg.Parameters, cfg.Scenarios)
}

func (ce *CalculationEngine) logProjection(name string, pr domain.ProjectionResult) {
	if !pr.ReachedWithinCap {
		ce.Logger.Warnf("%s target %.2f not reached within %d months (balance %.2f)", name, pr.Target, MaxProjectionMonths, pr.Balance)
		return
	}
	ce.Logger.Debugf("%s target %.2f reached after %d months (balance %.2f)", name, pr.Target, pr.ElapsedMonths, pr.Balance)
}
