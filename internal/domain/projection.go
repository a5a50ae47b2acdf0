package domain

// TargetFigures are the retirement targets derived from a ParameterSet.
type TargetFigures struct {
	YearsToRetirement     float64 `json:"years_to_retirement"`
	RealReturnRate        float64 `json:"real_return_rate"`
	FutureExpenses        float64 `json:"future_expenses"`
	FutureFIRENumber      float64 `json:"future_fire_number"`
	TraditionalFIRENumber float64 `json:"traditional_fire_number"`
	CoastFIRENumber       float64 `json:"coast_fire_number"`
}

// ProjectionResult is the outcome of a month-by-month projection toward a target.
// ReachedWithinCap is false when the projection ran out of months; in that case
// ElapsedMonths holds the cap, not a time to target.
type ProjectionResult struct {
	ElapsedMonths    int     `json:"elapsed_months"`
	ReachedWithinCap bool    `json:"reached_within_cap"`
	Balance          float64 `json:"balance"`
	Target           float64 `json:"target"` // final target, after any inflation
}

// Years returns the elapsed time in fractional years.
func (pr ProjectionResult) Years() float64 {
	return float64(pr.ElapsedMonths) / 12
}

// ComparisonRow is one line of the contribution scenario comparison.
type ComparisonRow struct {
	Name                string           `json:"name"`
	MonthlyContribution float64          `json:"monthly_contribution"`
	Projection          ProjectionResult `json:"projection"`
	YearsToCoast        float64          `json:"years_to_coast"`
	AgeAtCoast          float64          `json:"age_at_coast"`
}

// TrajectoryPoint is a single yearly sample. Balance is nil when the series
// has no value for that year.
type TrajectoryPoint struct {
	Age     float64  `json:"age"`
	Balance *float64 `json:"balance"`
}

// Series is a labelled sequence of trajectory points.
type Series struct {
	Label  string            `json:"label"`
	Points []TrajectoryPoint `json:"points"`
}

// Values returns the balances of the series, nil where absent.
func (s Series) Values() []*float64 {
	out := make([]*float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Balance
	}
	return out
}

// Trajectory holds the three charted growth paths, aligned index-for-index by year.
type Trajectory struct {
	SavingsPhase     Series  `json:"savings_phase"`
	CoastingPhase    Series  `json:"coasting_phase"`
	TraditionalPath  Series  `json:"traditional_path"`
	CoastFIRENumber  float64 `json:"coast_fire_number"`
	FutureFIRENumber float64 `json:"future_fire_number"`
}

// Ages returns the shared x-axis of the trajectory.
func (t Trajectory) Ages() []float64 {
	out := make([]float64, len(t.TraditionalPath.Points))
	for i, p := range t.TraditionalPath.Points {
		out[i] = p.Age
	}
	return out
}

// Len returns the number of yearly points per series.
func (t Trajectory) Len() int {
	return len(t.TraditionalPath.Points)
}

// CalculationResult bundles everything computed for one ParameterSet.
type CalculationResult struct {
	Parameters            ParameterSet     `json:"parameters"`
	Targets               TargetFigures    `json:"targets"`
	CoastProjection       ProjectionResult `json:"coast_projection"`
	TraditionalProjection ProjectionResult `json:"traditional_projection"`
	YearsToCoast          float64          `json:"years_to_coast"`
	YearsToTraditional    float64          `json:"years_to_traditional"`
	CoastAge              float64          `json:"coast_age"`
	TotalContributions    float64          `json:"total_contributions"`
	InvestmentGrowth      float64          `json:"investment_growth"`
	Comparison            []ComparisonRow  `json:"comparison"`
	Trajectory            Trajectory       `json:"trajectory"`
	Assumptions           []string         `json:"assumptions"`
}
