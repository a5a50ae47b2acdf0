package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full text report: inputs, targets,
// scenario comparison, yearly trajectory and assumptions.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.CalculationResult, opts FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "COAST FIRE PROJECTION REPORT")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INPUTS:")
	fmt.Fprintln(&buf, "-------")
	for _, in := range InputViews(results.Parameters, opts) {
		fmt.Fprintf(&buf, "  %-26s %s\n", in.Label+":", in.Value)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RESULTS:")
	fmt.Fprintln(&buf, "--------")
	for _, card := range SummaryCards(results, opts) {
		fmt.Fprintf(&buf, "  %-26s %s\n", card.Label+":", card.Value)
	}
	if results.CoastProjection.ReachedWithinCap {
		fmt.Fprintf(&buf, "  %-26s %s\n", "Coast FIRE Age:", FormatAge(results.CoastAge))
		fmt.Fprintf(&buf, "  %-26s %d\n", "Coast FIRE Year:", CoastYear(results.CoastProjection, opts))
	}
	fmt.Fprintln(&buf)

	t := results.Targets
	fmt.Fprintln(&buf, "TARGETS:")
	fmt.Fprintln(&buf, "--------")
	fmt.Fprintf(&buf, "  Years to Retirement:       %s\n", fixed2(t.YearsToRetirement))
	fmt.Fprintf(&buf, "  Real Return Rate:          %s\n", FormatPercentage(t.RealReturnRate))
	fmt.Fprintf(&buf, "  Expenses at Retirement:    %s\n", FormatCurrency(t.FutureExpenses, opts))
	fmt.Fprintf(&buf, "  FIRE Number at Retirement: %s\n", FormatCurrency(t.FutureFIRENumber, opts))
	fmt.Fprintln(&buf)

	writeComparison(&buf, results, opts)
	writeTrajectory(&buf, results.Trajectory, opts)

	fmt.Fprintln(&buf, "ASSUMPTIONS:")
	fmt.Fprintln(&buf, "------------")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}
	fmt.Fprintln(&buf)

	// Recommendation section using AnalyzeScenarios
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Fastest scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Time to Coast FIRE: %s at %s/month\n", FormatYears(rec.YearsToCoast), FormatCurrency(rec.MonthlyContribution, opts))
		if rec.YearsSaved > 0 {
			fmt.Fprintf(&buf, "Saves %s versus the current plan for %s/month more\n", FormatYears(rec.YearsSaved), FormatCurrency(rec.ExtraMonthly, opts))
		}
	}

	return buf.Bytes(), nil
}

func writeComparison(buf *bytes.Buffer, results *domain.CalculationResult, opts FormatOptions) {
	fmt.Fprintln(buf, "SCENARIO COMPARISON:")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	fmt.Fprintf(buf, "%-32s %-22s %8s %15s\n", "SCENARIO", "TIME TO COAST FIRE", "AGE", "MONTHLY")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	for _, v := range ComparisonViews(results, opts) {
		fmt.Fprintf(buf, "%-32s %-22s %8s %15s\n", v.Name, v.YearsToCoast, v.AgeAtCoast, v.Monthly)
	}
	fmt.Fprintln(buf)
}

func writeTrajectory(buf *bytes.Buffer, traj domain.Trajectory, opts FormatOptions) {
	fmt.Fprintln(buf, "PORTFOLIO TRAJECTORY:")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	fmt.Fprintf(buf, "%6s %22s %22s %22s\n", "AGE", "SAVINGS PHASE", "COASTING PHASE", "TRADITIONAL PATH")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	for i := 0; i < traj.Len(); i++ {
		fmt.Fprintf(buf, "%6s %22s %22s %22s\n",
			FormatAge(traj.TraditionalPath.Points[i].Age),
			balanceCell(traj.SavingsPhase.Points[i].Balance, opts),
			balanceCell(traj.CoastingPhase.Points[i].Balance, opts),
			balanceCell(traj.TraditionalPath.Points[i].Balance, opts),
		)
	}
	fmt.Fprintf(buf, "Coast FIRE Number: %s   FIRE Number at Retirement: %s\n",
		FormatCurrency(traj.CoastFIRENumber, opts), FormatCurrency(traj.FutureFIRENumber, opts))
	fmt.Fprintln(buf)
}

func balanceCell(v *float64, opts FormatOptions) string {
	if v == nil {
		return "-"
	}
	return FormatCurrency(*v, opts)
}
