package calculation

import (
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

// Age and rate bounds enforced before any projection runs.
const (
	MinCurrentAge         = 18
	MaxCurrentAge         = 100
	MaxReturnRate         = 0.30
	MaxSafeWithdrawalRate = 0.10
)

// Violation describes one failed validation rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every rule a ParameterSet breaks, in rule order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("invalid parameters: %s", strings.Join(msgs, "; "))
}

// Violations evaluates all rules against p and returns the ones that fail.
// An empty result means p is safe to hand to the calculators.
func Violations(p domain.ParameterSet) []Violation {
	var out []Violation
	add := func(field, msg string) {
		out = append(out, Violation{Field: field, Message: msg})
	}

	// The range rules below only hold for finite values.
	for _, f := range []struct {
		field, label string
		value        float64
	}{
		{"current_age", "Current age", p.CurrentAge},
		{"retirement_age", "Retirement age", p.RetirementAge},
		{"current_savings", "Current savings", p.CurrentSavings},
		{"monthly_contribution", "Monthly contribution", p.MonthlyContribution},
		{"annual_expenses", "Annual expenses", p.AnnualExpenses},
		{"return_rate", "Investment return", p.ReturnRate},
		{"inflation_rate", "Inflation rate", p.InflationRate},
		{"safe_withdrawal_rate", "Safe withdrawal rate", p.SafeWithdrawalRate},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			add(f.field, f.label+" must be a finite number")
		}
	}
	if len(out) > 0 {
		return out
	}

	if p.CurrentAge >= p.RetirementAge {
		add("retirement_age", "Retirement age must be greater than current age")
	}
	if p.CurrentAge < MinCurrentAge || p.CurrentAge > MaxCurrentAge {
		add("current_age", fmt.Sprintf("Current age must be between %d and %d", MinCurrentAge, MaxCurrentAge))
	}
	if p.AnnualExpenses <= 0 {
		add("annual_expenses", "Annual expenses must be greater than 0")
	}
	if p.ReturnRate <= 0 || p.ReturnRate > MaxReturnRate {
		add("return_rate", "Investment return should be between 0% and 30%")
	}
	if p.SafeWithdrawalRate <= 0 || p.SafeWithdrawalRate > MaxSafeWithdrawalRate {
		add("safe_withdrawal_rate", "Safe withdrawal rate should be between 0% and 10%")
	}
	if p.CurrentSavings < 0 {
		add("current_savings", "Current savings cannot be negative")
	}
	if p.MonthlyContribution < 0 {
		add("monthly_contribution", "Monthly contribution cannot be negative")
	}
	// Both growth factors are raised to fractional powers.
	if 1+p.InflationRate <= 0 || 1+p.RealReturnRate() <= 0 {
		add("inflation_rate", "Inflation rate must stay above -100% and below 100% plus the investment return")
	}

	return out
}

// ValidateParameters returns a *ValidationError listing every violation, or nil.
func ValidateParameters(p domain.ParameterSet) error {
	if v := Violations(p); len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}
