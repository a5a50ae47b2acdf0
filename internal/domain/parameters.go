package domain

import (
	"fmt"
)

// ParameterSet holds the economic inputs for a Coast FIRE calculation.
// Rates are fractions (0.07 = 7%), amounts are in the display currency.
type ParameterSet struct {
	CurrentAge          float64 `yaml:"current_age" json:"current_age"`
	RetirementAge       float64 `yaml:"retirement_age" json:"retirement_age"`
	CurrentSavings      float64 `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualExpenses      float64 `yaml:"annual_expenses" json:"annual_expenses"`
	ReturnRate          float64 `yaml:"return_rate" json:"return_rate"`
	InflationRate       float64 `yaml:"inflation_rate" json:"inflation_rate"`
	SafeWithdrawalRate  float64 `yaml:"safe_withdrawal_rate" json:"safe_withdrawal_rate"`
}

// YearsToRetirement returns the horizon between the current and retirement ages.
func (p ParameterSet) YearsToRetirement() float64 {
	return p.RetirementAge - p.CurrentAge
}

// RealReturnRate returns the nominal return net of inflation. It may be negative.
func (p ParameterSet) RealReturnRate() float64 {
	return p.ReturnRate - p.InflationRate
}

// GenerateAssumptions renders the modeling assumptions shown alongside results.
func (p ParameterSet) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Investment return: %.1f%% annually, compounded monthly", p.ReturnRate*100),
		fmt.Sprintf("Inflation: %.1f%% annually", p.InflationRate*100),
		fmt.Sprintf("Real return (return minus inflation): %.1f%%", p.RealReturnRate()*100),
		fmt.Sprintf("Safe withdrawal rate: %.1f%%", p.SafeWithdrawalRate*100),
		"Contributions are added at the end of each month",
		"Traditional FIRE target grows with inflation once per year",
		"No taxes or fees are modeled",
	}
}

// ContributionOverride names an alternative monthly contribution for the
// scenario comparison. Exactly one of Multiplier or Amount should be set;
// Multiplier scales the plan's own monthly contribution.
type ContributionOverride struct {
	Name       string   `yaml:"name" json:"name"`
	Multiplier *float64 `yaml:"multiplier,omitempty" json:"multiplier,omitempty"`
	Amount     *float64 `yaml:"amount,omitempty" json:"amount,omitempty"`
}

// MonthlyAmount resolves the override against the plan's monthly contribution.
func (co ContributionOverride) MonthlyAmount(base float64) float64 {
	switch {
	case co.Amount != nil:
		return *co.Amount
	case co.Multiplier != nil:
		return base * *co.Multiplier
	default:
		return base
	}
}

// RawInputs mirrors the calculator form as typed by the user. Rates are whole
// percentages ("7" means 7%). This is the shape persisted between sessions.
type RawInputs struct {
	Currency            string `yaml:"currency" json:"currency"`
	CurrentAge          string `yaml:"current_age" json:"currentAge"`
	RetirementAge       string `yaml:"retirement_age" json:"retirementAge"`
	CurrentSavings      string `yaml:"current_savings" json:"currentSavings"`
	MonthlyContribution string `yaml:"monthly_contribution" json:"monthlyContribution"`
	AnnualExpenses      string `yaml:"annual_expenses" json:"annualExpenses"`
	ReturnRate          string `yaml:"return_rate" json:"returnRate"`
	InflationRate       string `yaml:"inflation_rate" json:"inflationRate"`
	SafeWithdrawalRate  string `yaml:"safe_withdrawal_rate" json:"safeWithdrawalRate"`
}

// Configuration is the top-level YAML document accepted by the CLI.
type Configuration struct {
	Currency   string                 `yaml:"currency" json:"currency"`
	Parameters ParameterSet           `yaml:"parameters" json:"parameters"`
	Scenarios  []ContributionOverride `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}
