package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContributionOverride_MonthlyAmount(t *testing.T) {
	half := 0.5
	fixed := 250.0
	tests := []struct {
		name     string
		override ContributionOverride
		want     float64
	}{
		{"no override keeps base", ContributionOverride{Name: "plan"}, 1000},
		{"multiplier scales base", ContributionOverride{Name: "half", Multiplier: &half}, 500},
		{"amount replaces base", ContributionOverride{Name: "fixed", Amount: &fixed}, 250},
		{"amount wins over multiplier", ContributionOverride{Name: "both", Multiplier: &half, Amount: &fixed}, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.override.MonthlyAmount(1000))
		})
	}
}

func TestParameterSet_DerivedValues(t *testing.T) {
	p := ParameterSet{CurrentAge: 30, RetirementAge: 65, ReturnRate: 0.07, InflationRate: 0.03}
	assert.Equal(t, 35.0, p.YearsToRetirement())
	assert.InDelta(t, 0.04, p.RealReturnRate(), 1e-15)

	p.InflationRate = 0.09
	assert.Less(t, p.RealReturnRate(), 0.0)
}

func TestParameterSet_GenerateAssumptions(t *testing.T) {
	p := ParameterSet{ReturnRate: 0.07, InflationRate: 0.03, SafeWithdrawalRate: 0.04}
	got := p.GenerateAssumptions()
	assert.Contains(t, got, "Investment return: 7.0% annually, compounded monthly")
	assert.Contains(t, got, "Safe withdrawal rate: 4.0%")
}

func TestTrajectory_Accessors(t *testing.T) {
	v := 10.0
	traj := Trajectory{
		SavingsPhase:    Series{Points: []TrajectoryPoint{{Age: 30, Balance: &v}, {Age: 31}}},
		TraditionalPath: Series{Points: []TrajectoryPoint{{Age: 30, Balance: &v}, {Age: 31, Balance: &v}}},
	}
	assert.Equal(t, 2, traj.Len())
	assert.Equal(t, []float64{30, 31}, traj.Ages())

	values := traj.SavingsPhase.Values()
	assert.Equal(t, 10.0, *values[0])
	assert.Nil(t, values[1])
}

func TestProjectionResult_Years(t *testing.T) {
	assert.Equal(t, 20.25, ProjectionResult{ElapsedMonths: 243}.Years())
	assert.Equal(t, 0.0, ProjectionResult{}.Years())
}

func TestCurrencySymbol(t *testing.T) {
	s, ok := CurrencySymbol("EUR")
	assert.True(t, ok)
	assert.Equal(t, "€", s)

	_, ok = CurrencySymbol("XYZ")
	assert.False(t, ok)

	codes := SupportedCurrencies()
	assert.Len(t, codes, 7)
	assert.Equal(t, "AUD", codes[0])
	assert.Contains(t, codes, DefaultCurrency)
}
