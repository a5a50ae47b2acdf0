package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTargets_Example(t *testing.T) {
	p := exampleParameters()
	got := ComputeTargets(p)

	// Same arithmetic chain, evaluated at run time like the calculator does.
	expenses, inflation, ret, swr := 40000.0, 0.03, 0.07, 0.04
	years := 65.0 - 30.0
	future := expenses * math.Pow(1+inflation, years) / swr
	coast := future / math.Pow(1+(ret-inflation), years)

	assert.Equal(t, 35.0, got.YearsToRetirement)
	assert.InDelta(t, 0.04, got.RealReturnRate, 1e-12)
	assert.InDelta(t, 1_000_000, got.TraditionalFIRENumber, 1e-6)
	assert.Equal(t, future, got.FutureFIRENumber)
	assert.Equal(t, coast, got.CoastFIRENumber)

	// Reference values.
	assert.InDelta(t, 2813862.4543715264, got.FutureFIRENumber, 1e-4)
	assert.InDelta(t, 713076.2784364097, got.CoastFIRENumber, 1e-4)
	assert.InDelta(t, 112554.49817486106, got.FutureExpenses, 1e-6)
}

func TestComputeTargets_Idempotent(t *testing.T) {
	p := exampleParameters()
	assert.Equal(t, ComputeTargets(p), ComputeTargets(p))
}

func TestComputeTargets_CoastBelowFutureWithPositiveRealReturn(t *testing.T) {
	tests := []struct {
		name      string
		ret, infl float64
		years     float64
	}{
		{"default plan", 0.07, 0.03, 35},
		{"short horizon", 0.05, 0.01, 1},
		{"fractional horizon", 0.10, 0.02, 12.5},
		{"deflation", 0.04, -0.01, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := exampleParameters()
			p.ReturnRate = tt.ret
			p.InflationRate = tt.infl
			p.RetirementAge = p.CurrentAge + tt.years

			got := ComputeTargets(p)
			assert.Greater(t, got.CoastFIRENumber, 0.0)
			assert.LessOrEqual(t, got.CoastFIRENumber, got.FutureFIRENumber)
		})
	}
}

func TestComputeTargets_NegativeRealReturn(t *testing.T) {
	p := exampleParameters()
	p.ReturnRate = 0.02
	p.InflationRate = 0.05

	got := ComputeTargets(p)
	assert.Less(t, got.RealReturnRate, 0.0)
	assert.False(t, math.IsNaN(got.CoastFIRENumber))
	assert.Greater(t, got.CoastFIRENumber, got.FutureFIRENumber)
}
