package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/domain"
)

const exampleConfigPath = "../../testdata/example_config.yaml"

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfigPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Scenarios, 4)

	engine := calculation.NewCalculationEngine()
	results, err := engine.CalculateConfiguration(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 2813862.4543715264, results.Targets.FutureFIRENumber, 1e-6)
	assert.InDelta(t, 713076.2784364097, results.Targets.CoastFIRENumber, 1e-6)
	assert.InDelta(t, 112554.49817486106, results.Targets.FutureExpenses, 1e-6)
	assert.InDelta(t, 1_000_000, results.Targets.TraditionalFIRENumber, 1e-6)

	assert.Equal(t, 243, results.CoastProjection.ElapsedMonths)
	assert.True(t, results.CoastProjection.ReachedWithinCap)
	assert.Equal(t, 478, results.TraditionalProjection.ElapsedMonths)
	assert.Greater(t, results.TraditionalProjection.Target, results.Targets.TraditionalFIRENumber)

	months := make([]int, 0, len(results.Comparison))
	for _, row := range results.Comparison {
		months = append(months, row.Projection.ElapsedMonths)
	}
	assert.Equal(t, []int{243, 201, 272, 312}, months)

	assert.Equal(t, 36, results.Trajectory.Len())
}

func TestRawInputsMatchConfiguration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfigPath)
	require.NoError(t, err)

	p, currency, err := config.ParseRawInputs(config.DefaultRawInputs())
	require.NoError(t, err)
	assert.Equal(t, cfg.Currency, currency)
	assert.Equal(t, cfg.Parameters, p)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Parameters = domain.ParameterSet{}
	err := parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Retirement age must be greater than current age")
}

func TestNonConvergenceIsNotAnError(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	cfg.Parameters.CurrentSavings = 100
	cfg.Parameters.MonthlyContribution = 0
	cfg.Parameters.ReturnRate = 0.001
	cfg.Parameters.InflationRate = 0

	results, err := calculation.NewCalculationEngine().CalculateConfiguration(cfg)
	require.NoError(t, err)
	assert.False(t, results.CoastProjection.ReachedWithinCap)
	assert.Equal(t, calculation.MaxProjectionMonths, results.CoastProjection.ElapsedMonths)
}
