package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "currency: eur\n" +
		"parameters:\n" +
		"  current_age: 30\n" +
		"  retirement_age: 65\n" +
		"  current_savings: 50000\n" +
		"  monthly_contribution: 1000\n" +
		"  annual_expenses: 40000\n" +
		"  return_rate: 0.07\n" +
		"  inflation_rate: 0.03\n" +
		"  safe_withdrawal_rate: 0.04\n" +
		"scenarios:\n" +
		"  - name: \"Double\"\n" +
		"    multiplier: 2\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, "EUR", config.Currency)
	assert.Equal(t, 65.0, config.Parameters.RetirementAge)
	assert.Equal(t, 0.07, config.Parameters.ReturnRate)
	require.Len(t, config.Scenarios, 1)
	assert.Equal(t, 2.0, *config.Scenarios[0].Multiplier)
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	testConfig := "parameters:\n" +
		"  current_age: 40\n" +
		"  retirement_age: 60\n" +
		"  annual_expenses: 30000\n" +
		"  return_rate: 0.06\n" +
		"  inflation_rate: 0.02\n" +
		"  safe_withdrawal_rate: 0.035\n"

	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, config.Currency)
	assert.Equal(t, calculation.DefaultOverrides(), config.Scenarios)
}

func TestLoadFromFile_ExampleConfig(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("..", "..", "testdata", "example_config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, NewInputParser().CreateExampleConfiguration(), config)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, "parameters: [unclosed"))
	assert.Nil(t, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidParameters(t *testing.T) {
	testConfig := "parameters:\n" +
		"  current_age: 70\n" +
		"  retirement_age: 65\n" +
		"  annual_expenses: 40000\n" +
		"  return_rate: 0.07\n" +
		"  inflation_rate: 0.03\n" +
		"  safe_withdrawal_rate: 0.04\n"

	_, err := NewInputParser().LoadFromFile(writeTempConfig(t, testConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")

	var verr *calculation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "retirement_age", verr.Violations[0].Field)
}

func TestLoadFromFile_NonFiniteParameters(t *testing.T) {
	testConfig := "parameters:\n" +
		"  current_age: .nan\n" +
		"  retirement_age: 65\n" +
		"  current_savings: .inf\n" +
		"  annual_expenses: 40000\n" +
		"  return_rate: 0.07\n" +
		"  inflation_rate: 0.03\n" +
		"  safe_withdrawal_rate: 0.04\n"

	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, testConfig))
	assert.Nil(t, config)
	require.Error(t, err)

	var verr *calculation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Violations, 2)
	assert.Equal(t, "current_age", verr.Violations[0].Field)
	assert.Equal(t, "current_savings", verr.Violations[1].Field)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()
	one := 1.0
	negative := -5.0
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"valid example", func(c *domain.Configuration) {}, ""},
		{"unknown currency", func(c *domain.Configuration) { c.Currency = "XYZ" }, "unknown currency"},
		{"invalid parameters", func(c *domain.Configuration) { c.Parameters.AnnualExpenses = 0 }, "Annual expenses must be greater than 0"},
		{"missing scenario name", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Multiplier: &one}}
		}, "scenario name is required"},
		{"neither multiplier nor amount", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Name: "empty"}}
		}, "exactly one of multiplier or amount"},
		{"both multiplier and amount", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Name: "both", Multiplier: &one, Amount: &one}}
		}, "exactly one of multiplier or amount"},
		{"negative amount", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Name: "neg", Amount: &negative}}
		}, "amount cannot be negative"},
		{"negative multiplier", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Name: "neg", Multiplier: &negative}}
		}, "multiplier cannot be negative"},
		{"NaN multiplier", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Name: "nan", Multiplier: &nan}}
		}, "multiplier must be a finite number"},
		{"infinite amount", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Name: "inf", Amount: &inf}}
		}, "amount must be a finite number"},
		{"second scenario reported by index", func(c *domain.Configuration) {
			c.Scenarios = []domain.ContributionOverride{{Name: "ok", Amount: &one}, {Name: "neg", Amount: &negative}}
		}, "scenario 1 validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, parser.ValidateConfiguration(nil))
	err := parser.ValidateConfiguration(&domain.Configuration{Currency: "XYZ"})
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestParseRawInputs_Defaults(t *testing.T) {
	p, currency, err := ParseRawInputs(DefaultRawInputs())
	require.NoError(t, err)
	assert.Equal(t, "USD", currency)
	assert.Equal(t, domain.ParameterSet{
		CurrentAge:          30,
		RetirementAge:       65,
		CurrentSavings:      50000,
		MonthlyContribution: 1000,
		AnnualExpenses:      40000,
		ReturnRate:          0.07,
		InflationRate:       0.03,
		SafeWithdrawalRate:  0.04,
	}, p)

	empty, currency, err := ParseRawInputs(domain.RawInputs{})
	require.NoError(t, err)
	assert.Equal(t, "USD", currency)
	assert.Equal(t, p, empty)
}

func TestParseRawInputs_Values(t *testing.T) {
	raw := DefaultRawInputs()
	raw.Currency = "gbp"
	raw.CurrentSavings = " 12500.50 "
	raw.ReturnRate = "7.5"
	raw.InflationRate = "0"

	p, currency, err := ParseRawInputs(raw)
	require.NoError(t, err)
	assert.Equal(t, "GBP", currency)
	assert.Equal(t, 12500.5, p.CurrentSavings)
	assert.Equal(t, 0.075, p.ReturnRate)
	assert.Equal(t, 0.0, p.InflationRate)
}

func TestParseRawInputs_Errors(t *testing.T) {
	raw := DefaultRawInputs()
	raw.AnnualExpenses = "forty thousand"
	_, _, err := ParseRawInputs(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "annual_expenses")

	raw = DefaultRawInputs()
	raw.Currency = "BTC"
	_, _, err = ParseRawInputs(raw)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestRawInputsFromParameters(t *testing.T) {
	p, _, err := ParseRawInputs(DefaultRawInputs())
	require.NoError(t, err)
	assert.Equal(t, DefaultRawInputs(), RawInputsFromParameters(p, "USD"))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := parser.CreateExampleConfiguration()
	require.NoError(t, parser.SaveConfiguration(original, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
