package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/internal/output"
)

func TestGenerateReport_WritesEveryFormat(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	res, err := calculation.NewCalculationEngine().CalculateConfiguration(cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := output.GenerateReport(res, "all", output.FormatOptions{Currency: cfg.Currency}, dir)
	require.NoError(t, err)
	require.Len(t, files, len(output.AvailableFormatterNames()))

	seen := map[string]bool{}
	for _, f := range files {
		assert.Equal(t, dir, filepath.Dir(f))
		assert.False(t, seen[f], "duplicate file %s", f)
		seen[f] = true

		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestGenerateReport_SingleFormat(t *testing.T) {
	res, err := calculation.NewCalculationEngine().CalculateConfiguration(config.NewInputParser().CreateExampleConfiguration())
	require.NoError(t, err)

	files, err := output.GenerateReport(res, "csv-summary", output.DefaultFormatOptions(), t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasPrefix(filepath.Base(files[0]), "coastfire_csv_"))
	assert.True(t, strings.HasSuffix(files[0], ".csv"))
}

func TestGenerateReport_Errors(t *testing.T) {
	_, err := output.GenerateReport(nil, "json", output.DefaultFormatOptions(), t.TempDir())
	assert.Error(t, err)

	res, err := calculation.NewCalculationEngine().CalculateConfiguration(config.NewInputParser().CreateExampleConfiguration())
	require.NoError(t, err)
	_, err = output.GenerateReport(res, "definitely-not-a-format", output.DefaultFormatOptions(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}
