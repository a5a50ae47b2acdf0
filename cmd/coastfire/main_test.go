package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/coastfire-calculator/internal/storage/memory"
	"github.com/rpgo/coastfire-calculator/internal/storage/sqlite"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalculate_DefaultConsole(t *testing.T) {
	out, _, err := run(t, "calculate")
	require.NoError(t, err)
	assert.Contains(t, out, "COAST FIRE PROJECTION REPORT")
	assert.Contains(t, out, "$713,076")
}

func TestCalculate_CurrencyOverride(t *testing.T) {
	out, _, err := run(t, "calculate", "--format", "console-lite", "--currency", "eur")
	require.NoError(t, err)
	assert.Contains(t, out, "€713,076")

	_, _, err = run(t, "calculate", "--currency", "XYZ")
	assert.Error(t, err)
}

func TestCalculate_VerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "calculate", "--format", "csv", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBUG targets:")
}

func TestCalculate_WritesReports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	out, _, err := run(t, "calculate", "--format", "all", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestCalculate_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "calculate", "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestExampleThenValidateAndCalculate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coastfire.yaml")

	out, _, err := run(t, "example", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, _, err = run(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid: 4 scenario(s), currency USD")

	out, _, err = run(t, "calculate", "--config", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"currency": "USD"`)
}

func TestValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parameters:\n  current_age: 10\n"), 0644))

	_, stderr, err := run(t, "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, stderr, "ERROR")

	_, _, err = run(t, "validate")
	assert.Error(t, err)
}

func TestServeOptions_OpenStore(t *testing.T) {
	ctx := context.Background()

	s, backend, err := serveOptions{}.openStore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "memory", backend)
	assert.IsType(t, &memory.Store{}, s)

	s, backend, err = serveOptions{dbPath: ":memory:"}.openStore(ctx)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "sqlite :memory:", backend)
	assert.IsType(t, &sqlite.Store{}, s)
}
