package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/namecleaner/internal/clean"
	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/tabular"
)

func sampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample_companies.csv")
	require.NoError(t, tabular.WriteCSVFile(path, model.SampleTable(model.DefaultColumn)))
	return path
}

func TestWritePlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePlan(&buf, sampleCSV(t), model.DefaultColumn, 2))

	out := buf.String()
	assert.Contains(t, out, "Format:     csv")
	assert.Contains(t, out, "Total rows: 10")
	assert.Contains(t, out, "Rows changed: 10 of 10")
	assert.Contains(t, out, "First 2 rows:")
	assert.Contains(t, out, `"Apple Inc." → "Apple"`)
	assert.Contains(t, out, `"Microsoft Corporation" → "Microsoft"`)
	assert.NotContains(t, out, "Amazon.com")
	assert.True(t, strings.HasSuffix(out, "Column validation: OK\n"))
}

func TestWritePlan_SuffixDistribution(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePlan(&buf, sampleCSV(t), model.DefaultColumn, 0))

	out := buf.String()
	assert.Regexp(t, `Inc\s+6\n`, out)
	assert.Regexp(t, `Co\s+1\n`, out)
	assert.Regexp(t, `Ltd\s+1\n`, out)
	assert.Regexp(t, `Corporation\s+2\n`, out)
	assert.Regexp(t, `\(none\)\s+0\n`, out)
	assert.NotContains(t, out, "First")
}

func TestWritePlan_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := writePlan(&buf, sampleCSV(t), "vendor", 5)
	require.Error(t, err)
	var missing *tabular.MissingColumnError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, exitcode.ValidationError, cleanExitCode(err))

	err = writePlan(&buf, filepath.Join(t.TempDir(), "nope.csv"), model.DefaultColumn, 5)
	require.Error(t, err)
	assert.Equal(t, exitcode.LoadError, cleanExitCode(err))
	assert.Empty(t, buf.String())
}

func TestCleanExitCode(t *testing.T) {
	assert.Equal(t, exitcode.LoadError, cleanExitCode(&clean.PipelineError{Phase: clean.PhaseLoad, Err: os.ErrNotExist}))
	assert.Equal(t, exitcode.ValidationError, cleanExitCode(&clean.PipelineError{Phase: clean.PhaseValidate, Err: os.ErrInvalid}))
	assert.Equal(t, exitcode.WriteError, cleanExitCode(&clean.PipelineError{Phase: clean.PhaseWrite, Err: os.ErrPermission}))
}

func TestNormalizeNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, normalizeNames(&buf, nil, []string{"Apple Inc.", "Samsung Electronics Co., Ltd."}))
	assert.Equal(t, "Apple\nSamsung Electronics\n", buf.String())

	buf.Reset()
	require.NoError(t, normalizeNames(&buf, strings.NewReader("Tesla, Inc.\nNetflix, Co.\n"), nil))
	assert.Equal(t, "Tesla\nNetflix\n", buf.String())
}

func TestConfigFileLosesToFlags(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "cleannames.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("column: vendor\nlog_level: warn\n"), 0644))
	t.Cleanup(func() { configPath = "" })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs([]string{
		"--config", cfgFile,
		"plan", "--in", sampleCSV(t), "--column", model.DefaultColumn, "--sample", "1",
	})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, model.DefaultColumn, cfg.Column)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Contains(t, buf.String(), `"Apple Inc." → "Apple"`)
}

func TestDemo(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, demo(context.Background(), &buf, zerolog.Nop(), dir))

	out := filepath.Join(dir, demoOutput)
	assert.Equal(t, "Processed 10 companies and saved to "+out+"\n", buf.String())

	got, err := tabular.ReadCSVFile(out)
	require.NoError(t, err)
	cleaned, ok := got.Column("cleaned_company_name")
	require.True(t, ok)
	assert.Equal(t, "Samsung Electronics", cleaned[9])
}

func TestDemo_ExitCodeFollowsPhase(t *testing.T) {
	// An unwritable output is a write failure.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, demoOutput), 0755))
	var buf bytes.Buffer
	err := demo(context.Background(), &buf, zerolog.Nop(), dir)
	require.Error(t, err)
	assert.Equal(t, exitcode.WriteError, cleanExitCode(err))
	assert.True(t, strings.HasPrefix(buf.String(), "Error processing file: could not write output:"), buf.String())

	// A cancelled run stops in the load phase, not the write phase.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf.Reset()
	err = demo(ctx, &buf, zerolog.Nop(), t.TempDir())
	require.Error(t, err)
	assert.Equal(t, clean.PhaseLoad, clean.Phase(err))
	assert.Equal(t, exitcode.LoadError, cleanExitCode(err))
}
