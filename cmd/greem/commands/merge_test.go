package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/internal/testutil"
	"github.com/erraggy/greem/merger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestSetupMergeFlags(t *testing.T) {
	fs, flags := SetupMergeFlags("merge")

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Config)
		assert.Empty(t, flags.Output)
		assert.Equal(t, FormatText, flags.Format)
		assert.Zero(t, flags.Concurrency)
		assert.False(t, flags.Quiet)
		assert.False(t, flags.Verbose)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-c", "greem.yaml", "-o", "gen", "--format", "json", "-q", "a/*.graphql", "b/*.graphql"}
		require.NoError(t, fs.Parse(args))
		assert.Equal(t, "greem.yaml", flags.Config)
		assert.Equal(t, "gen", flags.Output)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.True(t, flags.Quiet)
		assert.Equal(t, 2, fs.NArg())
	})

	t.Run("check has no output flag", func(t *testing.T) {
		fs, _ := SetupMergeFlags("check")
		assert.Nil(t, fs.Lookup("o"))
		assert.NotNil(t, fs.Lookup("format"))
	})
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestRunMerge_WritesSchema(t *testing.T) {
	dir := testutil.WriteSchemaFiles(t, testutil.UserSchemaFiles)
	out := filepath.Join(dir, "gen")

	var stdout, stderr bytes.Buffer
	err := runMerge(context.Background(), "merge",
		[]string{"-o", out, filepath.Join(dir, "schema", "**", "*.graphql")},
		&stdout, &stderr)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, merger.OutputFileName))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Types: 3")
	assert.Contains(t, stderr.String(), "Object: 2")
	assert.Contains(t, stderr.String(), "Merge completed successfully")
}

func TestRunMerge_ConfigFile(t *testing.T) {
	dir := testutil.WriteSchemaFiles(t, testutil.UserSchemaFiles)
	out := filepath.Join(dir, "out")
	cfgPath := testutil.WriteTempYAML(t, map[string]any{
		"schema":           []string{filepath.Join(dir, "schema", "**", "*.graphql")},
		"output_directory": out,
	})

	var stdout, stderr bytes.Buffer
	err := runMerge(context.Background(), "merge", []string{"-c", cfgPath, "-q"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, merger.OutputFileName))
	assert.Empty(t, stderr.String())
}

func TestRunMerge_DefaultConfigFile(t *testing.T) {
	dir := testutil.WriteSchemaFiles(t, map[string]string{
		"schema/a.graphql": "type Query { a: Int }",
		"greem.yaml":       "schema:\n  - schema/*.graphql\n",
	})
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	err := runMerge(context.Background(), "merge", []string{"-q"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "__generated__", merger.OutputFileName))
}

func TestRunCheck_StructuredOutput(t *testing.T) {
	dir := testutil.WriteSchemaFiles(t, map[string]string{
		"a.graphql": "type Query { a: Int }",
		"b.graphql": "type Query {",
	})
	pattern := filepath.Join(dir, "*.graphql")

	t.Run("json", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runMerge(context.Background(), "check", []string{"--format", "json", pattern}, &stdout, &stderr)
		require.NoError(t, err)

		var summary MergeSummary
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &summary))
		assert.Len(t, summary.Files, 2)
		require.Len(t, summary.SkippedFiles, 1)
		assert.Equal(t, "b.graphql", filepath.Base(summary.SkippedFiles[0].Path))
		assert.Positive(t, summary.SkippedFiles[0].Line)
		assert.Equal(t, 1, summary.Stats.Types)
		assert.Empty(t, summary.Output)
		assert.Contains(t, stderr.String(), "skipping unparseable schema file")
	})

	t.Run("yaml", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runMerge(context.Background(), "check", []string{"--format", "yaml", "-q", pattern}, &stdout, &stderr)
		require.NoError(t, err)

		var summary map[string]any
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &summary))
		assert.Contains(t, summary, "stats")
		assert.Empty(t, stderr.String())
	})

	_, err := os.Stat(filepath.Join(dir, "__generated__"))
	assert.True(t, os.IsNotExist(err), "check must not write output")
}

func TestRunMerge_Errors(t *testing.T) {
	conflict := testutil.WriteSchemaFiles(t, map[string]string{
		"a.graphql": "scalar DateTime",
		"b.graphql": "scalar DateTime",
	})

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"conflict", []string{filepath.Join(conflict, "*.graphql")}, gqlerrors.ErrDuplicateDefinition},
		{"malformed pattern", []string{"schema/[a-"}, gqlerrors.ErrConfig},
		{"missing config file", []string{"-c", filepath.Join(conflict, "missing.yaml")}, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := runMerge(context.Background(), "check", tt.args, &stdout, &stderr)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("invalid format", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runMerge(context.Background(), "check", []string{"--format", "xml", "a.graphql"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("help is not an error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runMerge(context.Background(), "merge", []string{"--help"}, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Usage: greem merge")
	})
}

func TestOutputStructured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputStructured(&buf, map[string]int{"types": 2}, FormatJSON))
	assert.JSONEq(t, `{"types": 2}`, buf.String())

	assert.Error(t, OutputStructured(&buf, nil, FormatText))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, true, false).Debug("parsed", "path", "a.graphql")
	assert.Contains(t, buf.String(), "path=a.graphql")

	buf.Reset()
	NewLogger(&buf, false, true).Warn("skipped")
	assert.Empty(t, buf.String())
}
