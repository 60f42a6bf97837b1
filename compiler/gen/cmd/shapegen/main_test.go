package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const model = "../../../load/testdata/weather.json"

func TestRun(t *testing.T) {
	dir := t.TempDir()
	app := newApp(zaptest.NewLogger(t))
	err := app.Run([]string{"shapegen",
		"--model", model,
		"--package", "example.com/weather",
		"--target", dir,
		"--workers", "2",
	})
	require.NoError(t, err)
	for _, name := range []string{
		"operations.go",
		"model/forecast.go",
		"model/mood.go",
		"transform/get_forecast_operation_serializer.go",
		"transform/get_forecast_operation_deserializer.go",
		"transform/not_found_error_deserializer.go",
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(name)))
	}
	content, err := os.ReadFile(filepath.Join(dir, "operations.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package weather")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "shapegen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`package: example.com/other
target: `+dir+`
header: Code owned by the weather team.
timestampFormat: date-time
`), 0o644))
	app := newApp(zaptest.NewLogger(t))
	// The package flag wins over the file.
	err := app.Run([]string{"shapegen", "--model", model, "--config", cfg, "--package", "example.com/weather"})
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, "model", "forecast.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Code owned by the weather team.")
	assert.Contains(t, string(content), "package model")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "missing model flag",
			args: []string{"--package", "example.com/weather"},
			err:  `Required flag "model" not set`,
		},
		{
			name: "missing package",
			args: []string{"--model", model},
			err:  "package cannot be empty",
		},
		{
			name: "missing model file",
			args: []string{"--model", "testdata/none.json", "--package", "example.com/weather"},
			err:  "read model",
		},
		{
			name: "missing config file",
			args: []string{"--model", model, "--config", "testdata/none.yaml"},
			err:  "read config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(zaptest.NewLogger(t))
			app.Writer, app.ErrWriter = io.Discard, io.Discard
			err := app.Run(append([]string{"shapegen", "--target", t.TempDir()}, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}
