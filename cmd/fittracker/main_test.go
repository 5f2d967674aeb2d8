package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fittracker/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FITTRACKER_LOG_LEVEL", "error")
	t.Setenv("FITTRACKER_ON_ERROR", "")
	t.Setenv("FITTRACKER_METRICS_TEXTFILE", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	oldLogger := observability.Logger
	t.Cleanup(func() { observability.Logger = oldLogger })
}

func TestRunPrintsBuiltInReports(t *testing.T) {
	quietEnv(t)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, strings.Join([]string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}, "\n")+"\n", stdout.String())
}

func TestRunWritesMetricsTextfile(t *testing.T) {
	quietEnv(t)
	path := filepath.Join(t.TempDir(), "fittracker.prom")
	t.Setenv("FITTRACKER_METRICS_TEXTFILE", path)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), &stdout, &stderr), stderr.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fittracker_workouts_total{kind="Swimming"}`)
	assert.Contains(t, string(data), `fittracker_workouts_total{kind="SportsWalking"}`)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	quietEnv(t)
	t.Setenv("FITTRACKER_ON_ERROR", "retry")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "FITTRACKER_ON_ERROR")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FITTRACKER_TEST_DOTENV=from-file\n"), 0o644))

	t.Setenv("FITTRACKER_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("FITTRACKER_TEST_DOTENV"))

	require.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("FITTRACKER_TEST_DOTENV"))
}

func TestLoadDotEnvKeepsExistingEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FITTRACKER_TEST_DOTENV=from-file\n"), 0o644))

	t.Setenv("FITTRACKER_TEST_DOTENV", "from-env")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("FITTRACKER_TEST_DOTENV"))
}
