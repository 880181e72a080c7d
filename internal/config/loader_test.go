package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wave/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".wavecalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""), nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultFilterOrder, cfg.Filter.Order)
	assert.Equal(t, config.DefaultFilterSmooth, cfg.Filter.Smooth)
	assert.InDelta(t, config.DefaultFilterSample, cfg.Filter.Sample, 0)
	assert.InDelta(t, config.DefaultFilterCoef, cfg.Filter.Coef, 0)
	assert.Equal(t, config.DefaultSWHStep, cfg.Analysis.SWHStep)
	assert.InDelta(t, config.DefaultSampleRate, cfg.Analysis.SampleRate, 0)
	assert.Equal(t, config.DefaultWavelengthStep, cfg.Analysis.WavelengthStep)
	assert.Equal(t, config.DefaultOutlierStep, cfg.Outlier.Step)
	assert.InDelta(t, config.DefaultOutlierZMax, cfg.Outlier.ZMax, 0)
	assert.Equal(t, config.DefaultOutlierFill, cfg.Outlier.Fill)
	assert.Equal(t, config.DefaultBatchWorkers, cfg.Batch.Workers)
	assert.Zero(t, cfg.Batch.Timeout)
	assert.Equal(t, config.DefaultInputMaxSize, cfg.Input.MaxSize)
	assert.Equal(t, config.FormatTable, cfg.Output.Format)
	assert.Empty(t, cfg.Output.MetricsFile)
}

func TestLoadConfig_ValidFile_Unmarshals(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `filter:
  order: 6
  smooth: 300
  coef: 0.01
analysis:
  swh_step: 1200
  sample_rate: 2
outlier:
  fill: delete
batch:
  workers: 3
  timeout: 90s
input:
  column: 2
output:
  format: yaml
  metrics_file: /tmp/wavecalc.prom
`)

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Filter.Order)
	assert.Equal(t, 300, cfg.Filter.Smooth)
	assert.InDelta(t, 0.01, cfg.Filter.Coef, 1e-12)
	assert.Equal(t, 1200, cfg.Analysis.SWHStep)
	assert.InDelta(t, 2.0, cfg.Analysis.SampleRate, 0)
	assert.Equal(t, "delete", cfg.Outlier.Fill)
	assert.Equal(t, 3, cfg.Batch.Workers)
	assert.Equal(t, 90*time.Second, cfg.Batch.Timeout)
	assert.Equal(t, 2, cfg.Input.Column)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.Equal(t, "/tmp/wavecalc.prom", cfg.Output.MetricsFile)
}

func TestLoadConfig_InvalidFile_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "outlier:\n  zmax: -2\n")

	_, err := config.LoadConfig(path, nil)
	require.ErrorIs(t, err, config.ErrInvalidZMax)
}

func TestLoadConfig_MalformedFile_ReturnsReadError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "filter: [order\n")

	_, err := config.LoadConfig(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_Overrides_TakePrecedence(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "filter:\n  order: 6\n")

	cfg, err := config.LoadConfig(path, config.Overrides{
		"filter.order":  2,
		"batch.timeout": 5 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Filter.Order)
	assert.Equal(t, 5*time.Second, cfg.Batch.Timeout)
}

func TestLoadConfig_Env_OverridesFile(t *testing.T) {
	t.Setenv("WAVECALC_FILTER_ORDER", "8")
	t.Setenv("WAVECALC_OUTLIER_FILL", "median")

	cfg, err := config.LoadConfig(writeConfig(t, "filter:\n  order: 6\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Filter.Order)
	assert.Equal(t, "median", cfg.Outlier.Fill)
}
