package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wave/internal/config"
	"github.com/cwbudde/algo-wave/measure/wave"
)

func validConfig() config.Config {
	return config.Config{
		Filter:   config.FilterConfig{Order: 4, Smooth: 100, Sample: 1, Coef: 1},
		Analysis: config.AnalysisConfig{SWHStep: 512, SampleRate: 1, WavelengthStep: 256},
		Outlier:  config.OutlierConfig{Step: 16, ZMax: 3, Fill: "median"},
		Batch:    config.BatchConfig{Workers: 2, Timeout: time.Minute},
		Input:    config.InputConfig{Column: 1, MaxSize: "10MB"},
		Output:   config.OutputConfig{Format: config.FormatJSON},
	}
}

func TestValidate_ValidConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_InvalidFields_ReturnsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"filter cutoff", func(c *config.Config) { c.Filter.Smooth = 2 }, wave.ErrInvalidFilterParameter},
		{"swh step", func(c *config.Config) { c.Analysis.SWHStep = 1 }, config.ErrInvalidSWHStep},
		{"sample rate", func(c *config.Config) { c.Analysis.SampleRate = 0 }, config.ErrInvalidSampleRate},
		{"wavelength step", func(c *config.Config) { c.Analysis.WavelengthStep = -1 }, config.ErrInvalidWavelengthStep},
		{"outlier step", func(c *config.Config) { c.Outlier.Step = 0 }, config.ErrInvalidOutlierStep},
		{"zmax", func(c *config.Config) { c.Outlier.ZMax = -1 }, config.ErrInvalidZMax},
		{"workers", func(c *config.Config) { c.Batch.Workers = -1 }, config.ErrInvalidWorkers},
		{"timeout", func(c *config.Config) { c.Batch.Timeout = -time.Second }, config.ErrInvalidTimeout},
		{"column", func(c *config.Config) { c.Input.Column = -1 }, config.ErrInvalidColumn},
		{"format", func(c *config.Config) { c.Output.Format = "xml" }, config.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidate_UnknownFill_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Outlier.Fill = "interpolate"
	require.Error(t, cfg.Validate())

	_, err := cfg.OutlierOptions()
	require.Error(t, err)
}

func TestValidate_BadMaxSize_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Input.MaxSize = "lots"
	require.Error(t, cfg.Validate())
}

func TestMaxInputBytes(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	n, err := cfg.MaxInputBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), n)

	cfg.Input.MaxSize = ""
	n, err = cfg.MaxInputBytes()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWaveParams(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	p := cfg.WaveParams()

	assert.Equal(t, wave.FilterSpec{Order: 4, Smooth: 100, Sample: 1, Coef: 1}, p.Filter)
	assert.Equal(t, 512, p.SWHStep)
	assert.InDelta(t, 1.0, p.SampleRate, 0)
	assert.Equal(t, 256, p.WavelengthStep)

	opts, err := cfg.OutlierOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}
