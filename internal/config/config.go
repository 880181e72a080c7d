// Package config loads wavecalc settings from defaults, an optional YAML
// file and WAVECALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-wave/measure/wave"
	"github.com/cwbudde/algo-wave/stats/outlier"
)

// Config is the top-level configuration struct for wavecalc.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Filter   FilterConfig   `mapstructure:"filter"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Outlier  OutlierConfig  `mapstructure:"outlier"`
	Batch    BatchConfig    `mapstructure:"batch"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
}

// FilterConfig holds the SSH to SSE filter settings.
type FilterConfig struct {
	Order  int     `mapstructure:"order"`
	Smooth int     `mapstructure:"smooth"`
	Sample float64 `mapstructure:"sample"`
	Coef   float64 `mapstructure:"coef"`
}

// AnalysisConfig holds the SWH, period and wavelength settings.
type AnalysisConfig struct {
	SWHStep        int     `mapstructure:"swh_step"`
	SampleRate     float64 `mapstructure:"sample_rate"`
	WavelengthStep int     `mapstructure:"wavelength_step"`
}

// OutlierConfig holds the outlier cleaner settings.
type OutlierConfig struct {
	Step int     `mapstructure:"step"`
	ZMax float64 `mapstructure:"zmax"`
	Fill string  `mapstructure:"fill"`
}

// BatchConfig holds worker pool knobs.
type BatchConfig struct {
	// Workers is the number of concurrent jobs; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// Timeout bounds a whole run; 0 disables it.
	Timeout time.Duration `mapstructure:"timeout"`
}

// InputConfig holds sequence loading settings.
type InputConfig struct {
	Column  int    `mapstructure:"column"`
	MaxSize string `mapstructure:"max_size"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidWorkers indicates the workers value is negative.
	ErrInvalidWorkers = errors.New("batch.workers must be non-negative")
	// ErrInvalidTimeout indicates the timeout is negative.
	ErrInvalidTimeout = errors.New("batch.timeout must be non-negative")
	// ErrInvalidSWHStep indicates the SWH window is too short.
	ErrInvalidSWHStep = errors.New("analysis.swh_step must be at least 2")
	// ErrInvalidSampleRate indicates the sample rate is not positive.
	ErrInvalidSampleRate = errors.New("analysis.sample_rate must be positive")
	// ErrInvalidWavelengthStep indicates the wavelength step is negative.
	ErrInvalidWavelengthStep = errors.New("analysis.wavelength_step must be non-negative")
	// ErrInvalidOutlierStep indicates the outlier window is not positive.
	ErrInvalidOutlierStep = errors.New("outlier.step must be positive")
	// ErrInvalidZMax indicates the threshold is not positive.
	ErrInvalidZMax = errors.New("outlier.zmax must be positive")
	// ErrInvalidColumn indicates the column index is negative.
	ErrInvalidColumn = errors.New("input.column must be non-negative")
	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("output.format must be table, json or yaml")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if err := c.FilterSpec().Validate(); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	if err := c.validateAnalysis(); err != nil {
		return err
	}

	if err := c.validateOutlier(); err != nil {
		return err
	}

	return c.validateIO()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.SWHStep < 2 {
		return ErrInvalidSWHStep
	}

	if !(c.Analysis.SampleRate > 0) {
		return ErrInvalidSampleRate
	}

	if c.Analysis.WavelengthStep < 0 {
		return ErrInvalidWavelengthStep
	}

	return nil
}

func (c *Config) validateOutlier() error {
	if c.Outlier.Step <= 0 {
		return ErrInvalidOutlierStep
	}

	if !(c.Outlier.ZMax > 0) {
		return ErrInvalidZMax
	}

	if _, err := outlier.ParseFill(c.Outlier.Fill); err != nil {
		return fmt.Errorf("outlier.fill: %w", err)
	}

	return nil
}

func (c *Config) validateIO() error {
	if c.Batch.Workers < 0 {
		return ErrInvalidWorkers
	}

	if c.Batch.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if c.Input.Column < 0 {
		return ErrInvalidColumn
	}

	if _, err := c.MaxInputBytes(); err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}
}

// FilterSpec returns the filter settings as a [wave.FilterSpec].
func (c *Config) FilterSpec() wave.FilterSpec {
	return wave.FilterSpec{
		Order:  c.Filter.Order,
		Smooth: c.Filter.Smooth,
		Sample: c.Filter.Sample,
		Coef:   c.Filter.Coef,
	}
}

// WaveParams returns the settings for [wave.Analyze].
func (c *Config) WaveParams() wave.Params {
	return wave.Params{
		Filter:         c.FilterSpec(),
		SWHStep:        c.Analysis.SWHStep,
		SampleRate:     c.Analysis.SampleRate,
		WavelengthStep: c.Analysis.WavelengthStep,
	}
}

// OutlierOptions returns the settings for [outlier.Clean].
func (c *Config) OutlierOptions() ([]outlier.Option, error) {
	fill, err := outlier.ParseFill(c.Outlier.Fill)
	if err != nil {
		return nil, err
	}

	return []outlier.Option{outlier.WithZMax(c.Outlier.ZMax), outlier.WithFill(fill)}, nil
}

// MaxInputBytes parses input.max_size ("64MB", "1GiB"). An empty value
// means no limit and yields 0.
func (c *Config) MaxInputBytes() (int64, error) {
	if c.Input.MaxSize == "" {
		return 0, nil
	}

	n, err := humanize.ParseBytes(c.Input.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("input.max_size: %w", err)
	}

	return int64(n), nil
}
