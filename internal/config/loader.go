package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".wavecalc"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for wavecalc settings.
const envPrefix = "WAVECALC"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Default values.
const (
	DefaultFilterOrder     = 4
	DefaultFilterSmooth    = 100
	DefaultFilterSample    = 1.0
	DefaultFilterCoef      = 1.0
	DefaultSWHStep         = 512
	DefaultSampleRate      = 1.0
	DefaultWavelengthStep  = 256
	DefaultOutlierStep     = 16
	DefaultOutlierZMax     = 3.0
	DefaultOutlierFill     = "zero"
	DefaultBatchWorkers    = 0
	DefaultInputColumn     = 0
	DefaultInputMaxSize    = "256MiB"
	DefaultOutputFormat    = FormatTable
	DefaultOutputMetricsTo = ""
)

// Overrides maps dotted config keys to values that take precedence over
// file and environment settings, typically explicitly set CLI flags.
type Overrides map[string]any

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string, overrides Overrides) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	for key, value := range overrides {
		viperCfg.Set(key, value)
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("filter.order", DefaultFilterOrder)
	viperCfg.SetDefault("filter.smooth", DefaultFilterSmooth)
	viperCfg.SetDefault("filter.sample", DefaultFilterSample)
	viperCfg.SetDefault("filter.coef", DefaultFilterCoef)

	viperCfg.SetDefault("analysis.swh_step", DefaultSWHStep)
	viperCfg.SetDefault("analysis.sample_rate", DefaultSampleRate)
	viperCfg.SetDefault("analysis.wavelength_step", DefaultWavelengthStep)

	viperCfg.SetDefault("outlier.step", DefaultOutlierStep)
	viperCfg.SetDefault("outlier.zmax", DefaultOutlierZMax)
	viperCfg.SetDefault("outlier.fill", DefaultOutlierFill)

	viperCfg.SetDefault("batch.workers", DefaultBatchWorkers)
	viperCfg.SetDefault("batch.timeout", "0s")

	viperCfg.SetDefault("input.column", DefaultInputColumn)
	viperCfg.SetDefault("input.max_size", DefaultInputMaxSize)

	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.metrics_file", DefaultOutputMetricsTo)
}
