// Package commands implements the wavecalc subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-wave/internal/config"
	"github.com/cwbudde/algo-wave/internal/observability"
	"github.com/cwbudde/algo-wave/internal/series"
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// flagKeys maps flag names to config keys. Only flags set on the command
// line override file and environment settings.
var flagKeys = map[string]string{
	"order":        "filter.order",
	"smooth":       "filter.smooth",
	"sample":       "filter.sample",
	"coef":         "filter.coef",
	"swh-step":     "analysis.swh_step",
	"fs":           "analysis.sample_rate",
	"wl-step":      "analysis.wavelength_step",
	"step":         "outlier.step",
	"zmax":         "outlier.zmax",
	"fill":         "outlier.fill",
	"workers":      "batch.workers",
	"timeout":      "batch.timeout",
	"column":       "input.column",
	"max-size":     "input.max_size",
	"format":       "output.format",
	"metrics-file": "output.metrics_file",
}

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand builds the wavecalc command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wavecalc",
		Short: "Sea-state descriptors from sea-surface-height records",
		Long: `wavecalc converts sea-surface height into sea-surface elevation and
derives significant wave height, mean wave period and dominant wavelength.

Commands:
  analyze   SSE, SWH, period and wavelength per input file
  clean     local IQR outlier removal
  psd       Welch power spectral density of one input
  synth     synthetic sea-surface-height record`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default .wavecalc.yaml in . or $HOME)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	pf.Int("workers", config.DefaultBatchWorkers, "concurrent jobs (0 = GOMAXPROCS)")
	pf.Duration("timeout", 0, "abort the run after this duration (0 = none)")
	pf.Int("column", config.DefaultInputColumn, "zero-based value column")
	pf.String("max-size", config.DefaultInputMaxSize, "maximum input size per file")
	pf.StringP("format", "f", config.DefaultOutputFormat, "output format: table, json or yaml")
	pf.String("metrics-file", "", "write Prometheus metrics to this file")

	rootCmd.AddCommand(
		newAnalyzeCommand(opts),
		newCleanCommand(opts),
		newPSDCommand(opts),
		newSynthCommand(opts),
		newVersionCommand(info),
	)

	return rootCmd
}

// env is the per-invocation state shared by the subcommands.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	out     io.Writer
}

func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	overrides := config.Overrides{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.LoadConfig(o.configPath, overrides)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		logger:  observability.NewLogger(cmd.ErrOrStderr(), o.verbose),
		metrics: observability.NewMetrics(),
		out:     cmd.OutOrStdout(),
	}, nil
}

// runContext applies the configured timeout to the command context.
func (e *env) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.Batch.Timeout > 0 {
		return context.WithTimeout(ctx, e.cfg.Batch.Timeout)
	}

	return context.WithCancel(ctx)
}

func (e *env) loadOptions() (series.Options, error) {
	maxBytes, err := e.cfg.MaxInputBytes()
	if err != nil {
		return series.Options{}, err
	}

	return series.Options{Column: e.cfg.Input.Column, MaxBytes: maxBytes}, nil
}

// finish writes the metrics textfile when one is configured.
func (e *env) finish() error {
	path := e.cfg.Output.MetricsFile
	if path == "" {
		return nil
	}

	if err := e.metrics.WriteTextfile(path); err != nil {
		return err
	}

	e.logger.Debug("metrics written", "path", path)

	return nil
}

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wavecalc %s (commit: %s, built: %s)\n", info.Version, info.Commit, info.Date)
		},
	}
}
