package commands

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wave/internal/batch"
	"github.com/cwbudde/algo-wave/internal/config"
	"github.com/cwbudde/algo-wave/measure/wave"
)

const kindAnalyze = "analyze"

func newAnalyzeCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze file...",
		Short: "Compute SWH, mean period and wavelength for each input",
		Long: `analyze scales and detrends each sea-surface-height record, removes
the low-frequency part with a zero-phase Butterworth high-pass filter and
reports significant wave height per window, the spectral mean period and
the inverse peak frequency of the resulting sea-surface elevation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, args)
		},
	}

	f := cmd.Flags()
	f.Int("order", config.DefaultFilterOrder, "Butterworth high-pass order")
	f.Int("smooth", config.DefaultFilterSmooth, "smoothing period in samples")
	f.Float64("sample", config.DefaultFilterSample, "sample rate of the smoothing period")
	f.Float64("coef", config.DefaultFilterCoef, "scale applied to the input")
	f.Int("swh-step", config.DefaultSWHStep, "SWH window length in samples")
	f.Float64("fs", config.DefaultSampleRate, "sample rate for the mean period")
	f.Int("wl-step", config.DefaultWavelengthStep, "Welch segment length for the wavelength")

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootOptions, args []string) error {
	e, err := root.setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := e.runContext(cmd.Context())
	defer cancel()

	jobs, err := e.loadJobs(ctx, args)
	if err != nil {
		return err
	}

	params := e.cfg.WaveParams()
	results, runErr := batch.Run(ctx, e.runner(), kindAnalyze, jobs, func(j batch.Job) (wave.Report, error) {
		return wave.Analyze(j.Values, params)
	})

	reports := make([]analyzeReport, len(results))
	for i, res := range results {
		reports[i] = newAnalyzeReport(jobs[i], res)
	}

	if err := render(e.out, e.cfg.Output.Format, reports, analyzeTable); err != nil {
		return err
	}

	if err := e.finish(); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	return failures(results)
}
