package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wave/dsp/signal"
	"github.com/cwbudde/algo-wave/internal/config"
	"github.com/cwbudde/algo-wave/internal/series"
)

type synthOptions struct {
	samples int
	periods []float64
	heights []float64
	state   signal.SeaState
	seed    int64
	out     string
}

func newSynthCommand(root *rootOptions) *cobra.Command {
	opts := &synthOptions{}

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic sea-surface-height record",
		Long: `synth sums swell components, a tide, linear drift, uniform noise and
isolated spikes into a deterministic record, one sample per line. Each
--period needs a matching --height (significant wave height).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSynth(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.Float64("fs", config.DefaultSampleRate, "sample rate")
	f.IntVar(&opts.samples, "samples", 4096, "record length")
	f.Float64SliceVar(&opts.periods, "period", []float64{10}, "swell periods")
	f.Float64SliceVar(&opts.heights, "height", []float64{1}, "swell significant heights")
	f.Float64Var(&opts.state.Mean, "mean", 0, "still-water level")
	f.Float64Var(&opts.state.Drift, "drift", 0, "linear drift per time unit")
	f.Float64Var(&opts.state.TidePeriod, "tide-period", 0, "tide period (0 = no tide)")
	f.Float64Var(&opts.state.TideRange, "tide-range", 0, "tide range")
	f.Float64Var(&opts.state.Noise, "noise", 0, "uniform noise amplitude")
	f.IntVar(&opts.state.Spikes, "spikes", 0, "number of spikes")
	f.Float64Var(&opts.state.SpikeHeight, "spike-height", 0, "spike height")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")
	f.StringVarP(&opts.out, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runSynth(cmd *cobra.Command, root *rootOptions, opts *synthOptions) error {
	e, err := root.setup(cmd)
	if err != nil {
		return err
	}

	if len(opts.periods) != len(opts.heights) {
		return fmt.Errorf("%d periods but %d heights", len(opts.periods), len(opts.heights))
	}

	state := opts.state
	state.Swells = make([]signal.Swell, len(opts.periods))
	for i := range opts.periods {
		state.Swells[i] = signal.Swell{Period: opts.periods[i], Height: opts.heights[i]}
	}

	g := signal.NewGenerator(signal.WithSampleRate(e.cfg.Analysis.SampleRate), signal.WithSeed(opts.seed))
	rec, err := g.SeaSurface(state, opts.samples)
	if err != nil {
		return err
	}

	e.logger.Debug("synthesized", "samples", len(rec.Values), "spikes", rec.Spikes)

	var w io.Writer = e.out
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := series.Write(w, rec.Values); err != nil {
		return err
	}

	return e.finish()
}
