package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wave/dsp/spectrum"
	"github.com/cwbudde/algo-wave/dsp/window"
	"github.com/cwbudde/algo-wave/internal/config"
	"github.com/cwbudde/algo-wave/internal/observability"
	"github.com/cwbudde/algo-wave/internal/series"
	freqstats "github.com/cwbudde/algo-wave/stats/frequency"
)

const kindPSD = "psd"

type psdOptions struct {
	segment int
	overlap int
	window  string
	density bool
}

func newPSDCommand(root *rootOptions) *cobra.Command {
	opts := &psdOptions{}

	cmd := &cobra.Command{
		Use:   "psd file",
		Short: "Print the Welch power spectral density of one input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPSD(cmd, root, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.Float64("fs", config.DefaultSampleRate, "sample rate")
	f.IntVar(&opts.segment, "segment", spectrum.DefaultSegmentLength, "segment length")
	f.IntVar(&opts.overlap, "overlap", -1, "segment overlap (default half the segment)")
	f.StringVar(&opts.window, "window", window.TypeHann.String(), "taper: rectangular, hann, hamming or blackman")
	f.BoolVar(&opts.density, "density", true, "density scaling (false: power spectrum)")

	return cmd
}

func runPSD(cmd *cobra.Command, root *rootOptions, opts *psdOptions, path string) error {
	e, err := root.setup(cmd)
	if err != nil {
		return err
	}

	win, err := window.ParseType(opts.window)
	if err != nil {
		return err
	}

	loadOpts, err := e.loadOptions()
	if err != nil {
		return err
	}

	s, err := series.Load(path, loadOpts)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	welchOpts := []spectrum.WelchOption{
		spectrum.WithSegmentLength(opts.segment),
		spectrum.WithWindow(win),
	}
	if opts.overlap >= 0 {
		welchOpts = append(welchOpts, spectrum.WithOverlap(opts.overlap))
	}
	if !opts.density {
		welchOpts = append(welchOpts, spectrum.WithScaling(spectrum.ScalingSpectrum))
	}

	start := time.Now()
	psd, err := spectrum.Welch(s.Values, e.cfg.Analysis.SampleRate, welchOpts...)
	if err != nil {
		e.metrics.RecordJob(kindPSD, observability.StatusError, s.Len(), time.Since(start))
		return err
	}
	e.metrics.RecordJob(kindPSD, observability.StatusOK, s.Len(), time.Since(start))

	peak := freqstats.PeakBin(psd.Power)
	if peak < 0 {
		return errors.New("empty spectrum")
	}

	rep := psdReport{
		File:       s.Name,
		Samples:    s.Len(),
		Resolution: psd.Resolution(),
		PeakFreq:   psd.Freqs[peak],
		Centroid:   freqstats.Centroid(psd.Freqs, psd.Power),
		Freqs:      psd.Freqs,
		Power:      psd.Power,
	}

	if err := render(e.out, e.cfg.Output.Format, rep, psdTable); err != nil {
		return err
	}

	return e.finish()
}
