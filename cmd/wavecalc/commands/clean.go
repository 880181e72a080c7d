package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wave/internal/batch"
	"github.com/cwbudde/algo-wave/internal/config"
	"github.com/cwbudde/algo-wave/internal/series"
	"github.com/cwbudde/algo-wave/stats/outlier"
)

const kindClean = "clean"

type cleanOptions struct {
	outDir string
	strict bool
}

func newCleanCommand(root *rootOptions) *cobra.Command {
	opts := &cleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean file...",
		Short: "Replace local outliers using a robust z-score",
		Long: `clean compares every sample with the median and interquartile range of
the surrounding step samples and replaces samples whose robust z-score
reaches zmax with zero or the local median, or drops them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, root, opts, args)
		},
	}

	f := cmd.Flags()
	f.Int("step", config.DefaultOutlierStep, "local window length in samples")
	f.Float64("zmax", config.DefaultOutlierZMax, "robust z-score threshold (inf disables flagging)")
	f.String("fill", config.DefaultOutlierFill, "outlier replacement: zero, median or delete")
	f.StringVarP(&opts.outDir, "out-dir", "o", "", "write cleaned sequences to this directory")
	f.BoolVar(&opts.strict, "strict", false, "fail on windows with zero interquartile range")

	return cmd
}

func runClean(cmd *cobra.Command, root *rootOptions, opts *cleanOptions, args []string) error {
	e, err := root.setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := e.runContext(cmd.Context())
	defer cancel()

	detectOpts, err := e.cfg.OutlierOptions()
	if err != nil {
		return err
	}
	if opts.strict {
		detectOpts = append(detectOpts, outlier.WithStrictWindows())
	}

	jobs, err := e.loadJobs(ctx, args)
	if err != nil {
		return err
	}

	step := e.cfg.Outlier.Step
	results, runErr := batch.Run(ctx, e.runner(), kindClean, jobs, func(j batch.Job) (outlier.Result, error) {
		res, err := outlier.Detect(j.Values, step, detectOpts...)
		if err == nil {
			e.metrics.RecordOutliers(len(res.Outliers), res.Degenerate)
		}
		return res, err
	})

	var paths []string
	if opts.outDir != "" {
		paths = cleanedPaths(opts.outDir, results)
	}

	reports := make([]cleanReport, len(results))
	for i, res := range results {
		reports[i] = newCleanReport(jobs[i], res)
		if res.Err == nil && paths != nil {
			if err := writeCleaned(paths[i], res.Value.Values); err != nil {
				return err
			}
			reports[i].Output = paths[i]
		}
	}

	if err := render(e.out, e.cfg.Output.Format, reports, cleanTable); err != nil {
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

// cleanedPaths maps every result to <base>.clean.txt in dir. Inputs from
// different directories may share a base name; later ones get a -2, -3, ...
// suffix in argument order so no output overwrites another.
func cleanedPaths[T any](dir string, results []batch.Result[T]) []string {
	paths := make([]string, len(results))
	used := make(map[string]bool, len(results))

	for i, res := range results {
		base := strings.TrimSuffix(res.Name, filepath.Ext(res.Name))
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[name] = true
		paths[i] = filepath.Join(dir, name+".clean.txt")
	}

	return paths
}

func writeCleaned(path string, values []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := series.Write(f, values); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
