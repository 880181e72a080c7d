package commands

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-wave/internal/batch"
	"github.com/cwbudde/algo-wave/internal/series"
)

// loadJobs reads every path into a batch job. Loading stops at the first
// unreadable file.
func (e *env) loadJobs(ctx context.Context, paths []string) ([]batch.Job, error) {
	opts, err := e.loadOptions()
	if err != nil {
		return nil, err
	}

	jobs := make([]batch.Job, 0, len(paths))
	total := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s, err := series.Load(path, opts)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}

		e.logger.Debug("loaded", "job", s.Name, "samples", humanize.Comma(int64(s.Len())))
		jobs = append(jobs, batch.Job{Name: s.Name, Values: s.Values})
		total += s.Len()
	}

	e.logger.Info("inputs loaded", "files", len(jobs), "samples", humanize.Comma(int64(total)))

	return jobs, nil
}

func (e *env) runner() *batch.Runner {
	return batch.New(
		batch.WithWorkers(e.cfg.Batch.Workers),
		batch.WithLogger(e.logger),
		batch.WithMetrics(e.metrics),
	)
}
