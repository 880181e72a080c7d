// Package batch runs independent whole-sequence computations over a bounded
// worker pool.
//
// The numeric routines are not interruptible, so cancellation is coarse:
// the context is checked before each job starts and a running job always
// completes.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wave/internal/observability"
)

// ErrNoJobs is returned when Run is called without jobs.
var ErrNoJobs = errors.New("batch: no jobs")

// Job is one input sequence.
type Job struct {
	Name   string
	Values []float64
}

// Result is the outcome of one job. Results are returned in job order.
type Result[T any] struct {
	Name     string
	Value    T
	Err      error
	Duration time.Duration
}

// Runner executes jobs concurrently.
type Runner struct {
	workers  int
	failFast bool
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of concurrent jobs. n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithFailFast stops scheduling new jobs after the first failure.
func WithFailFast() Option {
	return func(r *Runner) { r.failFast = true }
}

// WithLogger sets the logger for job progress.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMetrics records per-job metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{logger: observability.DiscardLogger()}
	for _, opt := range opts {
		opt(r)
	}

	if r.workers <= 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}

	return r
}

// Workers returns the concurrency limit.
func (r *Runner) Workers() int {
	return r.workers
}

// Run applies fn to every job and returns one Result per job.
//
// A failing job is reported in its Result and does not stop the others
// unless the runner is fail-fast. The returned error is non-nil when ctx
// was canceled before all jobs started, or when a fail-fast run stopped;
// results are complete in both cases, with skipped jobs carrying the
// cancellation cause.
func Run[T any](ctx context.Context, r *Runner, kind string, jobs []Job, fn func(Job) (T, error)) ([]Result[T], error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	results := make([]Result[T], len(jobs))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	for i, job := range jobs {
		results[i].Name = job.Name

		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = context.Cause(gctx)
				r.record(kind, observability.StatusCanceled, job, 0)
				return nil
			}

			r.logger.Debug("job started", "kind", kind, "job", job.Name, "samples", len(job.Values))

			start := time.Now()
			value, err := fn(job)
			elapsed := time.Since(start)

			results[i].Value = value
			results[i].Err = err
			results[i].Duration = elapsed

			if err != nil {
				r.logger.Warn("job failed", "kind", kind, "job", job.Name, "err", err, "duration", elapsed)
				r.record(kind, observability.StatusError, job, elapsed)
				if r.failFast {
					return fmt.Errorf("%s: %w", job.Name, err)
				}
				return nil
			}

			r.logger.Info("job finished", "kind", kind, "job", job.Name, "samples", len(job.Values), "duration", elapsed)
			r.record(kind, observability.StatusOK, job, elapsed)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}

	if err := ctx.Err(); err != nil {
		for _, res := range results {
			if res.Err != nil && errors.Is(res.Err, err) {
				return results, err
			}
		}
	}

	return results, nil
}

func (r *Runner) record(kind, status string, job Job, d time.Duration) {
	if r.metrics == nil {
		return
	}

	r.metrics.RecordJob(kind, status, len(job.Values), d)
}
