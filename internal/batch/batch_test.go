package batch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wave/internal/batch"
	"github.com/cwbudde/algo-wave/internal/observability"
)

var errBoom = errors.New("boom")

func makeJobs(names ...string) []batch.Job {
	jobs := make([]batch.Job, len(names))
	for i, name := range names {
		jobs[i] = batch.Job{Name: name, Values: make([]float64, (i+1)*10)}
	}

	return jobs
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()

	jobs := makeJobs("a", "b", "c", "d", "e")
	r := batch.New(batch.WithWorkers(3))

	results, err := batch.Run(context.Background(), r, "len", jobs, func(j batch.Job) (int, error) {
		// Later jobs finish first.
		time.Sleep(time.Duration(len(jobs)*10-len(j.Values)) * time.Millisecond / 10)
		return len(j.Values), nil
	})
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, res := range results {
		assert.Equal(t, jobs[i].Name, res.Name)
		assert.Equal(t, len(jobs[i].Values), res.Value)
		require.NoError(t, res.Err)
	}
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32

	r := batch.New(batch.WithWorkers(2))
	_, err := batch.Run(context.Background(), r, "sleep", makeJobs("a", "b", "c", "d", "e", "f"), func(batch.Job) (struct{}, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)

		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, 2, r.Workers())
}

func TestRun_JobErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	m := observability.NewMetrics()
	r := batch.New(batch.WithWorkers(2), batch.WithMetrics(m))

	results, err := batch.Run(context.Background(), r, "analyze", makeJobs("a", "b", "c"), func(j batch.Job) (string, error) {
		if j.Name == "b" {
			return "", errBoom
		}
		return j.Name, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "a", results[0].Value)
	require.ErrorIs(t, results[1].Err, errBoom)
	assert.Equal(t, "c", results[2].Value)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.JobCount("analyze", observability.StatusOK)), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.JobCount("analyze", observability.StatusError)), 0)
}

func TestRun_FailFastSkipsRemaining(t *testing.T) {
	t.Parallel()

	m := observability.NewMetrics()
	r := batch.New(batch.WithWorkers(1), batch.WithFailFast(), batch.WithMetrics(m))

	var calls atomic.Int32
	results, err := batch.Run(context.Background(), r, "clean", makeJobs("a", "b", "c"), func(batch.Job) (int, error) {
		calls.Add(1)
		return 0, errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, int32(1), calls.Load())

	require.ErrorIs(t, results[0].Err, errBoom)
	require.ErrorIs(t, results[1].Err, errBoom)
	require.ErrorIs(t, results[2].Err, errBoom)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.JobCount("clean", observability.StatusCanceled)), 0)
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results, err := batch.Run(ctx, batch.New(), "analyze", makeJobs("a", "b"), func(batch.Job) (int, error) {
		calls.Add(1)
		return 1, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
	for _, res := range results {
		require.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestRun_NoJobs(t *testing.T) {
	t.Parallel()

	_, err := batch.Run(context.Background(), batch.New(), "analyze", nil, func(batch.Job) (int, error) {
		return 0, nil
	})
	require.ErrorIs(t, err, batch.ErrNoJobs)
}

func TestNew_DefaultWorkers(t *testing.T) {
	t.Parallel()

	assert.Positive(t, batch.New().Workers())
	assert.Positive(t, batch.New(batch.WithWorkers(-3)).Workers())
}
