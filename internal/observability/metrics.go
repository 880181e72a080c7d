package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricJobsTotal       = "wavecalc_jobs_total"
	metricJobDuration     = "wavecalc_job_duration_seconds"
	metricSamplesTotal    = "wavecalc_samples_total"
	metricOutliersTotal   = "wavecalc_outliers_total"
	metricDegenerateTotal = "wavecalc_degenerate_windows_total"

	labelKind   = "kind"
	labelStatus = "status"

	// StatusOK labels a job that returned a result.
	StatusOK = "ok"
	// StatusError labels a job that failed.
	StatusError = "error"
	// StatusCanceled labels a job skipped because the run was canceled.
	StatusCanceled = "canceled"
)

// durationBuckets covers 100us to 60s; a single call on a long record is
// dominated by the outlier detector's per-sample sort.
var durationBuckets = []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60}

// Metrics holds the Prometheus collectors for batch runs. Each instance
// owns a private registry so repeated construction never conflicts.
type Metrics struct {
	registry   *prometheus.Registry
	jobs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	samples    *prometheus.CounterVec
	outliers   prometheus.Counter
	degenerate prometheus.Counter
}

// NewMetrics creates and registers the batch collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricJobsTotal,
			Help: "Number of processed jobs.",
		}, []string{labelKind, labelStatus}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricJobDuration,
			Help:    "Job duration in seconds.",
			Buckets: durationBuckets,
		}, []string{labelKind}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricSamplesTotal,
			Help: "Number of input samples processed.",
		}, []string{labelKind}),
		outliers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricOutliersTotal,
			Help: "Number of samples flagged as outliers.",
		}),
		degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricDegenerateTotal,
			Help: "Number of samples whose local window had zero interquartile range.",
		}),
	}

	m.registry.MustRegister(m.jobs, m.duration, m.samples, m.outliers, m.degenerate)

	return m
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordJob records a finished job of the given kind.
func (m *Metrics) RecordJob(kind, status string, samples int, d time.Duration) {
	m.jobs.WithLabelValues(kind, status).Inc()
	if status == StatusCanceled {
		return
	}

	m.duration.WithLabelValues(kind).Observe(d.Seconds())
	m.samples.WithLabelValues(kind).Add(float64(samples))
}

// RecordOutliers adds the outcome of one outlier detection.
func (m *Metrics) RecordOutliers(flagged, degenerate int) {
	m.outliers.Add(float64(flagged))
	m.degenerate.Add(float64(degenerate))
}

// JobCount returns the jobs counter for kind and status.
func (m *Metrics) JobCount(kind, status string) prometheus.Counter {
	return m.jobs.WithLabelValues(kind, status)
}

// WriteTextfile writes all metrics in the text exposition format to path,
// for collection by a node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}
