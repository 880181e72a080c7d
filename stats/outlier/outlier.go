package outlier

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-wave/stats/robust"
)

// DefaultZMax is the default robust z-score threshold.
const DefaultZMax = 3.0

var (
	// ErrInsufficientData is returned when the sequence is shorter than step.
	ErrInsufficientData = errors.New("outlier: insufficient data")
	// ErrInvalidArgument is returned for a non-positive step, an invalid
	// threshold or an unknown fill policy.
	ErrInvalidArgument = errors.New("outlier: invalid argument")
	// ErrDegenerateWindow is returned under [WithStrictWindows] when a local
	// window has zero interquartile range.
	ErrDegenerateWindow = errors.New("outlier: degenerate window")
)

type config struct {
	zmax   float64
	fill   Fill
	strict bool
}

// Option configures [Detect] and [Clean].
type Option func(*config)

// WithZMax sets the z-score threshold. Samples with |z| >= z are outliers.
// math.Inf(1) disables flagging altogether.
func WithZMax(z float64) Option {
	return func(c *config) { c.zmax = z }
}

// WithFill sets the fill policy. The default is [FillZero].
func WithFill(f Fill) Option {
	return func(c *config) { c.fill = f }
}

// WithStrictWindows makes a zero-spread local window an error.
func WithStrictWindows() Option {
	return func(c *config) { c.strict = true }
}

// Result is the outcome of [Detect].
type Result struct {
	// Values is the cleaned sequence.
	Values []float64
	// Outliers lists the flagged input indices in ascending order.
	Outliers []int
	// Degenerate counts samples whose local window had zero IQR.
	Degenerate int
}

// Detect runs the local IQR test over seq. seq is not modified.
//
// A local window with zero IQR has no finite z-score: the sample scores 0
// if it equals the window median and +Inf otherwise. Any finite zmax
// therefore flags a sample that departs from a zero-spread window, while
// an infinite zmax never flags anything.
func Detect(seq []float64, step int, opts ...Option) (Result, error) {
	cfg := config{zmax: DefaultZMax, fill: FillZero}
	for _, opt := range opts {
		opt(&cfg)
	}

	if step <= 0 {
		return Result{}, fmt.Errorf("%w: step %d", ErrInvalidArgument, step)
	}
	if math.IsNaN(cfg.zmax) || cfg.zmax <= 0 {
		return Result{}, fmt.Errorf("%w: zmax %v", ErrInvalidArgument, cfg.zmax)
	}
	if !cfg.fill.Valid() {
		return Result{}, fmt.Errorf("%w: fill %d", ErrInvalidArgument, int(cfg.fill))
	}

	n := len(seq)
	if n < step {
		return Result{}, fmt.Errorf("%w: %d samples, step %d", ErrInsufficientData, n, step)
	}

	unbounded := math.IsInf(cfg.zmax, 1)
	res := Result{Values: make([]float64, 0, n)}
	half := step / 2
	scratch := make([]float64, 0, step)

	for i, x := range seq {
		lo, hi := localWindow(i, half, n)
		scratch = append(scratch[:0], seq[lo:hi]...)
		slices.Sort(scratch)
		q := robust.QuartilesSorted(scratch)

		var z float64
		if iqr := q.IQR(); iqr == 0 {
			if cfg.strict {
				return Result{}, fmt.Errorf("%w: window [%d, %d) at index %d", ErrDegenerateWindow, lo, hi, i)
			}
			res.Degenerate++
			if x != q.Median {
				z = math.Inf(1)
			}
		} else {
			z = (x - q.Median) / (robust.IQRToSigma * iqr)
		}

		if unbounded || math.Abs(z) < cfg.zmax {
			res.Values = append(res.Values, x)
			continue
		}

		res.Outliers = append(res.Outliers, i)
		switch cfg.fill {
		case FillZero:
			res.Values = append(res.Values, 0)
		case FillMedian:
			res.Values = append(res.Values, q.Median)
		case FillDelete:
		}
	}

	return res, nil
}

// Clean is [Detect] returning only the cleaned values.
func Clean(seq []float64, step int, opts ...Option) ([]float64, error) {
	res, err := Detect(seq, step, opts...)
	if err != nil {
		return nil, err
	}

	return res.Values, nil
}

// localWindow returns [max(0, i-half), min(n, i+half)). The window is empty
// only when half == 0, in which case the sample itself is used.
func localWindow(i, half, n int) (int, int) {
	lo := max(0, i-half)
	hi := min(n, i+half)
	if hi <= lo {
		return i, i + 1
	}

	return lo, hi
}
