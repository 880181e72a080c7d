package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wave/dsp/window"
)

// DefaultSegmentLength is the Welch segment length used when none is given.
const DefaultSegmentLength = 256

var (
	// ErrEmptyInput is returned for an empty sequence.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidSampleRate is returned for a non-positive or non-finite rate.
	ErrInvalidSampleRate = errors.New("spectrum: invalid sample rate")
	// ErrInvalidSegment is returned for an unusable segment/overlap pair.
	ErrInvalidSegment = errors.New("spectrum: invalid segment configuration")
)

// Detrend selects the per-segment trend removal.
type Detrend int

const (
	// DetrendConstant subtracts each segment's mean.
	DetrendConstant Detrend = iota
	// DetrendNone leaves segments untouched.
	DetrendNone
)

// Scaling selects the unit of the estimate.
type Scaling int

const (
	// ScalingDensity yields a power spectral density (units^2 per Hz).
	ScalingDensity Scaling = iota
	// ScalingSpectrum yields a power spectrum (units^2).
	ScalingSpectrum
)

// PSD is a one-sided spectral estimate: Power[k] belongs to Freqs[k].
type PSD struct {
	Freqs []float64
	Power []float64
}

// Len returns the number of frequency bins.
func (p PSD) Len() int { return len(p.Freqs) }

// Resolution returns the bin spacing, or 0 for fewer than two bins.
func (p PSD) Resolution() float64 {
	if len(p.Freqs) < 2 {
		return 0
	}
	return p.Freqs[1] - p.Freqs[0]
}

// WelchOption configures [Welch].
type WelchOption func(*welchConfig)

type welchConfig struct {
	segment    int
	overlap    int
	overlapSet bool
	window     window.Type
	detrend    Detrend
	scaling    Scaling
}

// WithSegmentLength sets the samples per segment (and FFT length).
// Lengths above the input length are clamped to it.
func WithSegmentLength(n int) WelchOption {
	return func(c *welchConfig) { c.segment = n }
}

// WithOverlap sets the number of samples shared by consecutive segments.
// The default is half the segment length.
func WithOverlap(n int) WelchOption {
	return func(c *welchConfig) {
		c.overlap = n
		c.overlapSet = true
	}
}

// WithWindow selects the segment taper. The periodic form is always used.
func WithWindow(t window.Type) WelchOption {
	return func(c *welchConfig) { c.window = t }
}

// WithDetrend selects per-segment trend removal.
func WithDetrend(d Detrend) WelchOption {
	return func(c *welchConfig) { c.detrend = d }
}

// WithScaling selects density or spectrum scaling.
func WithScaling(s Scaling) WelchOption {
	return func(c *welchConfig) { c.scaling = s }
}

// Welch estimates the one-sided power spectral density of x sampled at fs.
//
// Segments of length n start every n-overlap samples; a trailing remainder
// shorter than a segment is ignored. Bin k lies at k*fs/n for
// k = 0..n/2. x is not modified.
func Welch(x []float64, fs float64, opts ...WelchOption) (PSD, error) {
	if len(x) == 0 {
		return PSD{}, ErrEmptyInput
	}
	if fs <= 0 || math.IsNaN(fs) || math.IsInf(fs, 0) {
		return PSD{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, fs)
	}

	cfg := welchConfig{
		segment: DefaultSegmentLength,
		window:  window.TypeHann,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	nperseg := min(cfg.segment, len(x))
	if nperseg < 1 {
		return PSD{}, fmt.Errorf("%w: segment length %d", ErrInvalidSegment, cfg.segment)
	}

	noverlap := nperseg / 2
	if cfg.overlapSet {
		noverlap = cfg.overlap
	}
	if noverlap < 0 || noverlap >= nperseg {
		return PSD{}, fmt.Errorf("%w: overlap %d with segment length %d", ErrInvalidSegment, noverlap, nperseg)
	}

	win := window.Generate(cfg.window, nperseg, window.WithPeriodic())

	var scale float64
	switch cfg.scaling {
	case ScalingSpectrum:
		s := window.Sum(win)
		scale = 1 / (s * s)
	default:
		scale = 1 / (fs * window.SumSquares(win))
	}

	step := nperseg - noverlap
	nseg := (len(x)-nperseg)/step + 1

	fft := newRealFFT(nperseg)
	bins := fft.bins()
	acc := make([]float64, bins)
	segPower := make([]float64, bins)
	frame := make([]float64, nperseg)

	for s := range nseg {
		copy(frame, x[s*step:s*step+nperseg])

		if cfg.detrend == DetrendConstant {
			mean := 0.0
			for _, v := range frame {
				mean += v
			}
			mean /= float64(nperseg)
			for i := range frame {
				frame[i] -= mean
			}
		}

		for i := range frame {
			frame[i] *= win[i]
		}

		fft.powerOneSided(segPower, frame)
		for k, p := range segPower {
			acc[k] += p
		}
	}

	out := PSD{
		Freqs: make([]float64, bins),
		Power: make([]float64, bins),
	}

	// Every bin except DC (and Nyquist for even lengths) folds in the
	// negative-frequency half.
	last := bins
	if nperseg%2 == 0 {
		last = bins - 1
	}

	norm := scale / float64(nseg)
	for k := range bins {
		out.Freqs[k] = float64(k) * fs / float64(nperseg)
		out.Power[k] = acc[k] * norm
		if k > 0 && k < last {
			out.Power[k] *= 2
		}
	}

	return out, nil
}
