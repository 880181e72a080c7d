package wave

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wave/dsp/filter/design/pass"
	"github.com/cwbudde/algo-wave/dsp/filter/zerophase"
	timestats "github.com/cwbudde/algo-wave/stats/time"
)

// FilterSpec parameterizes the SSH to SSE conversion.
type FilterSpec struct {
	// Order of the Butterworth high-pass filter.
	Order int `json:"order" yaml:"order"`
	// Smooth is the smoothing period in samples.
	Smooth int `json:"smooth" yaml:"smooth"`
	// Sample is the sample rate the smoothing period is expressed against.
	Sample float64 `json:"sample" yaml:"sample"`
	// Coef scales the input before detrending.
	Coef float64 `json:"coef" yaml:"coef"`
}

// NewFilterSpec returns a FilterSpec with Coef = 1.
func NewFilterSpec(order, smooth int, sample float64) FilterSpec {
	return FilterSpec{Order: order, Smooth: smooth, Sample: sample, Coef: 1}
}

// Cutoff returns the normalized cutoff (2/Smooth)*Sample, where 1 is the
// Nyquist frequency. It returns NaN for Smooth == 0.
func (s FilterSpec) Cutoff() float64 {
	if s.Smooth == 0 {
		return math.NaN()
	}

	return 2 / float64(s.Smooth) * s.Sample
}

// Validate reports whether s describes a realizable filter.
func (s FilterSpec) Validate() error {
	switch {
	case s.Order <= 0:
		return fmt.Errorf("%w: order %d", ErrInvalidFilterParameter, s.Order)
	case s.Smooth <= 0:
		return fmt.Errorf("%w: smooth %d", ErrInvalidFilterParameter, s.Smooth)
	case !(s.Sample > 0) || math.IsInf(s.Sample, 0):
		return fmt.Errorf("%w: sample %v", ErrInvalidFilterParameter, s.Sample)
	case math.IsNaN(s.Coef) || math.IsInf(s.Coef, 0):
		return fmt.Errorf("%w: coef %v", ErrInvalidFilterParameter, s.Coef)
	}

	if fc := s.Cutoff(); !(fc > 0 && fc < 1) {
		return fmt.Errorf("%w: normalized cutoff %v outside (0, 1)", ErrInvalidFilterParameter, fc)
	}

	return nil
}

// SSE converts sea-surface height into sea-surface elevation. The result
// has len(ssh) samples.
//
// ssh is scaled by spec.Coef, linearly detrended and filtered forward and
// backward with a Butterworth high-pass of spec.Order at spec.Cutoff().
// Both ends are padded by odd reflection of 3*spec.Order samples, so
// len(ssh) must exceed that.
func SSE(ssh []float64, spec FilterSpec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	pad := zerophase.DefaultPadLength(spec.Order)
	if len(ssh) <= pad {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrInsufficientData, len(ssh), pad)
	}

	sections := pass.ButterworthHPNormalized(spec.Cutoff(), spec.Order)
	if sections == nil {
		return nil, fmt.Errorf("%w: cannot design order %d at %v", ErrInvalidFilterParameter, spec.Order, spec.Cutoff())
	}

	x := timestats.Detrend(timestats.Scale(ssh, spec.Coef))

	sse, err := zerophase.Filter(sections, x, zerophase.WithPadLength(pad))
	if err != nil {
		if errors.Is(err, zerophase.ErrInsufficientData) {
			return nil, fmt.Errorf("%w: %w", ErrInsufficientData, err)
		}
		return nil, err
	}

	return sse, nil
}
