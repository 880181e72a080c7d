package zerophase

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-wave/dsp/filter/biquad"
)

var (
	// ErrNoSections is returned when the cascade is empty.
	ErrNoSections = errors.New("zerophase: filter has no sections")
	// ErrInsufficientData is returned when the input is not longer than
	// the padding.
	ErrInsufficientData = errors.New("zerophase: input too short")
	// ErrInvalidPadLength is returned for a negative padding length.
	ErrInvalidPadLength = errors.New("zerophase: invalid pad length")
)

// Option configures [Filter].
type Option func(*config)

type config struct {
	padLen int
	padSet bool
}

// WithPadLength overrides the number of samples reflected at each end.
func WithPadLength(n int) Option {
	return func(c *config) {
		c.padLen = n
		c.padSet = true
	}
}

// DefaultPadLength returns 3*(max(len(b), len(a)) - 1) for a filter of the
// given order, i.e. three times the order of its transfer function.
func DefaultPadLength(order int) int {
	if order <= 0 {
		return 0
	}

	return 3 * order
}

// Filter applies the cascade forward and backward over x and returns a new
// slice of len(x) samples. x is not modified.
//
// By default the padding length is [DefaultPadLength] of the cascade order.
// len(x) must exceed the padding length.
func Filter(sections []biquad.Coefficients, x []float64, opts ...Option) ([]float64, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	chain := biquad.NewChain(sections)

	cfg := config{padLen: DefaultPadLength(chain.Order())}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.padLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPadLength, cfg.padLen)
	}
	if len(x) <= cfg.padLen {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrInsufficientData, len(x), cfg.padLen)
	}

	y := OddExtend(x, cfg.padLen)

	chain.SetState(chain.SteadyState(y[0]))
	chain.ProcessBlock(y)

	slices.Reverse(y)
	chain.SetState(chain.SteadyState(y[0]))
	chain.ProcessBlock(y)
	slices.Reverse(y)

	out := make([]float64, len(x))
	copy(out, y[cfg.padLen:cfg.padLen+len(x)])

	return out, nil
}

// OddExtend returns x extended by n samples at each end using odd
// reflection: 2*x[0]-x[n..1] on the left and 2*x[last]-x[last-1..last-n]
// on the right. n must be smaller than len(x).
func OddExtend(x []float64, n int) []float64 {
	if n <= 0 || len(x) == 0 {
		return append([]float64(nil), x...)
	}

	last := len(x) - 1
	out := make([]float64, 0, len(x)+2*n)

	for i := n; i >= 1; i-- {
		out = append(out, 2*x[0]-x[i])
	}
	out = append(out, x...)
	for i := 1; i <= n; i++ {
		out = append(out, 2*x[last]-x[last-i])
	}

	return out
}
