package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency and sample rate (same units).
func (c *Coefficients) Response(freq, sampleRate float64) complex128 {
	w := 2 * math.Pi * freq / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w

	return num / den
}

// Response computes the complex frequency response of the full cascade
// as the product of individual section responses.
func (c *Chain) Response(freq, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freq, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freq, sampleRate float64) float64 {
	h := c.Response(freq, sampleRate)
	return 20 * math.Log10(cmplx.Abs(h))
}

// Stable reports whether every section has its poles strictly inside the
// unit circle (Jury criterion for a second-order denominator).
func (c *Chain) Stable() bool {
	for i := range c.sections {
		a1, a2 := c.sections[i].A1, c.sections[i].A2
		if math.Abs(a2) >= 1 || math.Abs(a1) >= 1+a2 {
			return false
		}
	}

	return true
}
