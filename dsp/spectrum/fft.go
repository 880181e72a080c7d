package spectrum

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// realFFT computes one-sided power spectra of real frames of a fixed
// length. Lengths the FFT backend cannot plan fall back to a direct DFT.
type realFFT struct {
	n    int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128

	// direct DFT twiddles, built on first use
	cos, sin []float64
}

func newRealFFT(n int) *realFFT {
	f := &realFFT{
		n:   n,
		in:  make([]complex128, n),
		out: make([]complex128, n),
	}

	if plan, err := algofft.NewPlan64(n); err == nil {
		f.plan = plan
	}

	return f
}

// bins returns the number of one-sided bins, n/2 + 1.
func (f *realFFT) bins() int {
	return f.n/2 + 1
}

// powerOneSided writes |X[k]|^2 for k = 0..n/2 of frame into dst.
func (f *realFFT) powerOneSided(dst, frame []float64) {
	for i, x := range frame {
		f.in[i] = complex(x, 0)
	}

	if f.plan == nil || f.plan.Forward(f.out, f.in) != nil {
		f.dft(frame)
	}

	powerInto(dst, f.out[:f.bins()])
}

func (f *realFFT) dft(frame []float64) {
	n := f.n
	if f.cos == nil {
		f.cos = make([]float64, n)
		f.sin = make([]float64, n)
		for i := range n {
			phi := 2 * math.Pi * float64(i) / float64(n)
			f.cos[i] = math.Cos(phi)
			f.sin[i] = math.Sin(phi)
		}
	}

	for k := range f.bins() {
		var re, im float64
		idx := 0
		for _, x := range frame {
			re += x * f.cos[idx]
			im -= x * f.sin[idx]
			idx += k
			if idx >= n {
				idx -= n
			}
		}
		f.out[k] = complex(re, im)
	}
}
