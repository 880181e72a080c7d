package time

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := make([]float64, 257)
	idx := make([]float64, len(x))
	for i := range x {
		idx[i] = float64(i)
		x[i] = 40 + 0.03*float64(i) + rng.NormFloat64()
	}

	if got, want := Mean(x), stat.Mean(x, nil); !almostEqual(got, want, 1e-9) {
		t.Errorf("Mean: got %v, gonum %v", got, want)
	}
	if got, want := Variance(x, 1), stat.Variance(x, nil); !almostEqual(got, want, 1e-9) {
		t.Errorf("Variance: got %v, gonum %v", got, want)
	}
	if got, want := StdDev(x, 1), stat.StdDev(x, nil); !almostEqual(got, want, 1e-9) {
		t.Errorf("StdDev: got %v, gonum %v", got, want)
	}

	a, b := LinearFit(x)
	alpha, beta := stat.LinearRegression(idx, x, nil, false)
	if !almostEqual(a, alpha, 1e-9) || !almostEqual(b, beta, 1e-12) {
		t.Errorf("LinearFit: got (%v, %v), gonum (%v, %v)", a, b, alpha, beta)
	}
}
