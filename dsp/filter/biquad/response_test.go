package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestChain_ResponseIsProduct(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain(coeffs)
	for _, f := range []float64{0.05, 0.2, 0.7} {
		want := coeffs[0].Response(f, 2) * coeffs[1].Response(f, 2)
		if got := c.Response(f, 2); cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: got %v, want %v", f, got, want)
		}
		db := c.MagnitudeDB(f, 2)
		if !almostEqual(db, 20*math.Log10(cmplx.Abs(want)), 1e-9) {
			t.Errorf("f=%v: MagnitudeDB=%v", f, db)
		}
	}
}

func TestChain_Stable(t *testing.T) {
	if !NewChain(twoSectionCoeffs()).Stable() {
		t.Fatal("expected stable chain")
	}
	if NewChain([]Coefficients{{B0: 1, A1: 0, A2: 1.2}}).Stable() {
		t.Fatal("expected unstable chain for |A2| > 1")
	}
}
