package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-wave/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func magChain(c *biquad.Chain, freq, sr float64) float64 {
	return cmplx.Abs(c.Response(freq, sr))
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	disc := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0))
	r1 := (-complex(c.A1, 0) + disc) / 2
	r2 := (-complex(c.A1, 0) - disc) / 2
	if cmplx.Abs(r1) >= 1 || cmplx.Abs(r2) >= 1 {
		t.Fatalf("unstable poles: |r1|=%v |r2|=%v coeff=%#v", cmplx.Abs(r1), cmplx.Abs(r2), c)
	}
}
