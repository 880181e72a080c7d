package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-wave/internal/testutil"
)

func TestRealFFT_DirectMatchesPlanned(t *testing.T) {
	for _, n := range []int{1, 2, 7, 16, 45, 64} {
		frame := testutil.DeterministicNoise(int64(n), 1, n)

		planned := newRealFFT(n)
		got := make([]float64, planned.bins())
		planned.powerOneSided(got, frame)

		direct := newRealFFT(n)
		direct.plan = nil
		want := make([]float64, direct.bins())
		direct.powerOneSided(want, frame)

		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestRealFFT_DCFrame(t *testing.T) {
	f := newRealFFT(8)
	f.plan = nil
	got := make([]float64, f.bins())
	f.powerOneSided(got, testutil.DC(1, 8))
	testutil.RequireSliceNearlyEqual(t, got, []float64{64, 0, 0, 0, 0}, 1e-12)
}

func TestPower(t *testing.T) {
	got := Power([]complex128{3 + 4i, -1 - 1i, 0})
	testutil.RequireSliceNearlyEqual(t, got, []float64{25, 2, 0}, 1e-12)
	if Power(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}
