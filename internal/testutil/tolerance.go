package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !near(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireNear fails t if |got-want| > eps. NaN never passes.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if !near(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// RequireRelNear fails t if got is not within rel*|want| of want.
func RequireRelNear(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if !near(got, want, rel*math.Abs(want)) {
		t.Fatalf("%s: got %v, want %v +- %.2g%%", name, got, want, 100*rel)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAscending fails t unless data is strictly increasing, as frequency
// axes must be.
func RequireAscending(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if !(data[i] > data[i-1]) {
			t.Fatalf("index %d: %v does not follow %v", i, data[i], data[i-1])
		}
	}
}

func near(got, want, eps float64) bool {
	return !math.IsNaN(got) && math.Abs(got-want) <= eps
}
