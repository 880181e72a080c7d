package window

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got %.12f want %.12f", i, got[i], want[i])
		}
	}
}

func TestHannGolden(t *testing.T) {
	checkGolden(t, Generate(TypeHann, 5), []float64{0, 0.5, 1, 0.5, 0}, 1e-12)
}

func TestHannPeriodicGolden(t *testing.T) {
	// scipy.signal.get_window('hann', 4)
	checkGolden(t, Generate(TypeHann, 4, WithPeriodic()), []float64{0, 0.5, 1, 0.5}, 1e-12)
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())
	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
}

func TestHammingAndBlackmanEndpoints(t *testing.T) {
	h := Generate(TypeHamming, 9)
	if !almostEqual(h[0], 0.08, 1e-12) || !almostEqual(h[4], 1, 1e-12) {
		t.Fatalf("hamming endpoints: %v", h)
	}
	b := Generate(TypeBlackman, 9)
	if !almostEqual(b[0], 0, 1e-12) || !almostEqual(b[4], 1, 1e-12) {
		t.Fatalf("blackman endpoints: %v", b)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	Apply(TypeRectangular, buf)
	checkGolden(t, buf, []float64{1, 2, 3, 4}, 0)

	Apply(TypeHann, buf, WithPeriodic())
	checkGolden(t, buf, []float64{0, 1, 3, 2}, 1e-12)
}

func TestSums(t *testing.T) {
	w := Generate(TypeHann, 4, WithPeriodic())
	if !almostEqual(Sum(w), 2, 1e-12) {
		t.Fatalf("Sum=%v", Sum(w))
	}
	if !almostEqual(SumSquares(w), 1.5, 1e-12) {
		t.Fatalf("SumSquares=%v", SumSquares(w))
	}
}

func TestInvalidLength(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := Generate(TypeHann, 1); len(got) != 1 || got[0] != 1 {
		t.Fatalf("single-sample window: got %v, want [1]", got)
	}
	if _, err := Hann(-1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unknown window")
	}
}
