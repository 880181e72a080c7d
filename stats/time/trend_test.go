package time

import "testing"

func TestLinearFit_ExactLine(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = 3 - 0.25*float64(i)
	}
	a, b := LinearFit(x)
	if !almostEqual(a, 3, tolerance) || !almostEqual(b, -0.25, tolerance) {
		t.Fatalf("fit: intercept=%v slope=%v", a, b)
	}
	for i, r := range Detrend(x) {
		if !almostEqual(r, 0, 1e-12) {
			t.Fatalf("residual %d: %v", i, r)
		}
	}
}

func TestDetrend_ResidualHasNoTrend(t *testing.T) {
	x := []float64{1, 5, 2, 8, 3, 9, 4, 12}
	r := Detrend(x)
	if len(r) != len(x) {
		t.Fatalf("len: got %d, want %d", len(r), len(x))
	}
	a, b := LinearFit(r)
	if !almostEqual(a, 0, 1e-12) || !almostEqual(b, 0, 1e-12) {
		t.Fatalf("residual fit: intercept=%v slope=%v", a, b)
	}
	if x[0] != 1 || x[7] != 12 {
		t.Fatal("input modified")
	}
}

func TestDetrend_SingleSample(t *testing.T) {
	r := Detrend([]float64{7})
	if len(r) != 1 || r[0] != 0 {
		t.Fatalf("got %v, want [0]", r)
	}
}

func TestScale(t *testing.T) {
	got := Scale([]float64{1, -2, 0.5}, 2)
	want := []float64{2, -4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
