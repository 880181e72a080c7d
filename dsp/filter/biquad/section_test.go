package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func passthrough() Coefficients {
	return Coefficients{B0: 1}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(passthrough())
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced impulse response for
	// B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Fatalf("n=%d: got %v, want %v", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesProcessSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: -0.1, B2: 0.05, A1: -0.6, A2: 0.2}
	input := []float64{1, -0.5, 0.3, 0.9, -1, 0, 0.25, 0.125, -0.75}

	ref := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	blk := NewSection(c)
	buf := append([]float64(nil), input...)
	blk.ProcessBlock(buf)

	for i := range want {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: block=%v sample=%v", i, buf[i], want[i])
		}
	}
	if blk.State() != ref.State() {
		t.Fatalf("state mismatch: block=%v sample=%v", blk.State(), ref.State())
	}
}

func TestResetAndSetState(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	s.ProcessSample(1)
	saved := s.State()
	if saved == [2]float64{} {
		t.Fatal("expected non-zero state after processing")
	}
	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("reset did not clear state: %v", s.State())
	}
	s.SetState(saved)
	if s.State() != saved {
		t.Fatalf("SetState: got %v, want %v", s.State(), saved)
	}
}
