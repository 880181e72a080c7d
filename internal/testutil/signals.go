package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates amplitude*sin(2*pi*freq*n/sampleRate).
func DeterministicSine(freq, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates offset + slope*n.
func Ramp(offset, slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = offset + slope*float64(i)
	}
	return out
}

// Add returns the element-wise sum of equally long signals.
func Add(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}

// SeaSurface synthesises a sea-surface-height record: a swell sine of the
// given period (in samples) and amplitude riding on a slow tide-like drift
// and a small amount of deterministic noise.
func SeaSurface(seed int64, periodSamples, amplitude float64, length int) []float64 {
	swell := DeterministicSine(1, periodSamples, amplitude, length)
	drift := Ramp(10, 0.002, length)
	noise := DeterministicNoise(seed, amplitude*0.05, length)
	return Add(swell, drift, noise)
}
