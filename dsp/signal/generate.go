package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate in samples per time unit. Values
// <= 0 are ignored.
func WithSampleRate(fs float64) Option {
	return func(g *Generator) {
		if fs > 0 {
			g.sampleRate = fs
		}
	}
}

// WithSeed sets deterministic random seed for noise and spike generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator with sample rate 1 and seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 1, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Seed returns the configured seed.
func (g *Generator) Seed() int64 { return g.seed }

// Sine generates amplitude*sin(2*pi*period^-1*t + phase) for t = i/fs.
func (g *Generator) Sine(period, amplitude, phase float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if !(period > 0) {
		return nil, fmt.Errorf("sine period must be > 0: %f", period)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi / (period * g.sampleRate)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Ramp generates offset + slope*t for t = i/fs.
func (g *Generator) Ramp(offset, slope float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ramp samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = offset + slope*float64(i)/g.sampleRate
	}
	return out, nil
}

// Spikes adds count spikes of +-height at distinct random positions of x
// in place and returns their indices in ascending order.
func (g *Generator) Spikes(x []float64, count int, height float64) ([]int, error) {
	if count < 0 || count > len(x) {
		return nil, fmt.Errorf("spike count must be in [0, %d]: %d", len(x), count)
	}
	rng := rand.New(rand.NewSource(g.seed + 1))
	perm := rng.Perm(len(x))[:count]
	idx := make([]int, 0, count)
	marked := make([]bool, len(x))
	for _, i := range perm {
		marked[i] = true
	}
	for i, m := range marked {
		if !m {
			continue
		}
		sign := 1.0
		if rng.Intn(2) == 0 {
			sign = -1
		}
		x[i] += sign * height
		idx = append(idx, i)
	}
	return idx, nil
}
