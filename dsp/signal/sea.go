package signal

import (
	"fmt"
	"math"
)

// Swell is one sinusoidal wave train. Height is its significant wave
// height, so the amplitude is Height/(2*sqrt(2)).
type Swell struct {
	Period float64 `json:"period" yaml:"period"`
	Height float64 `json:"height" yaml:"height"`
	Phase  float64 `json:"phase" yaml:"phase"`
}

// SeaState describes a synthetic sea-surface-height record.
type SeaState struct {
	Swells      []Swell
	Mean        float64 // Still-water level
	Drift       float64 // Linear drift per time unit
	TidePeriod  float64 // 0 disables the tide
	TideRange   float64 // Peak-to-trough tide range
	Noise       float64 // Uniform noise amplitude
	Spikes      int     // Number of isolated spikes
	SpikeHeight float64
}

// Record is a synthesized sea-surface-height sequence.
type Record struct {
	Values []float64
	// Spikes lists the indices that received a spike.
	Spikes []int
}

// SeaSurface sums the components of s over the given number of samples.
func (g *Generator) SeaSurface(s SeaState, samples int) (Record, error) {
	out, err := g.Ramp(s.Mean, s.Drift, samples)
	if err != nil {
		return Record{}, err
	}

	for i, sw := range s.Swells {
		if sw.Height < 0 {
			return Record{}, fmt.Errorf("swell %d height must be >= 0: %f", i, sw.Height)
		}
		wave, err := g.Sine(sw.Period, sw.Height/(2*math.Sqrt2), sw.Phase, samples)
		if err != nil {
			return Record{}, fmt.Errorf("swell %d: %w", i, err)
		}
		add(out, wave)
	}

	if s.TidePeriod > 0 {
		tide, err := g.Sine(s.TidePeriod, s.TideRange/2, 0, samples)
		if err != nil {
			return Record{}, fmt.Errorf("tide: %w", err)
		}
		add(out, tide)
	}

	if s.Noise > 0 {
		noise, err := g.WhiteNoise(s.Noise, samples)
		if err != nil {
			return Record{}, err
		}
		add(out, noise)
	}

	spikes, err := g.Spikes(out, s.Spikes, s.SpikeHeight)
	if err != nil {
		return Record{}, err
	}

	return Record{Values: out, Spikes: spikes}, nil
}

func add(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}
