package wave

import "fmt"

// Params bundles the inputs of [Analyze].
type Params struct {
	Filter FilterSpec `json:"filter" yaml:"filter"`
	// SWHStep is the SWH window length in samples.
	SWHStep int `json:"swh_step" yaml:"swh_step"`
	// SampleRate is passed to [Period].
	SampleRate float64 `json:"sample_rate" yaml:"sample_rate"`
	// WavelengthStep defaults to [DefaultWavelengthStep] when zero.
	WavelengthStep int `json:"wavelength_step" yaml:"wavelength_step"`
}

// Report is the result of [Analyze].
type Report struct {
	SSE        []float64 `json:"-" yaml:"-"`
	SWH        []float64 `json:"swh" yaml:"swh"`
	Period     float64   `json:"period" yaml:"period"`
	Wavelength float64   `json:"wavelength" yaml:"wavelength"`
}

// Analyze runs SSE, then SWH, Period and Wavelength on the SSE.
// The first failing stage aborts the analysis.
func Analyze(ssh []float64, p Params) (Report, error) {
	sse, err := SSE(ssh, p.Filter)
	if err != nil {
		return Report{}, fmt.Errorf("sse: %w", err)
	}

	swh, err := SWH(sse, p.SWHStep)
	if err != nil {
		return Report{}, fmt.Errorf("swh: %w", err)
	}

	period, err := Period(sse, p.SampleRate)
	if err != nil {
		return Report{}, fmt.Errorf("period: %w", err)
	}

	step := p.WavelengthStep
	if step == 0 {
		step = DefaultWavelengthStep
	}

	wl, err := Wavelength(sse, step)
	if err != nil {
		return Report{}, fmt.Errorf("wavelength: %w", err)
	}

	return Report{SSE: sse, SWH: swh, Period: period, Wavelength: wl}, nil
}
