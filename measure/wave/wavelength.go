package wave

import (
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/spectrum"
	freqstats "github.com/cwbudde/algo-wave/stats/frequency"
)

// DefaultWavelengthStep is the Welch segment length used by [Analyze] when
// Params.WavelengthStep is zero.
const DefaultWavelengthStep = 256

// Wavelength returns 1/f for the frequency f (cycles per sample) of the
// largest Welch PSD bin of sse. step is the segment length; it is clamped
// to len(sse). Ties resolve to the lowest frequency.
func Wavelength(sse []float64, step int) (float64, error) {
	if step <= 0 {
		return 0, fmt.Errorf("%w: step %d", ErrInvalidArgument, step)
	}
	if len(sse) == 0 {
		return 0, fmt.Errorf("%w: empty sequence", ErrInsufficientData)
	}

	psd, err := spectrum.Welch(sse, 1, spectrum.WithSegmentLength(step))
	if err != nil {
		return 0, err
	}

	peak := freqstats.PeakBin(psd.Power)
	if peak < 0 || psd.Freqs[peak] == 0 {
		return 0, fmt.Errorf("%w: spectral peak at DC", ErrDegenerateSpectrum)
	}

	return 1 / psd.Freqs[peak], nil
}
