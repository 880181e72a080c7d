package wave

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wave/dsp/spectrum"
	freqstats "github.com/cwbudde/algo-wave/stats/frequency"
)

// Period returns the mean wave period m0/m1 of data sampled at fs.
//
// The PSD uses Welch segments of len(data)/6 samples overlapping by
// len(data)/8. The period is in the time unit of 1/fs.
func Period(data []float64, fs float64) (float64, error) {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidArgument, fs)
	}

	n := len(data)
	segment, overlap := n/6, n/8
	if segment < 1 || overlap >= segment {
		return 0, fmt.Errorf("%w: %d samples give segment %d with overlap %d", ErrInsufficientData, n, segment, overlap)
	}

	psd, err := spectrum.Welch(data, fs,
		spectrum.WithSegmentLength(segment),
		spectrum.WithOverlap(overlap),
	)
	if err != nil {
		return 0, err
	}

	m0 := freqstats.Moment(psd.Freqs, psd.Power, 0)
	m1 := freqstats.Moment(psd.Freqs, psd.Power, 1)
	if m1 == 0 {
		return 0, fmt.Errorf("%w: first moment is zero", ErrDegenerateSpectrum)
	}

	return m0 / m1, nil
}
