package pass

import "github.com/cwbudde/algo-wave/dsp/filter/biquad"

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
// It returns nil for order <= 0 or a cutoff outside (0, sampleRate/2).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	if _, ok := bilinearK(freq, sampleRate); !ok {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, highpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}
	return sections
}

// ButterworthHPNormalized designs a highpass cascade for a cutoff wn
// expressed as a fraction of the Nyquist frequency, 0 < wn < 1.
func ButterworthHPNormalized(wn float64, order int) []biquad.Coefficients {
	return ButterworthHP(wn, order, 2)
}

