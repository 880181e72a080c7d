package frequency

import "math"

// Moment returns the n-th spectral moment sum(f_k^n * P_k).
// Bins beyond the shorter slice are ignored.
//
//	m0 = sum(P_k)          total power
//	m1 = sum(f_k * P_k)    first moment
func Moment(freqs, power []float64, n int) float64 {
	k := min(len(freqs), len(power))

	var sum float64
	for i := range k {
		switch n {
		case 0:
			sum += power[i]
		case 1:
			sum += freqs[i] * power[i]
		default:
			sum += math.Pow(freqs[i], float64(n)) * power[i]
		}
	}

	return sum
}

// PeakBin returns the index of the largest power value. Ties resolve to
// the lowest index. It returns -1 for an empty spectrum.
func PeakBin(power []float64) int {
	if len(power) == 0 {
		return -1
	}

	peak := 0
	for i, p := range power {
		if p > power[peak] {
			peak = i
		}
	}

	return peak
}

// Centroid returns m1/m0, the power-weighted mean frequency, or 0 when the
// spectrum carries no power.
func Centroid(freqs, power []float64) float64 {
	m0 := Moment(freqs, power, 0)
	if m0 == 0 {
		return 0
	}

	return Moment(freqs, power, 1) / m0
}
