package robust

import (
	"math"
	"slices"
)

// IQRToSigma converts an interquartile range into the standard deviation of
// a normal distribution with that IQR (1/1.349).
const IQRToSigma = 0.7413

// Percentile returns the p-th percentile (0 <= p <= 100) of x.
// x is not modified. It returns NaN for empty input or p out of range.
func Percentile(x []float64, p float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return PercentileSorted(sortedCopy(x), p)
}

// PercentileSorted is [Percentile] for input already sorted ascending.
func PercentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || p < 0 || p > 100 || math.IsNaN(p) {
		return math.NaN()
	}

	h := p / 100 * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}

	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Median returns the 50th percentile of x.
func Median(x []float64) float64 {
	return Percentile(x, 50)
}

// Summary holds the quartiles of a sample.
type Summary struct {
	Q1, Median, Q3 float64
}

// IQR returns Q3 - Q1.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// Quartiles returns the 25th, 50th and 75th percentiles of x with a single
// sort. x is not modified.
func Quartiles(x []float64) Summary {
	if len(x) == 0 {
		nan := math.NaN()
		return Summary{Q1: nan, Median: nan, Q3: nan}
	}

	return QuartilesSorted(sortedCopy(x))
}

// QuartilesSorted is [Quartiles] for input already sorted ascending.
func QuartilesSorted(sorted []float64) Summary {
	return Summary{
		Q1:     PercentileSorted(sorted, 25),
		Median: PercentileSorted(sorted, 50),
		Q3:     PercentileSorted(sorted, 75),
	}
}

// IQR returns the interquartile range of x.
func IQR(x []float64) float64 {
	return Quartiles(x).IQR()
}

func sortedCopy(x []float64) []float64 {
	s := slices.Clone(x)
	slices.Sort(s)
	return s
}
