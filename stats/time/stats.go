package time

import "math"

// Mean returns the arithmetic mean of the signal, or 0 for an empty one.
// It uses Kahan summation.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Variance returns sum((x-mean)^2) / (n - ddof) computed with Welford's
// algorithm. ddof = 1 gives the unbiased sample variance. It returns NaN
// when n <= ddof.
func Variance(signal []float64, ddof int) float64 {
	n := len(signal)
	if n <= ddof || n == 0 {
		return math.NaN()
	}

	var mean, m2 float64
	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return m2 / float64(n-ddof)
}

// StdDev returns the square root of [Variance].
func StdDev(signal []float64, ddof int) float64 {
	return math.Sqrt(Variance(signal, ddof))
}
