package time

// LinearFit returns the least-squares line value = intercept + slope*index
// through the signal. A single sample yields slope 0.
func LinearFit(signal []float64) (intercept, slope float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0
	}

	xMean := float64(n-1) / 2
	yMean := Mean(signal)

	var sxx, sxy float64
	for i, y := range signal {
		dx := float64(i) - xMean
		sxx += dx * dx
		sxy += dx * (y - yMean)
	}

	if sxx > 0 {
		slope = sxy / sxx
	}

	return yMean - slope*xMean, slope
}

// Detrend returns a new slice holding the residual of the signal after
// subtracting its least-squares line. The residual has zero mean and zero
// slope up to rounding.
func Detrend(signal []float64) []float64 {
	out := make([]float64, len(signal))
	intercept, slope := LinearFit(signal)
	for i, y := range signal {
		out[i] = y - (intercept + slope*float64(i))
	}

	return out
}

// Scale returns a new slice with every sample multiplied by coef.
func Scale(signal []float64, coef float64) []float64 {
	out := make([]float64, len(signal))
	for i, x := range signal {
		out[i] = x * coef
	}

	return out
}
