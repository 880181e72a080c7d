package wave

import (
	"fmt"

	timestats "github.com/cwbudde/algo-wave/stats/time"
)

// SWH returns significant wave heights, 4*std(ddof=1), over windows
// [k*step, (k+1)*step) of sse. Only windows ending strictly before len(sse)
// are used, so a window that would end exactly at the last sample is
// dropped along with any partial tail.
func SWH(sse []float64, step int) ([]float64, error) {
	if step < 2 {
		return nil, fmt.Errorf("%w: step %d (need at least 2)", ErrInvalidArgument, step)
	}
	if len(sse) < step {
		return nil, fmt.Errorf("%w: %d samples, step %d", ErrInsufficientData, len(sse), step)
	}

	swh := make([]float64, 0, len(sse)/step)
	for end := step; end < len(sse); end += step {
		swh = append(swh, 4*timestats.StdDev(sse[end-step:end], 1))
	}

	return swh, nil
}
