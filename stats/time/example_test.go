package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-wave/stats/time"
)

func ExampleDetrend() {
	r := timestats.Detrend([]float64{1, 3, 2, 4})
	fmt.Printf("%.2f\n", r)
	// Output:
	// [-0.30 0.90 -0.90 0.30]
}
