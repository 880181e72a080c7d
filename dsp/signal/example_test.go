package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wave/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(signal.WithSampleRate(1))
	x, err := g.Sine(4, 1, 0, 5)
	if err != nil {
		panic(err)
	}
	for i := range x {
		if math.Abs(x[i]) < 1e-12 {
			x[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}
