package fader_test

import (
	"fmt"

	"github.com/cwbudde/algo-resonant/dsp/fader"
)

func ExampleFader_SetLinear() {
	f := fader.New()
	f.SetLinear(1000, 4000, 0.5, 0)

	for _, now := range []float64{0, 0.125, 0.25, 0.5} {
		fmt.Printf("t=%.3f: %.0f\n", now, f.Value(now))
	}
	fmt.Println("active:", f.Active())
	// Output:
	// t=0.000: 1000
	// t=0.125: 1750
	// t=0.250: 2500
	// t=0.500: 4000
	// active: false
}

func ExampleFader_SetLFO() {
	f := fader.New()
	f.SetLFO(500, 2000, 0.5, 0)

	for _, now := range []float64{0, 0.25, 0.5} {
		fmt.Printf("t=%.2f: %.0f\n", now, f.Value(now))
	}
	// Output:
	// t=0.00: 500
	// t=0.25: 2000
	// t=0.50: 500
}
