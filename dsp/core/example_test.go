package core_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gammatone/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(22050))
	fmt.Printf("sampleRate=%.0f\n", cfg.SampleRate)
	// Output:
	// sampleRate=22050
}

func ExampleWrapPhase() {
	fmt.Printf("%.4f\n", core.WrapPhase(3*math.Pi/2))
	// Output:
	// -1.5708
}
