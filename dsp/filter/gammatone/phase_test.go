package gammatone

import (
	"math"
	"testing"
)

func TestUnwrapPhaseTracksRotation(t *testing.T) {
	// A base-band phasor rotating at 2.5 rad/sample wraps on almost every
	// sample; with omega = 0.5 the remodulated phase advances 3 rad/sample.
	const (
		rate  = 2.5
		omega = 0.5
		n     = 200
	)
	re := make([]float64, n)
	im := make([]float64, n)
	for k := range n {
		im[k], re[k] = math.Sincos(rate * float64(k))
	}

	phase := make([]float64, n)
	unwrapPhase(phase, re, im, omega)

	for k := range n {
		want := (rate + omega) * float64(k)
		if math.Abs(phase[k]-want) > 1e-9 {
			t.Fatalf("phase[%d] = %.12f, want %.12f", k, phase[k], want)
		}
	}
}

func TestUnwrapPhaseZeroSamples(t *testing.T) {
	re := []float64{0, 0, 0}
	im := []float64{0, 0, 0}
	phase := make([]float64, 3)
	unwrapPhase(phase, re, im, 0.25)
	want := []float64{0, 0.25, 0.5}
	for i := range want {
		if phase[i] != want[i] {
			t.Fatalf("phase[%d] = %g, want %g", i, phase[i], want[i])
		}
	}
}

func TestInstantaneousFrequency(t *testing.T) {
	phase := []float64{0, math.Pi / 4, math.Pi / 2, math.Pi}
	dst := make([]float64, len(phase))
	instantaneousFrequency(dst, phase, 8000, 1000)

	want := []float64{1000, 1000, 1000, 2000}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-9 {
			t.Fatalf("instf[%d] = %g, want %g", i, dst[i], want[i])
		}
	}

	single := []float64{0}
	instantaneousFrequency(single, []float64{1.5}, 8000, 1234)
	if single[0] != 1234 {
		t.Fatalf("single-sample instf = %g, want 1234", single[0])
	}

	instantaneousFrequency(nil, nil, 8000, 1000)
}
