package gammatone

import (
	"math"

	"github.com/cwbudde/algo-gammatone/dsp/core"
)

// basebandAngle is angle(re + j*im), defined as 0 for an exactly zero sample.
func basebandAngle(re, im float64) float64 {
	if re == 0 && im == 0 {
		return 0
	}
	return math.Atan2(im, re)
}

// unwrapPhase writes the continuous phase of the remodulated output,
// angle(y4[k]) + omega*k, into dst. Successive steps are wrapped into
// (-pi, pi] before accumulation. The carrier term is added per step rather
// than as omega*k so the argument of the wrap stays small on long signals.
func unwrapPhase(dst, re, im []float64, omega float64) {
	if len(dst) == 0 {
		return
	}
	prev := basebandAngle(re[0], im[0])
	dst[0] = prev
	for k := 1; k < len(dst); k++ {
		cur := basebandAngle(re[k], im[k])
		dst[k] = dst[k-1] + core.WrapPhase(cur-prev+omega)
		prev = cur
	}
}

// instantaneousFrequency writes the backward difference of phase scaled to
// Hz into dst. The first sample has no predecessor and repeats dst[1]; a
// single-sample signal reports the centre frequency.
func instantaneousFrequency(dst, phase []float64, sampleRate int, cf float64) {
	switch len(dst) {
	case 0:
		return
	case 1:
		dst[0] = cf
		return
	}
	scale := float64(sampleRate) / (2 * math.Pi)
	for k := 1; k < len(dst); k++ {
		dst[k] = scale * (phase[k] - phase[k-1])
	}
	dst[0] = dst[1]
}
