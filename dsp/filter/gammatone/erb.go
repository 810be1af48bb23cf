package gammatone

import "math"

const (
	// Stages is the number of cascaded one-pole sections (the filter order).
	Stages = 4

	// BandwidthCorrection scales ERB(cf) so that the equivalent rectangular
	// bandwidth of the 4th-order gammatone equals ERB(cf).
	BandwidthCorrection = 1.019

	// PeakGain is the settled envelope produced by a unit-amplitude sinusoid
	// at the centre frequency.
	PeakGain = 1.0

	// settlingTimeConstants is the number of cascade time constants after
	// which the step response of the envelope is within 5e-4 of its final value.
	settlingTimeConstants = 14.0

	erbMinBandwidth = 24.7
	erbSlopePerKHz  = 4.37
	erbRateScale    = 21.4
)

// ERB returns the Glasberg & Moore equivalent rectangular bandwidth in Hz at cf.
func ERB(cf float64) float64 {
	return erbMinBandwidth * (erbSlopePerKHz*cf/1000 + 1)
}

// ERBRate returns the number of ERBs below f on the Glasberg & Moore
// ERB-rate scale. Centre frequencies spaced evenly in ERBRate overlap evenly.
func ERBRate(f float64) float64 {
	return erbRateScale * math.Log10(erbSlopePerKHz*f/1000+1)
}

// ERBRateFrequency is the inverse of ERBRate.
func ERBRateFrequency(rate float64) float64 {
	return (math.Pow(10, rate/erbRateScale) - 1) * 1000 / erbSlopePerKHz
}

// Bandwidth returns the gammatone bandwidth parameter b in Hz at cf.
func Bandwidth(cf float64) float64 {
	return BandwidthCorrection * ERB(cf)
}

// Decay returns the per-sample pole radius a = exp(-2*pi*b/fs).
func Decay(sampleRate int, cf float64) float64 {
	return math.Exp(-2 * math.Pi * Bandwidth(cf) / float64(sampleRate))
}

// NormalizationGain returns the output scale applied to the cascade for pole
// radius a. The cascade has DC gain (1-a)^-Stages and a real sinusoid
// contributes half its amplitude at base band, hence the factor 2.
func NormalizationGain(a float64) float64 {
	return 2 * PeakGain * math.Pow(1-a, Stages)
}

// SettlingSamples returns the number of samples after which the response to
// a steady input is considered settled.
func SettlingSamples(sampleRate int, cf float64) int {
	beta := 2 * math.Pi * Bandwidth(cf) / float64(sampleRate)
	return int(math.Ceil(settlingTimeConstants / beta))
}
