package gammatone

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gammatone/dsp/core"
)

const minResponseSize = 16

// Response is the magnitude response of a filter's BM output on the bins
// 0..N/2 of an N-point FFT.
type Response struct {
	SampleRate  int
	FFTSize     int
	Freqs       []float64 // bin centre frequencies in Hz
	Magnitude   []float64 // linear magnitude
	MagnitudeDB []float64 // 20*log10(Magnitude)
	Power       []float64 // squared magnitude
}

// ImpulseResponse filters a unit impulse of n samples. Rectification from the
// filter configuration applies to the BM output as usual.
func (f *Filter) ImpulseResponse(n int) (Output, error) {
	if n <= 0 {
		return Output{}, fmt.Errorf("%w: impulse response length must be > 0: %d", ErrInvalidParameter, n)
	}
	impulse := make([]float64, n)
	impulse[0] = 1
	return f.Process(impulse)
}

// MagnitudeResponse measures the BM frequency response from the FFT of the
// impulse response. fftSize is rounded up to a power of two. Half-wave
// rectification is ignored so the result describes the linear filter.
func (f *Filter) MagnitudeResponse(fftSize int) (Response, error) {
	if fftSize <= 0 {
		return Response{}, fmt.Errorf("%w: FFT size must be > 0: %d", ErrInvalidParameter, fftSize)
	}
	n := nextPowerOf2(max(fftSize, minResponseSize))

	linear := *f
	linear.cfg.HalfWaveRectify = false
	linear.re, linear.im = nil, nil
	ir, err := linear.ImpulseResponse(n)
	if err != nil {
		return Response{}, err
	}

	in := make([]complex128, n)
	for i, v := range ir.BM {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Response{}, fmt.Errorf("gammatone: FFT plan: %w", err)
	}
	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, in); err != nil {
		return Response{}, fmt.Errorf("gammatone: FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	resp := Response{
		SampleRate:  f.cfg.SampleRate,
		FFTSize:     n,
		Freqs:       make([]float64, bins),
		Magnitude:   make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
		Power:       make([]float64, bins),
	}
	vecmath.Magnitude(resp.Magnitude, re, im)
	vecmath.Power(resp.Power, re, im)

	binHz := float64(f.cfg.SampleRate) / float64(n)
	for i := range bins {
		resp.Freqs[i] = float64(i) * binHz
		resp.MagnitudeDB[i] = core.LinearToDB(resp.Magnitude[i])
	}
	return resp, nil
}

func (r Response) binHz() float64 {
	return float64(r.SampleRate) / float64(r.FFTSize)
}

func (r Response) peakBin() int {
	best := 0
	for i, v := range r.Magnitude {
		if v > r.Magnitude[best] {
			best = i
		}
	}
	return best
}

// PeakFrequency returns the frequency of maximum magnitude, refined by
// parabolic interpolation of the dB values around the peak bin.
func (r Response) PeakFrequency() float64 {
	if len(r.Magnitude) == 0 {
		return math.NaN()
	}
	i := r.peakBin()
	if i == 0 || i == len(r.Magnitude)-1 {
		return r.Freqs[i]
	}
	alpha, beta, gamma := r.MagnitudeDB[i-1], r.MagnitudeDB[i], r.MagnitudeDB[i+1]
	den := alpha - 2*beta + gamma
	if den == 0 || math.IsInf(den, 0) || math.IsNaN(den) {
		return r.Freqs[i]
	}
	delta := 0.5 * (alpha - gamma) / den
	return (float64(i) + delta) * r.binHz()
}

// PeakDB returns the maximum magnitude in dB.
func (r Response) PeakDB() float64 {
	if len(r.Magnitude) == 0 {
		return math.Inf(-1)
	}
	return core.LinearToDB(vecmath.MaxAbs(r.Magnitude))
}

// Bandwidth3dB returns the width in Hz of the region around the peak where
// the power stays within half of its maximum. Returns NaN when either edge
// lies outside the measured range.
func (r Response) Bandwidth3dB() float64 {
	if len(r.Magnitude) < 3 {
		return math.NaN()
	}
	peak := r.peakBin()
	threshold := r.MagnitudeDB[peak] - 10*math.Log10(2)

	lo := math.NaN()
	for i := peak; i > 0; i-- {
		if r.MagnitudeDB[i-1] < threshold {
			lo = crossing(r.Freqs[i-1], r.Freqs[i], r.MagnitudeDB[i-1], r.MagnitudeDB[i], threshold)
			break
		}
	}

	hi := math.NaN()
	for i := peak; i < len(r.MagnitudeDB)-1; i++ {
		if r.MagnitudeDB[i+1] < threshold {
			hi = crossing(r.Freqs[i], r.Freqs[i+1], r.MagnitudeDB[i], r.MagnitudeDB[i+1], threshold)
			break
		}
	}
	return hi - lo
}

// EquivalentRectangularBandwidth returns the width in Hz of the rectangular
// filter with the same peak power gain that passes the same total power.
func (r Response) EquivalentRectangularBandwidth() float64 {
	if len(r.Power) == 0 {
		return math.NaN()
	}
	peak := r.Power[r.peakBin()]
	if peak == 0 {
		return 0
	}
	return vecmath.Sum(r.Power) * r.binHz() / peak
}

// crossing linearly interpolates the frequency at which the dB curve between
// (f0, d0) and (f1, d1) reaches level.
func crossing(f0, f1, d0, d1, level float64) float64 {
	if d1 == d0 || math.IsInf(d0, 0) || math.IsInf(d1, 0) {
		return 0.5 * (f0 + f1)
	}
	return f0 + (level-d0)*(f1-f0)/(d1-d0)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
