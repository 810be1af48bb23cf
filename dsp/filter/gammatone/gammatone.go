package gammatone

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gammatone/dsp/core"
)

// Output holds the four index-aligned results of one filtering call.
type Output struct {
	BM        []float64 // basilar-membrane displacement
	Env       []float64 // instantaneous envelope, Env[k] >= |BM[k]|
	InstPhase []float64 // unwrapped instantaneous phase (rad)
	InstFreq  []float64 // instantaneous frequency (Hz)
}

// Len returns the number of samples in the bundle.
func (o Output) Len() int {
	return len(o.BM)
}

// Filter is one gammatone channel with precomputed coefficients.
//
// Every call to Process starts from zeroed cascade state and a fresh carrier,
// so results do not depend on earlier calls. A Filter reuses internal scratch
// buffers and is therefore not safe for concurrent use; give each goroutine
// its own Filter.
type Filter struct {
	cfg       Config
	bandwidth float64
	decay     float64
	gain      float64
	omega     float64

	re []float64
	im []float64
}

// New creates a filter for the given sample rate and centre frequency.
func New(sampleRate int, centerFreq float64, opts ...Option) (*Filter, error) {
	return NewFromConfig(applyOptions(sampleRate, centerFreq, opts))
}

// NewFromConfig creates a filter from an explicit configuration.
func NewFromConfig(cfg Config) (*Filter, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	a := Decay(cfg.SampleRate, cfg.CenterFreq)
	return &Filter{
		cfg:       cfg,
		bandwidth: Bandwidth(cfg.CenterFreq),
		decay:     a,
		gain:      NormalizationGain(a),
		omega:     2 * math.Pi * cfg.CenterFreq / float64(cfg.SampleRate),
	}, nil
}

// Process filters samples with a new channel at centerFreq. It is the
// one-shot form of New followed by Filter.Process and is safe for concurrent
// use.
func Process(samples []float64, sampleRate int, centerFreq float64, opts ...Option) (Output, error) {
	f, err := New(sampleRate, centerFreq, opts...)
	if err != nil {
		return Output{}, err
	}
	return f.Process(samples)
}

// Config returns the filter configuration.
func (f *Filter) Config() Config { return f.cfg }

// Bandwidth returns the gammatone bandwidth parameter b in Hz.
func (f *Filter) Bandwidth() float64 { return f.bandwidth }

// Decay returns the per-sample pole radius of each cascade stage.
func (f *Filter) Decay() float64 { return f.decay }

// Gain returns the normalisation applied to BM and Env.
func (f *Filter) Gain() float64 { return f.gain }

// SettlingSamples returns the number of samples before a steady input
// produces a settled response.
func (f *Filter) SettlingSamples() int {
	return SettlingSamples(f.cfg.SampleRate, f.cfg.CenterFreq)
}

// Process filters samples and returns freshly allocated outputs.
func (f *Filter) Process(samples []float64) (Output, error) {
	var out Output
	if err := f.ProcessInto(&out, samples); err != nil {
		return Output{}, err
	}
	return out, nil
}

// ProcessInto filters samples into dst, reusing the capacity of its slices.
// On error dst is left unchanged.
func (f *Filter) ProcessInto(dst *Output, samples []float64) error {
	n := len(samples)
	if err := validateLength(n); err != nil {
		return err
	}

	dst.BM = core.EnsureLen(dst.BM, n)
	dst.Env = core.EnsureLen(dst.Env, n)
	dst.InstPhase = core.EnsureLen(dst.InstPhase, n)
	dst.InstFreq = core.EnsureLen(dst.InstFreq, n)
	if n == 0 {
		return nil
	}

	f.re = core.EnsureLen(f.re, n)
	f.im = core.EnsureLen(f.im, n)

	f.run(dst.BM, samples)

	vecmath.Magnitude(dst.Env, f.re, f.im)
	vecmath.ScaleBlockInPlace(dst.Env, f.gain)
	vecmath.ScaleBlockInPlace(dst.BM, f.gain)

	unwrapPhase(dst.InstPhase, f.re, f.im, f.omega)
	instantaneousFrequency(dst.InstFreq, dst.InstPhase, f.cfg.SampleRate, f.cfg.CenterFreq)

	if f.cfg.HalfWaveRectify {
		halfWaveRectify(dst.BM)
	}
	return nil
}

// run is the sequential core: mix down, filter, and remodulate. The
// base-band cascade output is kept in f.re/f.im and the unscaled real part of
// the remodulated signal is written to bm.
func (f *Filter) run(bm, samples []float64) {
	car := newCarrier(f.cfg.SampleRate, f.cfg.CenterFreq, f.cfg.ResyncInterval)
	cas := cascade{a: f.decay}

	for k, x := range samples {
		c := car.value()
		cr, ci := real(c), imag(c)

		y := cas.step(complex(x*cr, x*ci))
		yr, yi := real(y), imag(y)
		f.re[k] = yr
		f.im[k] = yi

		// Re(y * conj(c))
		bm[k] = yr*cr + yi*ci

		car.advance()
	}
}

func halfWaveRectify(buf []float64) {
	for i, v := range buf {
		if v < 0 {
			buf[i] = 0
		}
	}
}
