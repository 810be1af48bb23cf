package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-gammatone/dsp/core"
)

// Generator creates deterministic test signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates amplitude*sin(2*pi*f*k/fs).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// LinearSweep generates a sine whose frequency moves linearly from startHz to
// endHz over the length of the signal.
func (g *Generator) LinearSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("sweep", samples); err != nil {
		return nil, err
	}
	if startHz < 0 || endHz < 0 {
		return nil, fmt.Errorf("sweep frequencies must be >= 0: %f, %f", startHz, endHz)
	}
	out := make([]float64, samples)
	duration := float64(samples) / g.cfg.SampleRate
	rate := (endHz - startHz) / duration
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] = amplitude * math.Sin(2*math.Pi*(startHz*t+0.5*rate*t*t))
	}
	return out, nil
}

// SweepFrequency returns the instantaneous frequency of LinearSweep at sample k.
func (g *Generator) SweepFrequency(startHz, endHz float64, samples, k int) float64 {
	if samples <= 0 {
		return startHz
	}
	return startHz + (endHz-startHz)*float64(k)/float64(samples)
}

// Impulse generates a single sample of the given amplitude at pos.
func (g *Generator) Impulse(amplitude float64, samples, pos int) ([]float64, error) {
	if err := g.validate("impulse", samples); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d (samples=%d)", pos, samples)
	}
	out := make([]float64, samples)
	out[pos] = amplitude
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func (g *Generator) validate(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", kind, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", kind, g.cfg.SampleRate)
	}
	return nil
}
