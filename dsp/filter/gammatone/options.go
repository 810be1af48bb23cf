package gammatone

// DefaultResyncInterval is the default number of samples between exact
// re-seeds of the rotating carrier.
const DefaultResyncInterval = 8192

// Config holds the parameters of one gammatone channel.
type Config struct {
	SampleRate      int     // Hz
	CenterFreq      float64 // Hz, 0 < CenterFreq < SampleRate/2
	HalfWaveRectify bool    // clamp negative BM samples to zero

	// ResyncInterval is the number of samples between exact re-seeds of the
	// carrier recurrence. Zero disables re-seeding.
	ResyncInterval int
}

// Option configures a Filter.
type Option func(*Config)

// WithHalfWaveRectify enables or disables half-wave rectification of BM.
func WithHalfWaveRectify(enabled bool) Option {
	return func(cfg *Config) {
		cfg.HalfWaveRectify = enabled
	}
}

// WithResyncInterval sets how often, in samples, the carrier recurrence is
// re-seeded from an exact evaluation. Zero keeps the pure recurrence over the
// whole signal.
func WithResyncInterval(samples int) Option {
	return func(cfg *Config) {
		cfg.ResyncInterval = samples
	}
}

func applyOptions(sampleRate int, centerFreq float64, opts []Option) Config {
	cfg := Config{
		SampleRate:     sampleRate,
		CenterFreq:     centerFreq,
		ResyncInterval: DefaultResyncInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
