package gammatone

import (
	"errors"
	"fmt"
	"math"
)

// MaxSamples is the longest input accepted by a single call. Longer inputs
// fail with ErrAllocation before any output is allocated.
const MaxSamples = math.MaxInt32

var (
	// ErrInvalidParameter reports a sample rate, centre frequency, or option
	// outside its valid range. No output is produced.
	ErrInvalidParameter = errors.New("gammatone: invalid parameter")

	// ErrAllocation reports that output buffers of the required length cannot
	// be provided. It is returned only for inputs longer than MaxSamples; no
	// output is produced.
	ErrAllocation = errors.New("gammatone: cannot allocate output buffers")
)

func validateConfig(cfg Config) error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidParameter, cfg.SampleRate)
	}
	if math.IsNaN(cfg.CenterFreq) || math.IsInf(cfg.CenterFreq, 0) || cfg.CenterFreq <= 0 {
		return fmt.Errorf("%w: centre frequency must be finite and > 0: %g", ErrInvalidParameter, cfg.CenterFreq)
	}
	if nyquist := float64(cfg.SampleRate) / 2; cfg.CenterFreq >= nyquist {
		return fmt.Errorf("%w: centre frequency %g Hz must be below Nyquist (%g Hz)",
			ErrInvalidParameter, cfg.CenterFreq, nyquist)
	}
	if cfg.ResyncInterval < 0 {
		return fmt.Errorf("%w: resync interval must be >= 0: %d", ErrInvalidParameter, cfg.ResyncInterval)
	}
	return nil
}

func validateLength(n int) error {
	if n > MaxSamples {
		return fmt.Errorf("%w: %d samples exceeds limit of %d", ErrAllocation, n, MaxSamples)
	}
	return nil
}
