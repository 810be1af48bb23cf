package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mjibson/go-dsp/wav"

	"github.com/cwbudde/algo-gammatone/dsp/core"
	"github.com/cwbudde/algo-gammatone/dsp/signal"
)

var errNoChannels = errors.New("wav: no channels")

func loadInput(cfg config) ([]float64, int, error) {
	if cfg.input == "" {
		samples, err := synthesize(cfg)
		return samples, cfg.sampleRate, err
	}

	file, err := os.Open(cfg.input)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	samples, fs, err := readWAV(file)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", cfg.input, err)
	}
	return samples, fs, nil
}

// readWAV decodes a PCM or float WAV stream and returns its first channel
// scaled to [-1, 1].
func readWAV(r io.Reader) ([]float64, int, error) {
	w, err := wav.New(r)
	if err != nil {
		return nil, 0, err
	}
	channels := int(w.NumChannels)
	if channels == 0 {
		return nil, 0, errNoChannels
	}

	interleaved, err := readAllSamples(w)
	if err != nil {
		return nil, 0, err
	}

	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	for i := range mono {
		mono[i] = interleaved[i*channels]
	}
	return mono, int(w.SampleRate), nil
}

// readAllSamples reads the data chunk to its end. w.Samples rounds the chunk
// size down to a multiple of 8 samples, so it is only used for the bulk read
// and the remainder is read one sample at a time.
func readAllSamples(w *wav.Wav) ([]float64, error) {
	out := make([]float64, 0, w.Samples+8)
	if w.Samples > 0 {
		raw, err := w.ReadSamples(w.Samples)
		if err != nil {
			return nil, err
		}
		if out, err = appendSamples(out, raw); err != nil {
			return nil, err
		}
	}

	for {
		raw, err := w.ReadSamples(1)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if out, err = appendSamples(out, raw); err != nil {
			return nil, err
		}
	}
}

func appendSamples(dst []float64, raw any) ([]float64, error) {
	switch d := raw.(type) {
	case []uint8:
		for _, v := range d {
			dst = append(dst, (float64(v)-128)/128)
		}
	case []int16:
		for _, v := range d {
			dst = append(dst, float64(v)/32768)
		}
	case []float32:
		for _, v := range d {
			dst = append(dst, float64(v))
		}
	default:
		return nil, fmt.Errorf("wav: unsupported sample type %T", raw)
	}
	return dst, nil
}

func synthesize(cfg config) ([]float64, error) {
	n := int(math.Round(cfg.duration * float64(cfg.sampleRate)))
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(cfg.sampleRate))},
		signal.WithSeed(cfg.seed),
	)

	switch cfg.signal {
	case "tone":
		freq := cfg.freq
		if freq <= 0 {
			freq = cfg.centerFreq
		}
		return gen.Sine(freq, cfg.amplitude, n)
	case "chirp":
		from, to := chirpRange(cfg)
		return gen.LinearSweep(from, to, cfg.amplitude, n)
	case "noise":
		return gen.WhiteNoise(cfg.amplitude, n)
	case "impulse":
		return gen.Impulse(cfg.amplitude, n, 0)
	default:
		return nil, fmt.Errorf("unknown signal %q", cfg.signal)
	}
}

// chirpRange fills unset chirp bounds with an octave either side of the
// centre frequency, kept below Nyquist.
func chirpRange(cfg config) (from, to float64) {
	from, to = cfg.from, cfg.to
	if from <= 0 {
		from = cfg.centerFreq / 2
	}
	if to <= 0 {
		to = min(2*cfg.centerFreq, 0.45*float64(cfg.sampleRate))
	}
	return from, to
}
