package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-gammatone/dsp/filter/gammatone"
)

const envPrefix = "GAMMATONE_"

type config struct {
	input  string
	output string

	sampleRate int
	centerFreq float64
	rectify    bool
	resync     int

	signal    string
	duration  float64
	amplitude float64
	freq      float64
	from      float64
	to        float64
	seed      int64

	logLevel slog.Level
}

var signalKinds = []string{"tone", "chirp", "noise", "impulse"}

func (c config) source() string {
	if c.input != "" {
		return c.input
	}
	return c.signal
}

// envDefaults reads GAMMATONE_* variables into cfg. Unset variables keep the
// built-in default.
func envDefaults(cfg *config, getenv func(string) string) error {
	var err error
	str := func(name string, dst *string) {
		if v := getenv(envPrefix + name); v != "" {
			*dst = v
		}
	}
	parse := func(name string, set func(string) error) {
		v := getenv(envPrefix + name)
		if v == "" || err != nil {
			return
		}
		if perr := set(v); perr != nil {
			err = fmt.Errorf("%s%s=%q: %w", envPrefix, name, v, perr)
		}
	}
	float := func(dst *float64) func(string) error {
		return func(v string) error {
			f, perr := strconv.ParseFloat(v, 64)
			*dst = f
			return perr
		}
	}

	str("OUTPUT", &cfg.output)
	str("SIGNAL", &cfg.signal)
	parse("SAMPLE_RATE", func(v string) error {
		n, perr := strconv.Atoi(v)
		cfg.sampleRate = n
		return perr
	})
	parse("CF", float(&cfg.centerFreq))
	parse("RECTIFY", func(v string) error {
		b, perr := strconv.ParseBool(v)
		cfg.rectify = b
		return perr
	})
	parse("RESYNC", func(v string) error {
		n, perr := strconv.Atoi(v)
		cfg.resync = n
		return perr
	})
	parse("DURATION", float(&cfg.duration))
	parse("AMPLITUDE", float(&cfg.amplitude))
	parse("SEED", func(v string) error {
		n, perr := strconv.ParseInt(v, 10, 64)
		cfg.seed = n
		return perr
	})
	parse("LOG_LEVEL", func(v string) error {
		return cfg.logLevel.UnmarshalText([]byte(v))
	})
	return err
}

func loadConfig(args []string, getenv func(string) string, errOut io.Writer) (config, error) {
	cfg := config{
		sampleRate: 16000,
		centerFreq: 1000,
		resync:     gammatone.DefaultResyncInterval,
		signal:     "tone",
		duration:   0.5,
		amplitude:  1,
		seed:       1,
		logLevel:   slog.LevelInfo,
	}
	if err := envDefaults(&cfg, getenv); err != nil {
		return config{}, err
	}

	fs := flag.NewFlagSet("gtfilter", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.output, "o", cfg.output, "output CSV path (default stdout)")
	fs.IntVar(&cfg.sampleRate, "fs", cfg.sampleRate, "sample rate in Hz for synthetic input")
	fs.Float64Var(&cfg.centerFreq, "cf", cfg.centerFreq, "centre frequency in Hz")
	fs.BoolVar(&cfg.rectify, "rectify", cfg.rectify, "half-wave rectify the BM output")
	fs.IntVar(&cfg.resync, "resync", cfg.resync, "carrier resync interval in samples (0 disables)")
	fs.StringVar(&cfg.signal, "signal", cfg.signal, "synthetic input: "+strings.Join(signalKinds, ", "))
	fs.Float64Var(&cfg.duration, "dur", cfg.duration, "synthetic input duration in seconds")
	fs.Float64Var(&cfg.amplitude, "amp", cfg.amplitude, "synthetic input amplitude")
	fs.Float64Var(&cfg.freq, "freq", cfg.freq, "tone frequency in Hz (default: centre frequency)")
	fs.Float64Var(&cfg.from, "from", cfg.from, "chirp start frequency in Hz (default: cf/2)")
	fs.Float64Var(&cfg.to, "to", cfg.to, "chirp end frequency in Hz (default: 2*cf, capped below Nyquist)")
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "noise seed")
	fs.TextVar(&cfg.logLevel, "log", cfg.logLevel, "log level (debug, info, warn, error)")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: gtfilter [flags] [input.wav]\n\n")
		fmt.Fprintf(out, "Filters a WAV file or a synthetic signal with one gammatone channel\n")
		fmt.Fprintf(out, "and writes k,bm,env,instp,instf as CSV.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment: %sSAMPLE_RATE, %sCF, %sSIGNAL, %sLOG_LEVEL, ...\n",
			envPrefix, envPrefix, envPrefix, envPrefix)
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return config{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.input != "" {
		return nil
	}
	known := false
	for _, k := range signalKinds {
		if c.signal == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown signal %q (want one of %s)", c.signal, strings.Join(signalKinds, ", "))
	}
	if c.duration <= 0 {
		return fmt.Errorf("duration must be > 0: %g", c.duration)
	}
	return nil
}
