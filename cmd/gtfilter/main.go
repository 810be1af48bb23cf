// Command gtfilter runs one gammatone channel over a signal and writes the
// four output sequences as CSV.
//
// Usage:
//
//	gtfilter [flags] [input.wav]
//
// Without an input file a synthetic signal is generated. Flag defaults can be
// set through GAMMATONE_* environment variables, optionally loaded from a
// .env file in the working directory.
//
// Examples:
//
//	gtfilter -cf 1000 speech.wav > speech_1k.csv
//	gtfilter -signal chirp -from 200 -to 4000 -cf 1000 -o chirp.csv
//	GAMMATONE_CF=500 gtfilter -signal noise -rectify
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"

	"github.com/cwbudde/algo-gammatone/dsp/filter/gammatone"
	"github.com/cwbudde/algo-gammatone/measure/steady"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	logger := newLogger(os.Stderr, cfg.logLevel)

	if err := run(ctx, logger, cfg); err != nil {
		err := xerrors.New(err)
		logger.ErrorContext(ctx, "gtfilter failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, logger *slog.Logger, cfg config) error {
	samples, fs, err := loadInput(cfg)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "input ready",
		slog.String("source", cfg.source()),
		slog.Int("sampleRate", fs),
		slog.Int("samples", len(samples)))

	f, err := gammatone.New(fs, cfg.centerFreq,
		gammatone.WithHalfWaveRectify(cfg.rectify),
		gammatone.WithResyncInterval(cfg.resync))
	if err != nil {
		return fmt.Errorf("create filter: %w", err)
	}
	logger.DebugContext(ctx, "filter",
		slog.Float64("cf", cfg.centerFreq),
		slog.Float64("bandwidth", f.Bandwidth()),
		slog.Float64("decay", f.Decay()),
		slog.Float64("gain", f.Gain()),
		slog.Int("settling", f.SettlingSamples()))

	out, err := f.Process(samples)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	if err := writeOutput(cfg.output, out); err != nil {
		return err
	}

	res, err := steady.AnalyzeSettled(f, out)
	switch {
	case errors.Is(err, steady.ErrTooShort):
		logger.WarnContext(ctx, "signal shorter than settling time, no summary",
			slog.Int("samples", len(samples)),
			slog.Int("settling", f.SettlingSamples()))
	case err != nil:
		return fmt.Errorf("summarise: %w", err)
	default:
		logger.InfoContext(ctx, "settled response",
			slog.Int("from", res.From),
			slog.Float64("meanFreq", res.MeanFreq),
			slog.Float64("stdFreq", res.StdFreq),
			slog.Float64("meanEnv", res.MeanEnv),
			slog.Float64("ripple", res.Ripple),
			slog.Float64("peakBM", res.PeakBM))
	}
	return nil
}

func writeOutput(path string, out gammatone.Output) (err error) {
	if path == "" || path == "-" {
		return writeCSV(os.Stdout, out)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return writeCSV(file, out)
}
