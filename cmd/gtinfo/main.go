// Command gtinfo prints properties of gammatone filters.
//
// Usage:
//
//	gtinfo [flags] [centre-frequency ...]
//
// Without arguments it prints a default set of centre frequencies.
//
// Examples:
//
//	gtinfo 1000
//	gtinfo -fs 44100 250 500 1000 2000 4000
//	gtinfo -fs 16000 -fft 65536 100
//	gtinfo -fs 16000 -erb 32 -low 80
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-gammatone/dsp/filter/gammatone"
)

var defaultCenters = []float64{125, 250, 500, 1000, 2000, 4000}

func main() {
	fs := flag.Int("fs", 16000, "sample rate in Hz")
	fftSize := flag.Int("fft", 16384, "FFT size for the measured response")
	erbCount := flag.Int("erb", 0, "print n centre frequencies spaced evenly on the ERB-rate scale")
	low := flag.Float64("low", 50, "lowest centre frequency for -erb")
	high := flag.Float64("high", 0, "highest centre frequency for -erb (default: 0.45*fs)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gtinfo [flags] [centre-frequency ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints design and measured properties of gammatone filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a default set of centre frequencies.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gtinfo 1000\n")
		fmt.Fprintf(os.Stderr, "  gtinfo -fs 44100 250 500 1000 2000 4000\n")
		fmt.Fprintf(os.Stderr, "  gtinfo -fs 16000 -erb 32 -low 80\n")
	}
	flag.Parse()

	centers, err := resolveCenters(flag.Args(), *erbCount, *low, *high, *fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printTable(os.Stdout, *fs, *fftSize, centers); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveCenters(args []string, erbCount int, low, high float64, fs int) ([]float64, error) {
	if erbCount > 0 {
		if high <= 0 {
			high = 0.45 * float64(fs)
		}
		return erbSpaced(low, high, erbCount)
	}
	if len(args) == 0 {
		return defaultCenters, nil
	}

	centers := make([]float64, 0, len(args))
	for _, arg := range args {
		cf, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid centre frequency %q", arg)
		}
		centers = append(centers, cf)
	}
	return centers, nil
}

// erbSpaced returns n centre frequencies from low to high with equal
// spacing on the ERB-rate scale.
func erbSpaced(low, high float64, n int) ([]float64, error) {
	if low <= 0 || high <= low {
		return nil, fmt.Errorf("ERB range must satisfy 0 < low < high: %g, %g", low, high)
	}
	if n == 1 {
		return []float64{low}, nil
	}
	lo, hi := gammatone.ERBRate(low), gammatone.ERBRate(high)
	out := make([]float64, n)
	for i := range out {
		out[i] = gammatone.ERBRateFrequency(lo + (hi-lo)*float64(i)/float64(n-1))
	}
	return out, nil
}

func printTable(w io.Writer, fs, fftSize int, centers []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "CF [Hz]\tERB [Hz]\tb [Hz]\tDecay a\tGain\tSettling\tPeak [Hz]\tPeak [dB]\tBW 3dB [Hz]\tERB meas [Hz]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t--------\t------\t-------\t----\t--------\t---------\t---------\t-----------\t-------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, cf := range centers {
		f, err := gammatone.New(fs, cf)
		if err != nil {
			if _, werr := fmt.Fprintf(tw, "%.2f\t(%v)\n", cf, err); werr != nil {
				return fmt.Errorf("write row: %w", werr)
			}
			continue
		}
		resp, err := f.MagnitudeResponse(fftSize)
		if err != nil {
			return fmt.Errorf("cf %.2f: %w", cf, err)
		}

		if _, err := fmt.Fprintf(tw, "%.2f\t%.3f\t%.3f\t%.6f\t%.4g\t%d\t%.2f\t%.3f\t%.2f\t%.2f\n",
			cf,
			gammatone.ERB(cf),
			f.Bandwidth(),
			f.Decay(),
			f.Gain(),
			f.SettlingSamples(),
			resp.PeakFrequency(),
			resp.PeakDB(),
			resp.Bandwidth3dB(),
			resp.EquivalentRectangularBandwidth(),
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
