package steady

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gammatone/dsp/filter/gammatone"
)

var (
	// ErrTooShort is returned when no samples remain after the start index.
	ErrTooShort = errors.New("steady: no samples after start index")

	// ErrMismatchedOutput is returned when the output sequences differ in length.
	ErrMismatchedOutput = errors.New("steady: output sequences differ in length")
)

// Result holds statistics of the analysed region.
type Result struct {
	From    int // first analysed sample
	Samples int // number of analysed samples

	MeanFreq float64 // mean instantaneous frequency (Hz)
	StdFreq  float64 // standard deviation of instantaneous frequency (Hz)

	MeanEnv float64
	StdEnv  float64
	MinEnv  float64
	MaxEnv  float64
	Ripple  float64 // StdEnv / MeanEnv, 0 for a silent region

	PeakBM float64 // max |BM|
}

// Analyze computes statistics of out over samples [from, out.Len()).
func Analyze(out gammatone.Output, from int) (Result, error) {
	n := out.Len()
	if len(out.Env) != n || len(out.InstPhase) != n || len(out.InstFreq) != n {
		return Result{}, ErrMismatchedOutput
	}
	if from < 0 {
		return Result{}, fmt.Errorf("steady: start index must be >= 0: %d", from)
	}
	if from >= n {
		return Result{}, fmt.Errorf("%w: from=%d len=%d", ErrTooShort, from, n)
	}

	env := out.Env[from:]
	freq := out.InstFreq[from:]

	res := Result{
		From:    from,
		Samples: n - from,
		MinEnv:  floats.Min(env),
		MaxEnv:  floats.Max(env),
		PeakBM:  vecmath.MaxAbs(out.BM[from:]),
	}
	res.MeanFreq, res.StdFreq = meanStd(freq)
	res.MeanEnv, res.StdEnv = meanStd(env)
	if res.MeanEnv > 0 {
		res.Ripple = res.StdEnv / res.MeanEnv
	}
	return res, nil
}

// AnalyzeSettled analyses out from the settling point of f.
func AnalyzeSettled(f *gammatone.Filter, out gammatone.Output) (Result, error) {
	return Analyze(out, f.SettlingSamples())
}

func meanStd(x []float64) (mean, std float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
