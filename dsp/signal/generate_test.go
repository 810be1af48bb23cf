package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-gammatone/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestGeneratorValidation(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(100, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
	if _, err := g.Impulse(1, 8, 8); err == nil {
		t.Fatal("expected error for out-of-range impulse position")
	}
	if _, err := g.LinearSweep(-1, 100, 1, 8); err == nil {
		t.Fatal("expected error for negative sweep frequency")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(n1[i]) > 1 {
			t.Fatalf("noise[%d] = %v exceeds amplitude", i, n1[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator()
	out, err := g.Impulse(0.75, 8, 3)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	for i, v := range out {
		want := 0.0
		if i == 3 {
			want = 0.75
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestLinearSweepFrequency(t *testing.T) {
	const (
		fs      = 16000.0
		samples = 16000
	)
	g := NewGenerator(core.WithSampleRate(fs))
	out, err := g.LinearSweep(500, 1500, 1, samples)
	if err != nil {
		t.Fatalf("LinearSweep() error = %v", err)
	}
	if len(out) != samples {
		t.Fatalf("len = %d, want %d", len(out), samples)
	}

	// Count zero crossings in the first and last tenth: a rising sweep has
	// more crossings at the end.
	crossings := func(x []float64) int {
		n := 0
		for i := 1; i < len(x); i++ {
			if (x[i-1] < 0) != (x[i] < 0) {
				n++
			}
		}
		return n
	}
	head := crossings(out[:samples/10])
	tail := crossings(out[samples-samples/10:])
	if tail <= head {
		t.Fatalf("tail crossings %d <= head crossings %d for rising sweep", tail, head)
	}

	if f := g.SweepFrequency(500, 1500, samples, samples/2); f != 1000 {
		t.Fatalf("SweepFrequency(mid) = %v, want 1000", f)
	}
}
