package gammatone

import (
	"math"
	"testing"
)

func TestCascadeImpulseResponse(t *testing.T) {
	const a = 0.9
	c := cascade{a: a}

	for k := range 200 {
		u := 0i
		if k == 0 {
			u = 1
		}
		y := c.step(u)
		want := binomial3(k) * math.Pow(a, float64(k))
		if math.Abs(real(y)-want) > 1e-12*math.Max(1, want) || imag(y) != 0 {
			t.Fatalf("y4[%d] = %v, want %g", k, y, want)
		}
	}
}

func TestCascadeDCGain(t *testing.T) {
	const a = 0.95
	c := cascade{a: a}
	var y complex128
	for range 5000 {
		y = c.step(complex(0, 1))
	}
	want := 1 / math.Pow(1-a, Stages)
	if math.Abs(imag(y)-want) > 1e-9*want || real(y) != 0 {
		t.Fatalf("settled output = %v, want %gi", y, want)
	}
}

func TestCascadeFlushesDenormals(t *testing.T) {
	c := cascade{a: 0.5}
	c.step(1)
	for range 3000 {
		c.step(0)
	}
	for i, v := range c.y {
		if v != 0 {
			t.Fatalf("stage %d accumulator = %v, want flushed to 0", i, v)
		}
	}
}
