package gammatone

import "math"

// carrier generates exp(-j*2*pi*cf*k/fs) for successive k by repeated
// multiplication with a fixed rotation. Rounding makes |c| drift away from 1
// over long signals; with a positive resync interval the value is re-seeded
// exactly every resync samples, otherwise the drift is left as is.
type carrier struct {
	c      complex128
	rot    complex128
	k      int
	resync int
	fs     float64
	cf     float64
}

func newCarrier(sampleRate int, cf float64, resync int) carrier {
	fs := float64(sampleRate)
	sin, cos := math.Sincos(2 * math.Pi * cf / fs)
	return carrier{
		c:      1,
		rot:    complex(cos, -sin),
		resync: resync,
		fs:     fs,
		cf:     cf,
	}
}

func (c *carrier) value() complex128 {
	return c.c
}

func (c *carrier) advance() {
	c.k++
	if c.resync > 0 && c.k%c.resync == 0 {
		c.c = exactCarrier(c.k, c.fs, c.cf)
		return
	}
	c.c *= c.rot
}

// exactCarrier evaluates exp(-j*2*pi*cf*k/fs) directly. The argument is
// reduced to whole cycles first so Sincos stays accurate for large k.
func exactCarrier(k int, fs, cf float64) complex128 {
	cycles := math.Mod(float64(k)*cf, fs) / fs
	sin, cos := math.Sincos(2 * math.Pi * cycles)
	return complex(cos, -sin)
}
