package gammatone

import "github.com/cwbudde/algo-gammatone/dsp/core"

// cascade is Stages identical one-pole complex leaky integrators in series:
//
//	y_i[k] = y_{i-1}[k] + a*y_i[k-1],  y_0 = u
//
// Each stage keeps exactly one accumulator. Four stages give the impulse
// response C(k+3,3)*a^k, the sampled t^3*exp(-2*pi*b*t) gammatone envelope.
type cascade struct {
	a float64
	y [Stages]complex128
}

// step feeds one base-band sample through all stages and returns the output
// of the last one.
func (c *cascade) step(u complex128) complex128 {
	re, im := real(u), imag(u)
	for i := range c.y {
		re = core.FlushDenormals(re + c.a*real(c.y[i]))
		im = core.FlushDenormals(im + c.a*imag(c.y[i]))
		c.y[i] = complex(re, im)
	}
	return c.y[Stages-1]
}
