package core

import "math"

const (
	defaultEpsilon = 1e-12

	// DenormalFloor is the magnitude below which FlushDenormals returns zero.
	DenormalFloor = 1e-200
)

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}
	return diff/largest <= eps
}

// FlushDenormals converts tiny values to exact zero.
// Recursive filters decaying towards zero otherwise spend their tail in
// subnormal arithmetic, which is slow on most CPUs.
func FlushDenormals(x float64) float64 {
	if x > -DenormalFloor && x < DenormalFloor {
		return 0
	}
	return x
}

// WrapPhase maps an angle in radians into the half-open interval (-pi, pi].
func WrapPhase(phi float64) float64 {
	if phi > -math.Pi && phi <= math.Pi {
		return phi
	}
	w := math.Mod(phi+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}
	if linear == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(linear)
}
