// Package heart evaluates the heart curve
//
//	y = |x|^(2/3) + a * sin(k*x) * sqrt(3 - x^2)
//
// over a fixed sample domain, plus the smoothstep easing used to ramp k.
package heart

import "math"

// Domain is an evenly spaced, read-only set of x samples spanning [-bound, bound].
type Domain []float64

// NewDomain returns n evenly spaced samples over [-bound, bound], endpoints included.
func NewDomain(n int, bound float64) Domain {
	if n <= 0 {
		return Domain{}
	}
	if n == 1 {
		return Domain{0}
	}
	xs := make(Domain, n)
	step := 2 * bound / float64(n-1)
	for i := range xs {
		xs[i] = -bound + float64(i)*step
	}
	// pin the last sample so rounding cannot push it past the bound
	xs[n-1] = bound
	return xs
}

// Evaluate returns y for every x. The sqrt term is clamped at zero so samples
// sitting on the domain edge never produce NaN.
func Evaluate(x []float64, k, amplitude float64) []float64 {
	return EvaluateInto(make([]float64, len(x)), x, k, amplitude)
}

// EvaluateInto is Evaluate writing into dst, which is grown if it is too short.
func EvaluateInto(dst, x []float64, k, amplitude float64) []float64 {
	if cap(dst) < len(x) {
		dst = make([]float64, len(x))
	}
	dst = dst[:len(x)]
	for i, xi := range x {
		base := math.Pow(math.Abs(xi), 2.0/3.0)
		envelope := math.Sqrt(math.Max(0, 3-xi*xi))
		dst[i] = base + amplitude*math.Sin(k*xi)*envelope
	}
	return dst
}

// Ease is the smoothstep 3t^2 - 2t^3 with t clamped to [0, 1].
func Ease(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
