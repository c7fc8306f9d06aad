package core

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, absolute for
// small values and relative for large ones.
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

// NearlyEqualComplex reports whether |a-b| <= eps.
func NearlyEqualComplex(a, b complex128, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	return cmplx.Abs(a-b) <= eps
}

// FlushTiny zeroes real and imaginary parts whose magnitude is below eps.
// Rounding residue such as 1e-16 then prints as an exact zero.
func FlushTiny(x complex128, eps float64) complex128 {
	re, im := real(x), imag(x)
	if math.Abs(re) < eps {
		re = 0
	}
	if math.Abs(im) < eps {
		im = 0
	}
	return complex(re, im)
}

// ToComplex widens a real slice to complex128 with zero imaginary parts.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// Split returns the real and imaginary parts of x as separate slices.
func Split(x []complex128) (re, im []float64) {
	re = make([]float64, len(x))
	im = make([]float64, len(x))
	for i, c := range x {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// MaxAbsDiff returns max_i |a[i]-b[i]| over complex slices of equal length.
func MaxAbsDiff(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}

	re, im := splitDiff(a, b)
	mag := make([]float64, len(a))
	vecmath.Magnitude(mag, re, im)
	return vecmath.MaxAbs(mag), nil
}

// MaxPartDiff returns max_i |Re(a[i]-b[i])| and max_i |Im(a[i]-b[i])|.
func MaxPartDiff(a, b []complex128) (maxRe, maxIm float64, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, 0, nil
	}

	re, im := splitDiff(a, b)
	return vecmath.MaxAbs(re), vecmath.MaxAbs(im), nil
}

func splitDiff(a, b []complex128) (re, im []float64) {
	re = make([]float64, len(a))
	im = make([]float64, len(a))
	for i := range a {
		d := a[i] - b[i]
		re[i] = real(d)
		im[i] = imag(d)
	}
	return re, im
}
