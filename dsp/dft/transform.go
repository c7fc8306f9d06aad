package dft

import (
	"fmt"

	"github.com/cwbudde/algo-dftmatrix/dsp/core"
)

// Forward computes the spectrum X = Fa·x by dense matrix-vector product.
func Forward(fa *Matrix, x []complex128) ([]complex128, error) {
	if fa == nil {
		return nil, fmt.Errorf("%w: nil analysis matrix", ErrInvalidSize)
	}
	return fa.MulVec(x)
}

// Inverse computes the reconstruction xr = Fs·X by dense matrix-vector product.
func Inverse(fs *Matrix, spectrum []complex128) ([]complex128, error) {
	if fs == nil {
		return nil, fmt.Errorf("%w: nil synthesis matrix", ErrInvalidSize)
	}
	return fs.MulVec(spectrum)
}

// ForwardReal is Forward for real-valued input.
func ForwardReal(fa *Matrix, x []float64) ([]complex128, error) {
	return Forward(fa, core.ToComplex(x))
}
