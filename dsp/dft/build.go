package dft

import (
	"fmt"
	"math"
)

// Matrices is an analysis/synthesis pair built under one convention.
//
// Keeping both halves together is what prevents mixing conventions: the
// methods on Matrices always pair Analysis with its own Synthesis.
type Matrices struct {
	Convention Convention
	Analysis   *Matrix
	Synthesis  *Matrix
}

// Build constructs the n-point analysis matrix Fa and synthesis matrix Fs:
//
//	Fa[mu][k] = exp(-j*2*pi/N * mu*k) * scaleA
//	Fs[k][mu] = exp(+j*2*pi/N * mu*k) * scaleS
//
// with scaleA and scaleS taken from c. Fs is the inverse of Fa.
func Build(n int, c Convention) (*Matrices, error) {
	fa, err := AnalysisMatrix(n, c)
	if err != nil {
		return nil, err
	}
	fs, err := SynthesisMatrix(n, c)
	if err != nil {
		return nil, err
	}
	return &Matrices{Convention: c, Analysis: fa, Synthesis: fs}, nil
}

// AnalysisMatrix builds only the forward (analysis) matrix Fa.
func AnalysisMatrix(n int, c Convention) (*Matrix, error) {
	scale, _, err := c.Scales(n)
	if err != nil {
		return nil, err
	}
	return kernel(n, -1, scale)
}

// SynthesisMatrix builds only the inverse (synthesis) matrix Fs.
func SynthesisMatrix(n int, c Convention) (*Matrix, error) {
	_, scale, err := c.Scales(n)
	if err != nil {
		return nil, err
	}
	return kernel(n, +1, scale)
}

// kernel fills exp(sign*j*2*pi/N * A[r][c]) * scale. Since A is symmetric the
// row/column roles of mu and k do not matter. Exponents are reduced modulo N
// so every entry comes from the same N-entry twiddle table.
func kernel(n int, sign, scale float64) (*Matrix, error) {
	a, err := OuterIndex(n)
	if err != nil {
		return nil, err
	}

	tw := twiddles(n, sign, scale)
	m := newMatrix(n)
	for r, row := range a {
		for c, e := range row {
			m.data[r*n+c] = tw[e%n]
		}
	}
	return m, nil
}

// twiddles returns scale*exp(sign*j*2*pi*i/n) for i in [0,n).
func twiddles(n int, sign, scale float64) []complex128 {
	tw := make([]complex128, n)
	step := 2 * math.Pi / float64(n)
	for i := range tw {
		s, c := math.Sincos(step * float64(i))
		tw[i] = complex(scale*c, sign*scale*s)
	}
	return tw
}

// Forward applies the analysis matrix.
func (m *Matrices) Forward(x []complex128) ([]complex128, error) {
	return Forward(m.Analysis, x)
}

// Inverse applies the synthesis matrix.
func (m *Matrices) Inverse(spectrum []complex128) ([]complex128, error) {
	return Inverse(m.Synthesis, spectrum)
}

// RoundTrip returns Fs·(Fa·x) together with the intermediate spectrum.
func (m *Matrices) RoundTrip(x []complex128) (reconstructed, spectrum []complex128, err error) {
	spectrum, err = m.Forward(x)
	if err != nil {
		return nil, nil, err
	}
	reconstructed, err = m.Inverse(spectrum)
	if err != nil {
		return nil, nil, err
	}
	return reconstructed, spectrum, nil
}

// IdentityError returns max|Fs·Fa - I|.
func (m *Matrices) IdentityError() (float64, error) {
	prod, err := m.Synthesis.Mul(m.Analysis)
	if err != nil {
		return 0, err
	}
	id, err := Identity(prod.Size())
	if err != nil {
		return 0, err
	}
	d, err := prod.MaxAbsDiff(id)
	if err != nil {
		return 0, fmt.Errorf("dft: identity check: %w", err)
	}
	return d, nil
}
