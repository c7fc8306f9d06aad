package dft

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-dftmatrix/dsp/core"
)

// Matrix is a dense square complex matrix stored row-major.
//
// A Matrix is never modified after construction; every operation returns a
// new value, so a Matrix may be shared between goroutines.
type Matrix struct {
	n    int
	data []complex128
}

// NewMatrix creates an n×n matrix from row-major data. The data is copied.
func NewMatrix(n int, data []complex128) (*Matrix, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: %d values for %dx%d matrix", ErrDimensionMismatch, len(data), n, n)
	}

	m := newMatrix(n)
	copy(m.data, data)
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	m := newMatrix(n)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m, nil
}

func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]complex128, n*n)}
}

// Size returns N for an N×N matrix.
func (m *Matrix) Size() int { return m.n }

// At returns the entry at row r, column c. It panics if r or c is out of range.
func (m *Matrix) At(r, c int) complex128 {
	if r < 0 || r >= m.n || c < 0 || c >= m.n {
		panic(fmt.Sprintf("dft: index (%d,%d) out of range for %dx%d matrix", r, c, m.n, m.n))
	}
	return m.data[r*m.n+c]
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) ([]complex128, error) {
	if err := validateIndex(m, r); err != nil {
		return nil, err
	}
	out := make([]complex128, m.n)
	copy(out, m.data[r*m.n:(r+1)*m.n])
	return out, nil
}

// Col returns a copy of column c.
func (m *Matrix) Col(c int) ([]complex128, error) {
	if err := validateIndex(m, c); err != nil {
		return nil, err
	}
	out := make([]complex128, m.n)
	for r := range out {
		out[r] = m.data[r*m.n+c]
	}
	return out, nil
}

// Transpose returns mᵗ.
func (m *Matrix) Transpose() *Matrix {
	out := newMatrix(m.n)
	for r := range m.n {
		for c := range m.n {
			out.data[c*m.n+r] = m.data[r*m.n+c]
		}
	}
	return out
}

// ConjugateTranspose returns the Hermitian adjoint mᴴ.
func (m *Matrix) ConjugateTranspose() *Matrix {
	out := newMatrix(m.n)
	for r := range m.n {
		for c := range m.n {
			out.data[c*m.n+r] = cmplx.Conj(m.data[r*m.n+c])
		}
	}
	return out
}

// Scale returns s·m.
func (m *Matrix) Scale(s complex128) *Matrix {
	out := newMatrix(m.n)
	for i, v := range m.data {
		out.data[i] = s * v
	}
	return out
}

// Mul returns the matrix product m·other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if other == nil || other.n != m.n {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %s", ErrDimensionMismatch, m.n, m.n, describe(other))
	}

	n := m.n
	out := newMatrix(n)
	for r := range n {
		row := m.data[r*n : (r+1)*n]
		dst := out.data[r*n : (r+1)*n]
		for k, a := range row {
			src := other.data[k*n : (k+1)*n]
			for c, b := range src {
				dst[c] += a * b
			}
		}
	}
	return out, nil
}

// MulVec returns the matrix-vector product m·x.
func (m *Matrix) MulVec(x []complex128) ([]complex128, error) {
	if len(x) != m.n {
		return nil, fmt.Errorf("%w: vector length %d, matrix size %d", ErrDimensionMismatch, len(x), m.n)
	}

	n := m.n
	out := make([]complex128, n)
	for r := range n {
		var acc complex128
		for c, v := range m.data[r*n : (r+1)*n] {
			acc += v * x[c]
		}
		out[r] = acc
	}
	return out, nil
}

// MaxAbsDiff returns the largest entry-wise magnitude of m-other.
func (m *Matrix) MaxAbsDiff(other *Matrix) (float64, error) {
	if other == nil || other.n != m.n {
		return 0, fmt.Errorf("%w: cannot compare %dx%d with %s", ErrDimensionMismatch, m.n, m.n, describe(other))
	}
	return core.MaxAbsDiff(m.data, other.data)
}

// IsIdentity reports whether every entry is within tol of the identity.
func (m *Matrix) IsIdentity(tol float64) bool {
	id, err := Identity(m.n)
	if err != nil {
		return false
	}
	d, err := m.MaxAbsDiff(id)
	return err == nil && d <= tol
}

func describe(m *Matrix) string {
	if m == nil {
		return "nil matrix"
	}
	return fmt.Sprintf("%dx%d", m.n, m.n)
}
