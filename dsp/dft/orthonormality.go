package dft

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultTolerance is the absolute tolerance used by checks when no
// [WithTolerance] option is given.
const DefaultTolerance = 1e-9

// CheckOption configures orthonormality checks.
type CheckOption func(*checkConfig)

type checkConfig struct {
	tol float64
}

// WithTolerance sets the absolute tolerance. Non-positive values are ignored.
func WithTolerance(tol float64) CheckOption {
	return func(c *checkConfig) {
		if tol > 0 {
			c.tol = tol
		}
	}
}

func applyCheckOptions(opts []CheckOption) checkConfig {
	cfg := checkConfig{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// OrthonormalityReport holds the worst-case inner products of a matrix.
type OrthonormalityReport struct {
	// MaxColumnInnerProduct is max |<Fa[:,i], Fa[:,j]>| over i != j.
	MaxColumnInnerProduct float64
	// MaxRowInnerProduct is max |<Fa[i,:], Fa[j,:]>| over i != j.
	MaxRowInnerProduct float64
	// MaxNormDeviation is max | |<v,v>| - 1 | over all rows and columns v.
	MaxNormDeviation float64
	Tolerance        float64
}

// Orthogonal reports whether all distinct rows and all distinct columns are
// mutually orthogonal within tolerance.
func (r OrthonormalityReport) Orthogonal() bool {
	return r.MaxColumnInnerProduct < r.Tolerance && r.MaxRowInnerProduct < r.Tolerance
}

// Orthonormal reports whether the matrix is orthogonal and every row and
// column has unit norm, i.e. the matrix is unitary.
func (r OrthonormalityReport) Orthonormal() bool {
	return r.Orthogonal() && r.MaxNormDeviation < r.Tolerance
}

// Orthonormality computes an [OrthonormalityReport] for m from the Gram
// matrices mᴴ·m (columns) and m·mᴴ (rows).
func Orthonormality(m *Matrix, opts ...CheckOption) OrthonormalityReport {
	cfg := applyCheckOptions(opts)
	report := OrthonormalityReport{Tolerance: cfg.tol}
	if m == nil {
		report.MaxColumnInnerProduct = math.Inf(1)
		report.MaxRowInnerProduct = math.Inf(1)
		report.MaxNormDeviation = math.Inf(1)
		return report
	}

	mh := m.ConjugateTranspose()
	cols, _ := mh.Mul(m)
	rows, _ := m.Mul(mh)

	colOff, colDiag := gramStats(cols)
	rowOff, rowDiag := gramStats(rows)

	report.MaxColumnInnerProduct = colOff
	report.MaxRowInnerProduct = rowOff
	report.MaxNormDeviation = math.Max(colDiag, rowDiag)
	return report
}

// CheckOrthonormality reports whether the analysis matrix fa is unitary:
// distinct columns and distinct rows have vanishing inner products and every
// row and column has unit norm. This holds under [ConventionOrthonormal]
// only; under [ConventionNumpyMatlab] the columns stay orthogonal but have
// norm sqrt(N).
func CheckOrthonormality(fa *Matrix, opts ...CheckOption) bool {
	return Orthonormality(fa, opts...).Orthonormal()
}

// gramStats returns the largest off-diagonal magnitude of g and the largest
// deviation of a diagonal magnitude from one.
func gramStats(g *Matrix) (offDiag, diagDev float64) {
	n := g.n
	if n < 2 {
		return 0, math.Abs(cmplx.Abs(g.data[0]) - 1)
	}

	re := make([]float64, 0, n*(n-1))
	im := make([]float64, 0, n*(n-1))
	dev := make([]float64, n)
	for r := range n {
		for c := range n {
			v := g.data[r*n+c]
			if r == c {
				dev[r] = cmplx.Abs(v) - 1
				continue
			}
			re = append(re, real(v))
			im = append(im, imag(v))
		}
	}

	mag := make([]float64, len(re))
	vecmath.Magnitude(mag, re, im)
	return vecmath.MaxAbs(mag), vecmath.MaxAbs(dev)
}

// InnerProduct returns sum(conj(a[i]) * b[i]), the conjugating dot product
// numpy calls vdot. Slices of different length are compared over the shorter
// prefix.
func InnerProduct(a, b []complex128) complex128 {
	n := min(len(a), len(b))
	var acc complex128
	for i := range n {
		acc += cmplx.Conj(a[i]) * b[i]
	}
	return acc
}

// ColumnInnerProduct returns <m[:,i], m[:,j]>.
func ColumnInnerProduct(m *Matrix, i, j int) (complex128, error) {
	if m == nil {
		return 0, fmt.Errorf("%w: nil matrix", ErrInvalidSize)
	}
	a, err := m.Col(i)
	if err != nil {
		return 0, err
	}
	b, err := m.Col(j)
	if err != nil {
		return 0, err
	}
	return InnerProduct(a, b), nil
}

// RowInnerProduct returns <m[i,:], m[j,:]>.
func RowInnerProduct(m *Matrix, i, j int) (complex128, error) {
	if m == nil {
		return 0, fmt.Errorf("%w: nil matrix", ErrInvalidSize)
	}
	a, err := m.Row(i)
	if err != nil {
		return 0, err
	}
	b, err := m.Row(j)
	if err != nil {
		return 0, err
	}
	return InnerProduct(a, b), nil
}
