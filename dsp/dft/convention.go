package dft

import (
	"fmt"
	"math"
	"strings"
)

// Convention selects how the 1/N normalization of the DFT pair is split
// between the analysis and the synthesis matrix.
type Convention int

const (
	// ConventionOrthonormal scales both directions by 1/sqrt(N). The analysis
	// matrix is unitary and the synthesis matrix is its conjugate transpose.
	ConventionOrthonormal Convention = iota

	// ConventionNumpyMatlab leaves the analysis matrix unscaled and puts the
	// full 1/N on synthesis, matching numpy.fft and MATLAB fft/ifft.
	ConventionNumpyMatlab
)

var conventionNames = map[Convention]string{
	ConventionOrthonormal: "orthonormal",
	ConventionNumpyMatlab: "numpy-matlab",
}

// Conventions returns all supported conventions in declaration order.
func Conventions() []Convention {
	return []Convention{ConventionOrthonormal, ConventionNumpyMatlab}
}

// String returns the canonical lower-case name.
func (c Convention) String() string {
	if name, ok := conventionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// Valid reports whether c is a supported convention.
func (c Convention) Valid() bool {
	_, ok := conventionNames[c]
	return ok
}

// Scales returns the scalar factors applied to the analysis and synthesis
// kernels for an n-point transform.
func (c Convention) Scales(n int) (analysis, synthesis float64, err error) {
	if err := validateSize(n); err != nil {
		return 0, 0, err
	}

	switch c {
	case ConventionOrthonormal:
		s := 1 / math.Sqrt(float64(n))
		return s, s, nil
	case ConventionNumpyMatlab:
		return 1, 1 / float64(n), nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownConvention, int(c))
	}
}

// ParseConvention resolves a convention from its name. Matching is
// case-insensitive and accepts a few common aliases.
func ParseConvention(name string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "orthonormal", "ortho", "unitary":
		return ConventionOrthonormal, nil
	case "numpy-matlab", "numpy", "matlab", "backward":
		return ConventionNumpyMatlab, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConvention, name)
	}
}
