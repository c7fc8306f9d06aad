package dft

import (
	"errors"
	"fmt"
)

// Errors returned by matrix construction and transforms.
var (
	ErrInvalidSize       = errors.New("dft: invalid transform size")
	ErrDimensionMismatch = errors.New("dft: dimension mismatch")
	ErrUnknownConvention = errors.New("dft: unknown normalization convention")
)

func validateSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: size must be >= 1: %d", ErrInvalidSize, n)
	}
	return nil
}

func validateIndex(m *Matrix, i int) error {
	if i < 0 || i >= m.n {
		return fmt.Errorf("%w: index %d out of range [0,%d)", ErrDimensionMismatch, i, m.n)
	}
	return nil
}
