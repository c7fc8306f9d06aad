package dftcheck

import (
	"fmt"

	"github.com/cwbudde/algo-dftmatrix/dsp/core"
	"github.com/cwbudde/algo-dftmatrix/dsp/dft"
	"github.com/cwbudde/algo-vecmath"
)

// Config holds analyzer parameters.
type Config struct {
	// Backend names the reference FFT. Empty selects DefaultBackend.
	Backend string
	// SkipReference disables the comparison against the reference FFT.
	SkipReference bool
	// Tolerance is the absolute tolerance used by Report.Passed.
	// Zero or negative selects dft.DefaultTolerance.
	Tolerance float64
}

// Report holds the diagnostics of one matrix transform round trip.
type Report struct {
	Convention dft.Convention
	Size       int

	Spectrum      []complex128
	Reconstructed []complex128

	// ReconstructionError is max|x - Fs·Fa·x|.
	ReconstructionError float64
	// IdentityError is max|Fs·Fa - I|.
	IdentityError  float64
	Orthonormality dft.OrthonormalityReport

	// Backend is empty when the reference comparison was skipped.
	Backend string
	// Reference is the backend spectrum rescaled to the convention's
	// analysis scale, so it is directly comparable to Spectrum.
	Reference   []complex128
	MaxRealDiff float64
	MaxImagDiff float64
	// ReferenceReconstructionError is max|x - ifft(fft(x))| of the backend.
	ReferenceReconstructionError float64

	Tolerance float64
}

// HasReference reports whether a reference comparison was performed.
func (r *Report) HasReference() bool {
	return r.Backend != ""
}

// Passed reports whether every recorded error is within tolerance and, under
// the orthonormal convention, the analysis matrix is unitary.
func (r *Report) Passed() bool {
	if r.ReconstructionError > r.Tolerance || r.IdentityError > r.Tolerance {
		return false
	}
	if r.Convention == dft.ConventionOrthonormal && !r.Orthonormality.Orthonormal() {
		return false
	}
	if r.HasReference() {
		if r.MaxRealDiff > r.Tolerance || r.MaxImagDiff > r.Tolerance {
			return false
		}
		if r.ReferenceReconstructionError > r.Tolerance {
			return false
		}
	}
	return true
}

// Analyzer runs matrix transforms and compares them against a reference FFT.
type Analyzer struct {
	cfg     Config
	backend Backend
}

// NewAnalyzer creates an analyzer. It fails with ErrUnknownBackend when
// cfg.Backend does not name a built-in backend.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)

	a := &Analyzer{cfg: cfg}
	if cfg.SkipReference {
		return a, nil
	}

	b, err := LookupBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	a.backend = b
	return a, nil
}

// NewAnalyzerWithBackend creates an analyzer using a caller-supplied backend.
func NewAnalyzerWithBackend(cfg Config, b Backend) *Analyzer {
	cfg = normalizeConfig(cfg)
	if b == nil {
		cfg.SkipReference = true
	} else {
		cfg.Backend = b.Name()
		cfg.SkipReference = false
	}
	return &Analyzer{cfg: cfg, backend: b}
}

// Analyze is a one-shot analysis of x under convention c.
func Analyze(x []complex128, c dft.Convention, cfg Config) (*Report, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	return a.Analyze(x, c)
}

// AnalyzeReal is Analyze for real-valued input.
func AnalyzeReal(x []float64, c dft.Convention, cfg Config) (*Report, error) {
	return Analyze(core.ToComplex(x), c, cfg)
}

// Config returns the normalized analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// AnalyzeAll runs Analyze for every supported convention in order.
func (a *Analyzer) AnalyzeAll(x []complex128) ([]*Report, error) {
	conventions := dft.Conventions()
	reports := make([]*Report, 0, len(conventions))
	for _, c := range conventions {
		r, err := a.Analyze(x, c)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Analyze builds the matrices for len(x) under c, runs the round trip, and
// collects diagnostics.
func (a *Analyzer) Analyze(x []complex128, c dft.Convention) (*Report, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	m, err := dft.Build(len(x), c)
	if err != nil {
		return nil, err
	}

	reconstructed, spectrum, err := m.RoundTrip(x)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Convention:     c,
		Size:           len(x),
		Spectrum:       spectrum,
		Reconstructed:  reconstructed,
		Orthonormality: dft.Orthonormality(m.Analysis, dft.WithTolerance(a.cfg.Tolerance)),
		Tolerance:      a.cfg.Tolerance,
	}

	if r.ReconstructionError, err = core.MaxAbsDiff(x, reconstructed); err != nil {
		return nil, err
	}
	if r.IdentityError, err = m.IdentityError(); err != nil {
		return nil, err
	}

	if a.backend == nil {
		return r, nil
	}
	if err := a.compareReference(r, x); err != nil {
		return nil, err
	}
	return r, nil
}

func (a *Analyzer) compareReference(r *Report, x []complex128) error {
	ref, err := a.backend.Forward(x)
	if err != nil {
		return fmt.Errorf("dftcheck: %s forward: %w", a.backend.Name(), err)
	}
	refInv, err := a.backend.Inverse(ref)
	if err != nil {
		return fmt.Errorf("dftcheck: %s inverse: %w", a.backend.Name(), err)
	}

	scale, _, err := r.Convention.Scales(r.Size)
	if err != nil {
		return err
	}
	scaleInPlace(ref, scale)

	r.Backend = a.backend.Name()
	r.Reference = ref
	if r.MaxRealDiff, r.MaxImagDiff, err = core.MaxPartDiff(r.Spectrum, ref); err != nil {
		return err
	}
	if r.ReferenceReconstructionError, err = core.MaxAbsDiff(x, refInv); err != nil {
		return err
	}
	return nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}

	if cfg.Tolerance <= 0 {
		cfg.Tolerance = dft.DefaultTolerance
	}

	return cfg
}

// scaleInPlace multiplies real and imaginary parts of x by s.
func scaleInPlace(x []complex128, s float64) {
	if s == 1 || len(x) == 0 {
		return
	}
	re, im := core.Split(x)
	vecmath.ScaleBlockInPlace(re, s)
	vecmath.ScaleBlockInPlace(im, s)
	for i := range x {
		x[i] = complex(re[i], im[i])
	}
}
