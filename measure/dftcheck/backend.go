package dftcheck

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"
	"strings"

	algofft "github.com/cwbudde/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
	sgfft "scientificgo.org/fft"
)

// Names of the built-in reference backends.
const (
	BackendAlgoFFT      = "algofft"
	BackendGonum        = "gonum"
	BackendGoDSP        = "godsp"
	BackendScientificGo = "scientificgo"
)

// DefaultBackend is used when Config.Backend is empty.
const DefaultBackend = BackendAlgoFFT

// Errors returned by reference backends and the analyzer.
var (
	ErrUnknownBackend = errors.New("dftcheck: unknown reference backend")
	ErrEmptyInput     = errors.New("dftcheck: empty input")
)

// Backend is a fast-transform implementation used as a correctness oracle.
//
// Backends follow the numpy/MATLAB convention: Forward is unscaled and
// Inverse applies 1/N. Neither call modifies its input.
type Backend interface {
	Name() string
	Forward(x []complex128) ([]complex128, error)
	Inverse(spectrum []complex128) ([]complex128, error)
}

var backends = map[string]func() Backend{
	BackendAlgoFFT:      func() Backend { return algoFFTBackend{} },
	BackendGonum:        func() Backend { return gonumBackend{} },
	BackendGoDSP:        func() Backend { return goDSPBackend{} },
	BackendScientificGo: func() Backend { return scientificGoBackend{} },
}

// Backends returns the names of all built-in backends, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupBackend returns the backend registered under name (case-insensitive).
func LookupBackend(name string) (Backend, error) {
	ctor, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return ctor(), nil
}

// algoFFTBackend plans a transform per call with github.com/cwbudde/algo-fft.
// Its Inverse already normalizes by 1/N.
type algoFFTBackend struct{}

func (algoFFTBackend) Name() string { return BackendAlgoFFT }

func (algoFFTBackend) Forward(x []complex128) ([]complex128, error) {
	return algoFFTRun(x, false)
}

func (algoFFTBackend) Inverse(spectrum []complex128) ([]complex128, error) {
	return algoFFTRun(spectrum, true)
}

func algoFFTRun(in []complex128, inverse bool) ([]complex128, error) {
	if len(in) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("dftcheck: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, len(in))
	if inverse {
		err = plan.Inverse(out, in)
	} else {
		err = plan.Forward(out, in)
	}
	if err != nil {
		return nil, fmt.Errorf("dftcheck: algofft transform: %w", err)
	}
	return out, nil
}

// gonumBackend uses gonum's CmplxFFT. Both directions are unnormalized there,
// so Inverse divides by N.
type gonumBackend struct{}

func (gonumBackend) Name() string { return BackendGonum }

func (gonumBackend) Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	return fourier.NewCmplxFFT(len(x)).Coefficients(nil, x), nil
}

func (gonumBackend) Inverse(spectrum []complex128) ([]complex128, error) {
	if len(spectrum) == 0 {
		return nil, ErrEmptyInput
	}
	out := fourier.NewCmplxFFT(len(spectrum)).Sequence(nil, spectrum)
	scaleInPlace(out, 1/float64(len(out)))
	return out, nil
}

// goDSPBackend uses github.com/mjibson/go-dsp, whose IFFT applies 1/N.
type goDSPBackend struct{}

func (goDSPBackend) Name() string { return BackendGoDSP }

func (goDSPBackend) Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	return godsp.FFT(x), nil
}

func (goDSPBackend) Inverse(spectrum []complex128) ([]complex128, error) {
	if len(spectrum) == 0 {
		return nil, ErrEmptyInput
	}
	return godsp.IFFT(spectrum), nil
}

// scientificGoBackend uses scientificgo.org/fft. Only its forward transform is
// used; the inverse is derived as conj(FFT(conj(X)))/N so the scaling does not
// depend on the library.
type scientificGoBackend struct{}

func (scientificGoBackend) Name() string { return BackendScientificGo }

func (scientificGoBackend) Forward(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	in := make([]complex128, len(x))
	copy(in, x)
	return sgfft.Fft(in, false), nil
}

func (b scientificGoBackend) Inverse(spectrum []complex128) ([]complex128, error) {
	if len(spectrum) == 0 {
		return nil, ErrEmptyInput
	}
	in := make([]complex128, len(spectrum))
	for i, v := range spectrum {
		in[i] = cmplx.Conj(v)
	}
	out, err := b.Forward(in)
	if err != nil {
		return nil, err
	}
	for i, v := range out {
		out[i] = cmplx.Conj(v)
	}
	scaleInPlace(out, 1/float64(len(out)))
	return out, nil
}
