package dft

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dftmatrix/internal/testutil"
	algofft "github.com/cwbudde/algo-fft"
)

func TestRoundTrip(t *testing.T) {
	for _, c := range Conventions() {
		for i, n := range testSizes {
			t.Run(fmt.Sprintf("%s/N=%d", c, n), func(t *testing.T) {
				m, err := Build(n, c)
				if err != nil {
					t.Fatalf("Build(%d): %v", n, err)
				}

				x := testutil.DeterministicComplexNoise(int64(100+i), 1, n)
				xr, _, err := m.RoundTrip(x)
				if err != nil {
					t.Fatalf("RoundTrip: %v", err)
				}
				testutil.RequireComplexNearlyEqual(t, xr, x, 1e-9)
			})
		}
	}
}

func TestForwardCosineOrthonormal(t *testing.T) {
	const n = 8

	x := testutil.FrameCosine(n, 2, math.Pi/4)
	m, err := Build(n, ConventionOrthonormal)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	spectrum, err := ForwardReal(m.Analysis, x)
	if err != nil {
		t.Fatalf("ForwardReal: %v", err)
	}

	// cos(θ) = (e^{jθ} + e^{-jθ})/2, so each of the two bins carries
	// N/2·e^{±jπ/4} before the 1/sqrt(N) scaling.
	wantMag := math.Sqrt(n) / 2
	for mu, v := range spectrum {
		switch mu {
		case 2:
			want := cmplx.Rect(wantMag, math.Pi/4)
			if cmplx.Abs(v-want) > 1e-9 {
				t.Errorf("X[2] = %v, want %v", v, want)
			}
		case 6:
			want := cmplx.Rect(wantMag, -math.Pi/4)
			if cmplx.Abs(v-want) > 1e-9 {
				t.Errorf("X[6] = %v, want %v", v, want)
			}
		default:
			if cmplx.Abs(v) > 1e-9 {
				t.Errorf("X[%d] = %v, want ~0", mu, v)
			}
		}
	}
}

func TestForwardCosineMatchesFFT(t *testing.T) {
	const n = 8

	x := testutil.FrameCosine(n, 2, math.Pi/4)
	fa, err := AnalysisMatrix(n, ConventionNumpyMatlab)
	if err != nil {
		t.Fatalf("AnalysisMatrix: %v", err)
	}

	got, err := ForwardReal(fa, x)
	if err != nil {
		t.Fatalf("ForwardReal: %v", err)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	src := make([]complex128, n)
	for i, v := range x {
		src[i] = complex(v, 0)
	}
	want := make([]complex128, n)
	if err := plan.Forward(want, src); err != nil {
		t.Fatalf("plan.Forward: %v", err)
	}

	for i := range got {
		if d := math.Abs(real(got[i] - want[i])); d > 1e-9 {
			t.Errorf("bin %d: |Re diff| = %g", i, d)
		}
		if d := math.Abs(imag(got[i] - want[i])); d > 1e-9 {
			t.Errorf("bin %d: |Im diff| = %g", i, d)
		}
	}
}

func TestInverseMatchesFFT(t *testing.T) {
	const n = 16

	spectrum := testutil.DeterministicComplexNoise(9, 2, n)
	fs, err := SynthesisMatrix(n, ConventionNumpyMatlab)
	if err != nil {
		t.Fatalf("SynthesisMatrix: %v", err)
	}

	got, err := Inverse(fs, spectrum)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}
	want := make([]complex128, n)
	if err := plan.Inverse(want, spectrum); err != nil {
		t.Fatalf("plan.Inverse: %v", err)
	}

	testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)
}

func TestForwardImpulseIsFlat(t *testing.T) {
	const n = 16

	m, err := Build(n, ConventionNumpyMatlab)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	spectrum, err := m.Forward(testutil.Impulse(n, 0))
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	for mu, v := range spectrum {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("X[%d] = %v, want 1", mu, v)
		}
	}
}

func TestTransformDimensionMismatch(t *testing.T) {
	m, err := Build(8, ConventionOrthonormal)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, length := range []int{0, 7, 9} {
		x := make([]complex128, length)
		if _, err := Forward(m.Analysis, x); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Forward len %d: expected ErrDimensionMismatch, got %v", length, err)
		}
		if _, err := Inverse(m.Synthesis, x); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Inverse len %d: expected ErrDimensionMismatch, got %v", length, err)
		}
		if _, _, err := m.RoundTrip(x); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("RoundTrip len %d: expected ErrDimensionMismatch, got %v", length, err)
		}
	}

	if _, err := ForwardReal(m.Analysis, make([]float64, 7)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ForwardReal: expected ErrDimensionMismatch, got %v", err)
	}
}

func TestTransformNilMatrix(t *testing.T) {
	if _, err := Forward(nil, []complex128{1}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Forward(nil): expected ErrInvalidSize, got %v", err)
	}
	if _, err := Inverse(nil, []complex128{1}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Inverse(nil): expected ErrInvalidSize, got %v", err)
	}
}

func TestTransformPropagatesNaN(t *testing.T) {
	m, err := Build(4, ConventionOrthonormal)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	x := []complex128{1, complex(math.NaN(), 0), 0, 0}
	spectrum, err := m.Forward(x)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	for mu, v := range spectrum {
		if !cmplx.IsNaN(v) {
			t.Fatalf("X[%d] = %v, want NaN", mu, v)
		}
	}
}
