package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dftmatrix/dsp/core"
	"github.com/cwbudde/algo-dftmatrix/internal/testutil"
)

func TestCosineMatchesFormula(t *testing.T) {
	g := NewGenerator(core.WithSize(8))
	x, err := g.Cosine(2, math.Pi/4)
	if err != nil {
		t.Fatalf("Cosine() error = %v", err)
	}
	if len(x) != 8 {
		t.Fatalf("len = %d, want 8", len(x))
	}
	testutil.RequireSliceNearlyEqual(t, x, testutil.FrameCosine(8, 2, math.Pi/4), 1e-12)
}

func TestCosineRejectsNonFiniteCycles(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Cosine(math.NaN(), 0); err == nil {
		t.Fatal("expected error for NaN cycles")
	}
	if _, err := g.Cosine(math.Inf(1), 0); err == nil {
		t.Fatal("expected error for Inf cycles")
	}
}

func TestComplexToneUnitMagnitude(t *testing.T) {
	g := NewGenerator(core.WithSize(16))
	for _, bin := range []int{0, 3, -3, 17} {
		x, err := g.ComplexTone(bin)
		if err != nil {
			t.Fatalf("ComplexTone(%d) error = %v", bin, err)
		}
		for k, v := range x {
			if math.Abs(real(v)*real(v)+imag(v)*imag(v)-1) > 1e-12 {
				t.Fatalf("bin %d sample %d: |x| != 1: %v", bin, k, v)
			}
		}
	}

	// bin -3 and bin 13 are the same tone in a 16-point frame.
	a, _ := g.ComplexTone(-3)
	b, _ := g.ComplexTone(13)
	testutil.RequireComplexNearlyEqual(t, a, b, 1e-15)
}

func TestImpulse(t *testing.T) {
	g := NewGenerator(core.WithSize(4))
	x, err := g.Impulse(3)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, x, []complex128{0, 0, 0, 1}, 0)

	if _, err := g.Impulse(4); err == nil {
		t.Fatal("expected error for out-of-range impulse")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}

	if _, err := g1.WhiteNoise(-1); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator(core.WithSize(8))
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.ComplexNoise(1)
	if err != nil {
		t.Fatalf("ComplexNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.ComplexNoise(1)
	if err != nil {
		t.Fatalf("ComplexNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}
