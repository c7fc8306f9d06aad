package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(1e9, 1e9+1, 1e-6) {
		t.Fatal("expected relative comparison for large values")
	}
}

func TestNearlyEqualComplex(t *testing.T) {
	if !NearlyEqualComplex(1+1i, 1+1i+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqualComplex(1+1i, 1-1i, 1e-3) {
		t.Fatal("expected conjugates to differ")
	}
}

func TestFlushTiny(t *testing.T) {
	got := FlushTiny(complex(1e-17, 0.5), 1e-12)
	if got != complex(0, 0.5) {
		t.Fatalf("FlushTiny = %v, want (0+0.5i)", got)
	}
	got = FlushTiny(complex(-2, -3e-15), 1e-12)
	if got != complex(-2, 0) {
		t.Fatalf("FlushTiny = %v, want (-2+0i)", got)
	}
}

func TestToComplexAndSplit(t *testing.T) {
	x := ToComplex([]float64{1, -2, 3})
	re, im := Split(x)
	for i, want := range []float64{1, -2, 3} {
		if re[i] != want || im[i] != 0 {
			t.Fatalf("index %d: got (%v, %v), want (%v, 0)", i, re[i], im[i], want)
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1, 2i, 3}
	b := []complex128{1, 2i, 3 + 4i}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-4) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 4", d)
	}

	d, err = MaxAbsDiff(nil, nil)
	if err != nil || d != 0 {
		t.Fatalf("MaxAbsDiff(nil, nil) = %v, %v; want 0, nil", d, err)
	}

	if _, err := MaxAbsDiff(a, b[:2]); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxPartDiff(t *testing.T) {
	a := []complex128{1 + 1i, -2 + 0.5i}
	b := []complex128{0.5 + 1i, -2 - 0.25i}

	re, im, err := MaxPartDiff(a, b)
	if err != nil {
		t.Fatalf("MaxPartDiff error: %v", err)
	}
	if math.Abs(re-0.5) > 1e-15 {
		t.Fatalf("max real diff = %v, want 0.5", re)
	}
	if math.Abs(im-0.75) > 1e-15 {
		t.Fatalf("max imag diff = %v, want 0.75", im)
	}

	if _, _, err := MaxPartDiff(a, b[:1]); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
