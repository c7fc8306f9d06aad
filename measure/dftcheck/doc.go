// Package dftcheck verifies matrix DFTs from package dft and compares them
// against fast-transform reference implementations.
//
// An [Analyzer] builds the analysis/synthesis pair for the input length,
// runs the forward and inverse matrix transforms and records:
//
//   - the reconstruction error max|x - xr|
//   - the identity error max|Fs·Fa - I|
//   - the orthonormality report of Fa
//   - the real-part and imaginary-part discrepancy against a reference FFT
//
// # Reference backends
//
// Four FFT libraries are available as oracles, selected by name:
//
//	algofft       github.com/cwbudde/algo-fft (default)
//	gonum         gonum.org/v1/gonum/dsp/fourier
//	godsp         github.com/mjibson/go-dsp/fft
//	scientificgo  scientificgo.org/fft
//
// The reference spectrum is rescaled to the analysis scale of the chosen
// convention, so orthonormal spectra are compared against fft(x)/sqrt(N).
//
// # Usage
//
//	report, err := dftcheck.AnalyzeReal(x, dft.ConventionNumpyMatlab, dftcheck.Config{})
//	fmt.Println(report.MaxRealDiff, report.MaxImagDiff)
package dftcheck
