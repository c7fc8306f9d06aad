// Package dft expresses the Discrete Fourier Transform and its inverse as
// multiplication by a fixed complex matrix.
//
// For an N-point transform the analysis matrix Fa and the synthesis matrix Fs
// are built from the outer product A = mu*k of the frequency index mu and the
// sample index k:
//
//	Fa[mu][k] = exp(-j*2*pi/N * mu*k) * scaleA
//	Fs[k][mu] = exp(+j*2*pi/N * mu*k) * scaleS
//
// Two normalization conventions are supported and selected explicitly:
//
//   - [ConventionOrthonormal]: scaleA = scaleS = 1/sqrt(N). Fa is unitary and
//     Fs equals its conjugate transpose.
//   - [ConventionNumpyMatlab]: scaleA = 1, scaleS = 1/N. This matches
//     numpy.fft.fft/ifft and MATLAB. Fa is not unitary but Fs is still its
//     exact inverse.
//
// # Usage
//
//	m, err := dft.Build(8, dft.ConventionOrthonormal)
//	X, err := m.Forward(x)   // X = Fa·x
//	xr, err := m.Inverse(X)  // xr = Fs·X ≈ x
//
// The package deliberately uses O(N²) dense products and never an FFT. It is
// meant for small N, for teaching, and as a reference against which fast
// transforms can be checked (see measure/dftcheck).
package dft
