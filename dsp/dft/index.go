package dft

// Indices returns the index sequence 0..n-1 used both as the sample index k
// and the frequency index mu. It returns nil for n < 1.
func Indices(n int) []int {
	if n < 1 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// OuterIndex returns A with A[mu][k] = mu*k, the exponent matrix of the DFT
// kernel. A is symmetric.
func OuterIndex(n int) ([][]int, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	mu := Indices(n)
	k := Indices(n)

	a := make([][]int, n)
	backing := make([]int, n*n)
	for r := range a {
		a[r] = backing[r*n : (r+1)*n]
		for c := range a[r] {
			a[r][c] = mu[r] * k[c]
		}
	}
	return a, nil
}
