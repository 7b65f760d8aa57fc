package la

import "math"

// LUSolveDense solves A·x = b via LU decomposition with partial pivoting,
// operating on a dense square matrix. Used for the dense direct path
// (n_free < solver.sparse_threshold_dofs, spec.md §4.A) and for inverting
// K_ii in static condensation (§4.E). Returns singular=true (instead of a
// panic or NaN result) when a pivot collapses to numerical zero, so callers
// can report errs.Unstable/Mechanism rather than guessing.
func LUSolveDense(a [][]float64, b []float64) (x []float64, singular bool) {
	n := len(a)
	// copy so the caller's matrix is untouched
	lu := make([][]float64, n)
	for i := range a {
		lu[i] = append([]float64(nil), a[i]...)
	}
	rhs := append([]float64(nil), b...)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// partial pivot
		maxRow, maxVal := k, math.Abs(lu[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i][k]); v > maxVal {
				maxRow, maxVal = i, v
			}
		}
		if maxVal < 1e-12 {
			return nil, true
		}
		if maxRow != k {
			lu[k], lu[maxRow] = lu[maxRow], lu[k]
			rhs[k], rhs[maxRow] = rhs[maxRow], rhs[k]
			perm[k], perm[maxRow] = perm[maxRow], perm[k]
		}
		for i := k + 1; i < n; i++ {
			factor := lu[i][k] / lu[k][k]
			lu[i][k] = factor
			for j := k + 1; j < n; j++ {
				lu[i][j] -= factor * lu[k][j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}

	// back substitution (rhs already forward-eliminated above)
	x = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[i][j] * x[j]
		}
		if math.Abs(lu[i][i]) < 1e-12 {
			return nil, true
		}
		x[i] = sum / lu[i][i]
	}
	return x, false
}

// InvertDense computes A⁻¹ for a dense square matrix via repeated
// LUSolveDense calls against the identity's columns. Used to form
// K_ii⁻¹·K_im in static condensation (§4.E); K_ii blocks are small (the
// internal-DOF count of a single substructure) so this is not a
// performance concern the way a global inverse would be.
func InvertDense(a [][]float64) (inv [][]float64, singular bool) {
	n := len(a)
	inv = make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}
	e := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		x, sing := LUSolveDense(a, e)
		if sing {
			return nil, true
		}
		for i := 0; i < n; i++ {
			inv[i][col] = x[i]
		}
	}
	return inv, false
}

// MulDense computes C = A*B for general dense matrices.
func MulDense(a, b [][]float64) [][]float64 {
	m := len(a)
	if m == 0 {
		return nil
	}
	k := len(a[0])
	n := 0
	if len(b) > 0 {
		n = len(b[0])
	}
	c := make([][]float64, m)
	for i := 0; i < m; i++ {
		c[i] = make([]float64, n)
		for p := 0; p < k; p++ {
			aip := a[i][p]
			if aip == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c[i][j] += aip * b[p][j]
			}
		}
	}
	return c
}

// SubDense computes C = A - B element-wise for equal-shaped dense matrices.
func SubDense(a, b [][]float64) [][]float64 {
	c := make([][]float64, len(a))
	for i := range a {
		c[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			c[i][j] = a[i][j] - b[i][j]
		}
	}
	return c
}

// NegDense negates a dense matrix.
func NegDense(a [][]float64) [][]float64 {
	c := make([][]float64, len(a))
	for i := range a {
		c[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			c[i][j] = -a[i][j]
		}
	}
	return c
}

// MinAbsDiag returns the smallest absolute diagonal entry of a dense
// square matrix, used by static condensation's conditioning check.
func MinAbsDiag(a [][]float64) float64 {
	if len(a) == 0 {
		return 0
	}
	min := math.Abs(a[0][0])
	for i := 1; i < len(a); i++ {
		if v := math.Abs(a[i][i]); v < min {
			min = v
		}
	}
	return min
}
