// Package modal solves the generalized eigenproblem (K, M) on a lumped
// mass model for free-vibration frequencies and mode shapes (spec.md
// §4.F). There is no eigensolver anywhere in the teacher's own stack —
// gofem solves a time-stepping residual, never a free-vibration
// eigenproblem — so this package reaches into the rest of the example
// pack instead: gonum.org/v1/gonum/mat's EigenSym, grounded on the
// pack's gonum lapack reference file and already present one hop away
// via alexiusacademia-gorcb's indirect gonum.org/v1/plot dependency.
package modal

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
)

// zeroMassFloor replaces a zero lumped-mass entry so M stays invertible
// (spec.md §4.F).
const zeroMassFloor = 1e-6

// Result holds ascending frequencies and their mode shapes (spec.md §4.F,
// testable property 6: non-negative, non-decreasing).
type Result struct {
	Frequencies []float64   // f_k = omega_k / (2*pi), Hz
	Omega2      []float64   // lambda_k = omega_k^2, rad^2/s^2
	Modes       [][]float64 // Modes[k] is the k-th mode shape, over the same free-DOF ordering as K
}

// Solve forms A = M^-1*K (M diagonal, so the inverse is trivial),
// symmetrizes it as M^-1/2 * K * M^-1/2 so gonum's EigenSym applies, and
// returns the nModes smallest frequencies. nModes <= 0 means "all modes".
//
// Negative eigenvalues from rounding are clamped to zero before the
// square root, per spec.md §4.F.
func Solve(k *la.CSR, mass []float64, nModes int) (*Result, error) {
	n := k.M
	if k.N != n {
		return nil, errs.New(errs.InvalidModel, "modal solve requires a square K, got %dx%d", k.M, k.N)
	}
	if len(mass) != n {
		return nil, errs.New(errs.InvalidModel, "mass vector length %d does not match K dimension %d", len(mass), n)
	}

	invSqrtM := make([]float64, n)
	for i, mi := range mass {
		if mi < zeroMassFloor {
			mi = zeroMassFloor
		}
		invSqrtM[i] = 1 / math.Sqrt(mi)
	}

	dense := k.ToDense()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := invSqrtM[i] * dense[i][j] * invSqrtM[j]
			sym.SetSym(i, j, v)
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, errs.NewUnstable(errs.Mechanism, "modal eigendecomposition did not converge")
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	type indexed struct {
		lambda float64
		index  int
	}
	ordered := make([]indexed, n)
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		ordered[i] = indexed{lambda: v, index: i}
	}
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].lambda < ordered[b].lambda })

	count := n
	if nModes > 0 && nModes < n {
		count = nModes
	}

	res := &Result{
		Frequencies: make([]float64, count),
		Omega2:      make([]float64, count),
		Modes:       make([][]float64, count),
	}
	for k := 0; k < count; k++ {
		lambda := ordered[k].lambda
		omega := math.Sqrt(lambda)
		res.Omega2[k] = lambda
		res.Frequencies[k] = omega / (2 * math.Pi)

		col := ordered[k].index
		shape := make([]float64, n)
		for i := 0; i < n; i++ {
			// undo the M^-1/2 symmetrizing transform: physical mode =
			// M^-1/2 * (symmetric eigenvector).
			shape[i] = invSqrtM[i] * vectors.At(i, col)
		}
		res.Modes[k] = shape
	}
	return res, nil
}
