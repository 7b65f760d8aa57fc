// Package la implements the linear-algebra primitives the solver needs:
// fixed-size 12x12 dense element operations, a DOK-to-CSR sparse builder,
// sparse matvec, and Jacobi-preconditioned CG / BiCGSTAB.
//
// The teacher (gofem) leans on gosl/la.Triplet for DOK-style assembly and
// gosl/la.MatVecMul / la.MatTrMul3 for dense congruence transforms (see
// ele/solid/beam.go's AddToKb). This package keeps that idiom for the
// sparse builder (DOK.Add mirrors Triplet.Put) while specializing the
// dense element kernel to the fixed 12x12 shape the frame element always
// produces, which lets the congruence transform avoid general matrix
// allocation entirely.
package la

// Mat12 is a dense 12x12 matrix, row-major via [12][12]float64.
type Mat12 [12][12]float64

// Vec12 is a 12-component vector.
type Vec12 [12]float64

// MulMat12Vec computes y = A*x for a 12x12 matrix and 12-vector.
func MulMat12Vec(a *Mat12, x *Vec12) Vec12 {
	var y Vec12
	for i := 0; i < 12; i++ {
		var sum float64
		for j := 0; j < 12; j++ {
			sum += a[i][j] * x[j]
		}
		y[i] = sum
	}
	return y
}

// MulMat12 computes C = A*B for two 12x12 matrices.
func MulMat12(a, b *Mat12) Mat12 {
	var c Mat12
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			var sum float64
			for k := 0; k < 12; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c
}

// TransposeMat12 returns Aᵀ.
func TransposeMat12(a *Mat12) Mat12 {
	var t Mat12
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			t[j][i] = a[i][j]
		}
	}
	return t
}

// Congruence computes Kglobal = Tᵀ·Klocal·T, the rotation of a local
// element stiffness matrix into global coordinates. Mirrors the two-step
// chained multiply the teacher performs via gosl's la.MatTrMul3(dest, 1,
// T, Klocal, T), generalized here to the frame element's fixed 12-DOF
// block so the whole chain stays allocation-free.
func Congruence(t, klocal *Mat12) Mat12 {
	tt := TransposeMat12(t)
	tmp := MulMat12(klocal, t)
	return MulMat12(&tt, &tmp)
}

// SymmetrizeInPlace averages A with its transpose, clamping down
// floating-point asymmetry introduced by the congruence transform.
func (a *Mat12) SymmetrizeInPlace() {
	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			avg := 0.5 * (a[i][j] + a[j][i])
			a[i][j] = avg
			a[j][i] = avg
		}
	}
}

// MaxAbsAsymmetry returns max|A_ij - A_ji| / max|A_ij|, the relative
// asymmetry measure used by the symmetry invariant (spec §8 property 1).
func MaxAbsAsymmetry(a *Mat12) float64 {
	var maxDiff, maxAbs float64
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			v := a[i][j]
			if v < 0 {
				v = -v
			}
			if v > maxAbs {
				maxAbs = v
			}
			d := a[i][j] - a[j][i]
			if d < 0 {
				d = -d
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	if maxAbs == 0 {
		return 0
	}
	return maxDiff / maxAbs
}
