package solve

import "github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"

// MemberEndForces holds the 12 local-axis end forces for a single member:
// (Nx, Vy, Vz, T, My, Mz) at the i-end, same at the j-end, per spec.md §3.
type MemberEndForces struct {
	MemberID string
	I        [6]float64 // Nx, Vy, Vz, T, My, Mz at the i-end
	J        [6]float64 // Nx, Vy, Vz, T, My, Mz at the j-end
}

// Result is the analysis-result value the solver returns: owned
// exclusively by the caller, per spec.md §3's Ownership rule.
type Result struct {
	LoadCaseID    string
	Displacements []float64 // length 6N, DOF order (ux,uy,uz,rx,ry,rz) per node
	Reactions     []float64 // length 6N, non-zero only on constrained DOFs
	MemberForces  []MemberEndForces

	// Linear-solve diagnostics.
	UsedCG       bool
	Converged    bool
	ResidualNorm float64
	Iterations   int

	Warnings []string

	// Geoms is retained so post-processing (diagrams, design checks) can
	// recover local displacements/lengths/properties without
	// re-assembling the model.
	Geoms []MemberGeometry
}

// LocalDisplacements returns the 12-vector of local-axis displacements for
// a member, u_local = Tᵀ·u_global, per spec.md §4.B.
func (r *Result) LocalDisplacements(geom MemberGeometry) la.Vec12 {
	var uGlobal la.Vec12
	for k := 0; k < 12; k++ {
		uGlobal[k] = r.Displacements[geom.DOFMap[k]]
	}
	var t la.Mat12 = la.Mat12(geom.Element.T12)
	tt := la.TransposeMat12(&t)
	return la.MulMat12Vec(&tt, &uGlobal)
}
