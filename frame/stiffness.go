package frame

import "github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"

// LocalStiffness assembles the standard 12x12 Euler-Bernoulli space-frame
// stiffness matrix, per spec.md §4.B. DOF order per node is
// (ux, uy, uz, rx, ry, rz); node i occupies 0..5, node j occupies 6..11.
//
//   - axial:    EA/L, couples DOFs 0 and 6.
//   - torsion:  GJ/L, couples DOFs 3 and 9.
//   - bending about local z (shear in y): 12EIz/L^3, 6EIz/L^2, 4EIz/L,
//     2EIz/L pattern on DOFs (1, 5, 7, 11).
//   - bending about local y (shear in z): the same pattern on DOFs
//     (2, 4, 8, 10), with the sign convention flipped on the
//     moment-shear coupling terms so positive moment follows the
//     right-hand rule about local y.
func LocalStiffness(p Properties, length float64) la.Mat12 {
	var k la.Mat12
	L := length
	L2, L3 := L*L, L*L*L

	// axial: DOFs 0, 6
	ea := p.E * p.A / L
	k[0][0] = ea
	k[0][6] = -ea
	k[6][0] = -ea
	k[6][6] = ea

	// torsion: DOFs 3, 9
	gj := p.G * p.J / L
	k[3][3] = gj
	k[3][9] = -gj
	k[9][3] = -gj
	k[9][9] = gj

	// bending about local z (shear in y): DOFs 1 (v_i), 5 (rz_i), 7 (v_j), 11 (rz_j)
	ez := p.E * p.Iz
	k12 := 12 * ez / L3
	k6 := 6 * ez / L2
	k4 := 4 * ez / L
	k2 := 2 * ez / L
	setBendingBlock(&k, 1, 5, 7, 11, k12, k6, k4, k2)

	// bending about local y (shear in z): DOFs 2 (w_i), 4 (ry_i), 8 (w_j), 10 (ry_j).
	// Sign of the shear-moment coupling terms is flipped relative to the
	// z-bending block so that positive M_y follows the right-hand rule
	// about local y, per spec.md §4.B.
	ey := p.E * p.Iy
	ky12 := 12 * ey / L3
	ky6 := 6 * ey / L2
	ky4 := 4 * ey / L
	ky2 := 2 * ey / L
	setBendingBlock(&k, 2, 4, 8, 10, ky12, -ky6, ky4, ky2)

	k.SymmetrizeInPlace()
	return k
}

// setBendingBlock fills the four DOFs (transverse-i, rot-i, transverse-j,
// rot-j) with the standard Euler-Bernoulli 2x2-node bending stiffness:
//
//	[ k12   k6   -k12   k6  ]
//	[ k6    k4   -k6    k2  ]
//	[-k12  -k6    k12  -k6  ]
//	[ k6    k2   -k6    k4  ]
//
// k6's sign already encodes the local-y vs local-z handedness difference
// described in spec.md §4.B and §9's axis-convention open question.
func setBendingBlock(k *la.Mat12, ti, ri, tj, rj int, k12, k6, k4, k2 float64) {
	k[ti][ti] = k12
	k[ti][ri] = k6
	k[ti][tj] = -k12
	k[ti][rj] = k6

	k[ri][ti] = k6
	k[ri][ri] = k4
	k[ri][tj] = -k6
	k[ri][rj] = k2

	k[tj][ti] = -k12
	k[tj][ri] = -k6
	k[tj][tj] = k12
	k[tj][rj] = -k6

	k[rj][ti] = k6
	k[rj][ri] = k2
	k[rj][tj] = -k6
	k[rj][rj] = k4
}

// EndForces recovers the 12 local end forces from the 12 local
// displacements: F_local = k_local * u_local, per spec.md §4.B. Callers
// first form u_local = Tᵀ·u_global (the rotation is orthogonal, so its
// transpose is its inverse).
func EndForces(klocal la.Mat12, uLocal la.Vec12) la.Vec12 {
	return la.MulMat12Vec(&klocal, &uLocal)
}

// ToLocal rotates a 12-vector of global nodal displacements into local
// member coordinates: u_local = Tᵀ·u_global.
func ToLocal(t [12][12]float64, uGlobal la.Vec12) la.Vec12 {
	var tm la.Mat12 = la.Mat12(t)
	tt := la.TransposeMat12(&tm)
	return la.MulMat12Vec(&tt, &uGlobal)
}
