package solve

import "github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"

// fixedEndPointLoadY returns the fixed-end force vector (V_i, M_i, V_j, M_j)
// for a point load P (local Y, positive per spec.md §4.G's "positive
// downward" convention) at distance a from the i-end of a fixed-fixed
// beam of length L. These are the standard Euler-Bernoulli fixed-end
// reactions. Two places consume them: AssembleLoadVector contributes their
// negative to the global RHS (the usual "convert member loads into
// consistent nodal loads" step), and end-force recovery adds them back
// on top of K_local·u_local, since a loaded member's true end actions are
// not determined by nodal displacement alone.
func fixedEndPointLoadY(p, a, length float64) (vi, mi, vj, mj float64) {
	b := length - a
	L2, L3 := length*length, length*length*length
	vi = p * b * b * (length + 2*a) / L3
	vj = p * a * a * (length + 2*b) / L3
	mi = p * a * b * b / L2
	mj = -p * a * a * b / L2
	return
}

// FixedEndForcesLocal sums the fixed-end force contribution of a single
// member load into a 12-component local-axis vector (force/moment at each
// end; only DOFs 1,5,7,11 — v_i, rz_i, v_j, rz_j — are populated, since
// local-Y member loads only excite shear-Fy/moment-Mz per spec.md §4.G's
// scope). Span loads (UDL, trapezoidal) are resolved by numerically
// integrating many point-load contributions across the loaded span,
// matching the segment-sampling idiom diagram.Trace also uses, rather
// than deriving a closed-form partial-span formula per load shape.
func FixedEndForcesLocal(ld model.Load, length float64) [12]float64 {
	var local [12]float64

	applyPoint := func(p, a float64) {
		vi, mi, vj, mj := fixedEndPointLoadY(p, a, length)
		local[1] += vi
		local[5] += mi
		local[7] += vj
		local[11] += mj
	}

	switch ld.Kind {
	case model.MemberPoint:
		applyPoint(ld.Vec[1], ld.S*length)

	case model.MemberUDL, model.MemberTrapz:
		s0, s1 := ld.S0, ld.S1
		if s1 <= s0 {
			break
		}
		w0, w1 := ld.W0, ld.W1
		if ld.Kind == model.MemberUDL {
			w1 = w0
		}
		const nSlices = 64
		span := s1 - s0
		d := span / nSlices
		for k := 0; k < nSlices; k++ {
			sMid := s0 + (float64(k)+0.5)*d
			t := (sMid - s0) / span
			w := w0 + (w1-w0)*t
			applyPoint(w*d*length, sMid*length)
		}
	}
	return local
}
