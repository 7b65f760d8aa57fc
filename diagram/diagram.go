// Package diagram derives per-member internal-force diagrams — shear
// Fy(x) and moment Mz(x) — from a member's end forces and its local-Y
// span loads, per spec.md §4.G. It is grounded on the teacher's Beam
// element's Nstations field and distributed-load profile (QnL/QnR/Qt in
// ele/solid/beam.go), generalized from gofem's nonlinear residual
// formulation to the direct trapezoidal-shear recursion the spec
// prescribes.
package diagram

import "github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"

// Sample is one point of the diagram: position x along the member
// (meters, x in [0,L]), moment Mz, and shear Fy at that position.
type Sample struct {
	X  float64
	Mz float64
	Fy float64
}

// PointLoad is a single concentrated local-Y load at parametric-derived
// position s (meters from the i-end).
type PointLoad struct {
	S float64
	P float64
}

// SpanProfile describes the local-Y load acting on one member: a
// uniformly-distributed or trapezoidal intensity over [s0,s1] (meters),
// plus any discrete point loads. W0/W1 are equal for a plain UDL.
type SpanProfile struct {
	S0, S1     float64 // meters; S1==S0 means "no distributed load"
	W0, W1     float64 // intensity, N/m, positive downward
	PointLoads []PointLoad
}

// wAt returns the distributed-load intensity at position x (meters),
// linearly interpolated across [S0,S1] and zero outside it.
func (p SpanProfile) wAt(x float64) float64 {
	if p.S1 <= p.S0 || x < p.S0 || x > p.S1 {
		return 0
	}
	t := (x - p.S0) / (p.S1 - p.S0)
	return p.W0 + (p.W1-p.W0)*t
}

// BuildSpanProfile collects a member's local-Y loads from a load case into
// the shape Trace consumes.
func BuildSpanProfile(lc *model.LoadCase, memberID string, length float64) SpanProfile {
	var profile SpanProfile
	profile.S0, profile.S1 = length, length // no distributed load by default
	for _, ld := range lc.Loads {
		if ld.Member != memberID {
			continue
		}
		switch ld.Kind {
		case model.MemberPoint:
			profile.PointLoads = append(profile.PointLoads, PointLoad{S: ld.S * length, P: ld.Vec[1]})
		case model.MemberUDL:
			profile.S0, profile.S1 = ld.S0*length, ld.S1*length
			profile.W0, profile.W1 = ld.W0, ld.W0
		case model.MemberTrapz:
			profile.S0, profile.S1 = ld.S0*length, ld.S1*length
			profile.W0, profile.W1 = ld.W0, ld.W1
		}
	}
	return profile
}

// Trace computes the (x, Mz, Fy) sample sequence for a member, per the
// seeded trapezoidal recursion in spec.md §4.G:
//
//  1. seed V(0)=Vy,i, M(0)=Mz,i from the end forces
//  2. for each segment, q = w_y at the segment midpoint (positive
//     downward); V(x+Δ) = V(x) - q·Δ
//  3. M(x+Δ) = M(x) + ½(V(x)+V(x+Δ))·Δ  (trapezoidal rule over the shear)
//  4. subtract any point load crossed within (x, x+Δ] from V and its
//     moment contribution from M
//
// The final sample is overwritten with the j-end values to absorb
// rounding drift, per spec.md §4.G and the diagram end-matching invariant
// (spec.md §8 property 5).
func Trace(vyI, mzI, vyJ, mzJ float64, length float64, profile SpanProfile, segments int) []Sample {
	if segments < 1 {
		segments = 1
	}
	samples := make([]Sample, segments+1)
	delta := length / float64(segments)

	v, mz := vyI, mzI
	samples[0] = Sample{X: 0, Mz: mz, Fy: v}

	for p := 0; p < segments; p++ {
		xp := float64(p) * delta
		xNext := xp + delta

		q := profile.wAt(xp + delta/2)
		vNext := v - q*delta
		mzNext := mz + 0.5*(v+vNext)*delta

		for _, pl := range profile.PointLoads {
			if pl.S > xp && pl.S <= xNext {
				vNext -= pl.P
				mzNext -= pl.P * (xNext - pl.S)
			}
		}

		v, mz = vNext, mzNext
		samples[p+1] = Sample{X: xNext, Mz: mz, Fy: v}
	}

	samples[segments].Mz = mzJ
	samples[segments].Fy = vyJ
	return samples
}
