package frame

import (
	"math"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
)

// Element is a fully-formed frame element: its local stiffness, rotation,
// and the global-stiffness congruence transform, ready to scatter into
// the global system (spec.md §4.D: "For each member: compute L, k_local,
// R, T, k_global = Tᵀ k_local T").
type Element struct {
	Length   float64
	Rotation Rotation3
	T12      [12][12]float64
	Klocal   la.Mat12
	Kglobal  la.Mat12
}

// Build computes an element's full local/rotation/global stiffness triple
// for the given endpoints, properties, and roll angle. Degenerate members
// (length below 1e-10) are the caller's concern to detect and skip, per
// spec.md §4.D — Build does not itself guard against L=0.
func Build(pi, pj [3]float64, props Properties, roll float64) Element {
	dx, dy, dz := pj[0]-pi[0], pj[1]-pi[1], pj[2]-pi[2]
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)

	rot := ComputeRotation(pi, pj, length, roll)
	t12 := Transform12(rot)
	klocal := LocalStiffness(props, length)

	var t12m la.Mat12 = la.Mat12(t12)
	kglobal := la.Congruence(&t12m, &klocal)
	kglobal.SymmetrizeInPlace()

	return Element{
		Length:   length,
		Rotation: rot,
		T12:      t12,
		Klocal:   klocal,
		Kglobal:  kglobal,
	}
}
