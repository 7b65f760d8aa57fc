package frame

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
)

func Test_stiffness01(tst *testing.T) {

	chk.PrintTitle("stiffness01: local stiffness matrix is symmetric")

	p := Properties{E: 2e11, G: 7.7e10, A: 0.01, Iy: 1e-5, Iz: 2e-5, J: 3e-5}
	k := LocalStiffness(p, 4.0)
	asym := la.MaxAbsAsymmetry(&k)
	chk.Scalar(tst, "max relative asymmetry", 1e-14, asym, 0)
}

func Test_stiffness02(tst *testing.T) {

	chk.PrintTitle("stiffness02: axial stiffness recovers EA/L under a 1 mm elongation")

	p := Properties{E: 2e11, G: 7.7e10, A: 0.01, Iy: 1e-5, Iz: 2e-5, J: 3e-5}
	L := 2.0
	k := LocalStiffness(p, L)

	var u la.Vec12
	u[6] = 1e-3 // 1 mm elongation at the j-end
	f := EndForces(k, u)
	expected := p.E * p.A / L * 1e-3
	chk.Scalar(tst, "axial force at i-end", 1e-6, -f[0], expected)
	chk.Scalar(tst, "axial force at j-end", 1e-6, f[6], expected)
}

func Test_element01(tst *testing.T) {

	chk.PrintTitle("element01: global stiffness of an axial member along X matches local")

	p := Properties{E: 2e11, G: 7.7e10, A: 0.01, Iy: 1e-5, Iz: 2e-5, J: 3e-5}
	el := Build([3]float64{0, 0, 0}, [3]float64{4, 0, 0}, p, 0)
	chk.Scalar(tst, "length", 1e-12, el.Length, 4)

	// member axis aligned with global X: local x is global X, so the axial
	// term K[0][0] is the same in both frames (the bending axes are
	// rotated: local y is global Z).
	chk.Scalar(tst, "K[0][0] (axial)", 1e-3, el.Kglobal[0][0], el.Klocal[0][0])
}

func Test_element02(tst *testing.T) {

	chk.PrintTitle("element02: degenerate-length member is the caller's concern, not Build's")

	p := Properties{E: 2e11, A: 0.01, Iy: 1e-5, Iz: 1e-5, J: 2e-5}
	el := Build([3]float64{1, 1, 1}, [3]float64{1, 1, 1}, p, 0)
	chk.Scalar(tst, "zero length reported", 1e-15, el.Length, 0)
}
