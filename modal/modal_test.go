package modal

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
)

// twoDOFShear returns the classic two-story shear-building stiffness
// [[20,-10],[-10,10]]e6 N/m with a lumped mass of 100 kg at each story.
// Its generalized eigenvalues, M^-1*K = [[2e5,-1e5],[-1e5,1e5]], solve to
// lambda = (3e5 +/- sqrt(5e10))/2 by the quadratic formula on the
// characteristic polynomial lambda^2 - 3e5*lambda + 1e10 = 0.
func twoDOFShear() (*la.CSR, []float64) {
	k := la.FromDense([][]float64{
		{20e6, -10e6},
		{-10e6, 10e6},
	})
	mass := []float64{100, 100}
	return k, mass
}

func Test_modal01(tst *testing.T) {

	chk.PrintTitle("modal01: two-story shear model eigenvalues match the hand-solved characteristic polynomial")

	k, mass := twoDOFShear()
	res, err := Solve(k, mass, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(res.Omega2), 2)

	disc := math.Sqrt(5e10)
	lambdaLow := (3e5 - disc) / 2
	lambdaHigh := (3e5 + disc) / 2

	chk.Scalar(tst, "omega2[0]", 1e-3, res.Omega2[0], lambdaLow)
	chk.Scalar(tst, "omega2[1]", 1e-3, res.Omega2[1], lambdaHigh)

	if res.Omega2[0] > res.Omega2[1] {
		tst.Fatal("expected ascending frequency order")
	}
	for _, lam := range res.Omega2 {
		if lam < 0 {
			tst.Fatal("expected non-negative eigenvalues")
		}
	}

	expectedF0 := math.Sqrt(lambdaLow) / (2 * math.Pi)
	chk.Scalar(tst, "f0", 1e-6, res.Frequencies[0], expectedF0)
}

func Test_modal02(tst *testing.T) {

	chk.PrintTitle("modal02: truncating to nModes returns only the lowest modes")

	k, mass := twoDOFShear()
	res, err := Solve(k, mass, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(res.Omega2), 1)
	chk.IntAssert(len(res.Modes), 1)
	chk.IntAssert(len(res.Modes[0]), 2)
}

func Test_modal03(tst *testing.T) {

	chk.PrintTitle("modal03: a mass-vector length mismatch is rejected")

	k, _ := twoDOFShear()
	_, err := Solve(k, []float64{100}, 0)
	if err == nil {
		tst.Fatal("expected an error for a mismatched mass vector length")
	}
}
