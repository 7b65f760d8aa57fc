package design

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rcbeam01(tst *testing.T) {

	chk.PrintTitle("rcbeam01: singly-reinforced flexure design matches the rho-from-Rn closed form")

	in := RCBeamInput{Width: 300, Height: 500, Cover: 60, Fc: 28, Fy: 415, Mu: 150}
	res, err := DesignFlexure(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if res.RequiresDoubly {
		tst.Fatal("expected a singly-reinforced design for this Mu")
	}

	d := in.Height - in.Cover
	chk.Scalar(tst, "effective depth", 1e-9, res.EffectiveDepth, d)

	rn := (in.Mu * 1e6) / (rcPhiFlexure * in.Width * d * d)
	term := 2 * rn / (0.85 * in.Fc)
	rho := (0.85 * in.Fc / in.Fy) * (1 - math.Sqrt(1-term))
	asReq := rho * in.Width * d
	a := asReq * in.Fy / (0.85 * in.Fc * in.Width)
	phiMn := rcPhiFlexure * asReq * in.Fy * (d - a/2) / 1e6

	chk.Scalar(tst, "As required", 1e-3, res.AsRequired, asReq)
	chk.Scalar(tst, "phiMn", 1e-3, res.PhiMn, phiMn)
	chk.Scalar(tst, "compression block depth a", 1e-6, res.CompressionDepth, a)
}

func Test_rcbeam02(tst *testing.T) {

	chk.PrintTitle("rcbeam02: Mu above the singly-reinforced limit flags a doubly-reinforced design")

	in := RCBeamInput{Width: 300, Height: 500, Cover: 60, Fc: 28, Fy: 415, Mu: 500}
	res, err := DesignFlexure(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !res.RequiresDoubly {
		tst.Fatal("expected a doubly-reinforced flag for an oversized Mu")
	}
	chk.Scalar(tst, "As required equals rhoMax*b*d", 1e-3, res.AsRequired, res.RhoMax*in.Width*res.EffectiveDepth)
}

func Test_rcbeam03(tst *testing.T) {

	chk.PrintTitle("rcbeam03: rho floors at rhoMin when the computed ratio would fall below it")

	// a very lightly loaded, generously sized section: rho-from-Rn << rhoMin
	in := RCBeamInput{Width: 400, Height: 600, Cover: 60, Fc: 28, Fy: 415, Mu: 5}
	res, err := DesignFlexure(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d := in.Height - in.Cover
	chk.Scalar(tst, "As required equals rhoMin*b*d", 1e-3, res.AsRequired, res.RhoMin*in.Width*d)
}

func Test_rcbeam04(tst *testing.T) {

	chk.PrintTitle("rcbeam04: shear design only triggers stirrups once Vu exceeds phi*Vc")

	in := RCBeamInput{Width: 300, Height: 500, Fc: 28, Vu: 50}
	d := 440.0
	vc := 0.85 * math.Sqrt(in.Fc) * in.Width * d / 1000
	res, err := DesignShear(in, d)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "Vc", 1e-6, res.Vc, vc)
	if res.StirrupsRequired {
		tst.Fatal("expected no stirrups when Vu < phi*Vc")
	}

	in.Vu = 600
	res2, err := DesignShear(in, d)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !res2.StirrupsRequired {
		tst.Fatal("expected stirrups once Vu exceeds phi*Vc")
	}
	chk.Scalar(tst, "Vs required", 1e-6, res2.VsRequired, in.Vu/rcPhiShear-vc)
	if res2.Spacing > res2.SpacingCap || math.Mod(res2.Spacing, 25) != 0 {
		tst.Fatalf("expected spacing snapped to a 25mm increment under the cap, got %v (cap %v)", res2.Spacing, res2.SpacingCap)
	}
}
