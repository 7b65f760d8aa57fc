package design

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rccolumn01(tst *testing.T) {

	chk.PrintTitle("rccolumn01: Puz matches 0.4*fc*Ac + 0.67*fy*Asc")

	in := RCColumnInput{Width: 400, Depth: 400, Length: 3000, Fc: 28, Fy: 415, Asc: 2000, Pu: 500, Mux: 80, Muy: 40, Braced: true}
	res, err := Check(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	ac := in.Width*in.Depth - in.Asc
	expectedPuz := (0.4*in.Fc*ac + 0.67*in.Fy*in.Asc) / 1000
	chk.Scalar(tst, "Puz", 1e-6, res.Puz, expectedPuz)
}

func Test_rccolumn02(tst *testing.T) {

	chk.PrintTitle("rccolumn02: minimum eccentricity floors at 20mm and otherwise follows L/500+D/30")

	chk.Scalar(tst, "short stocky column floors at 20mm", 1e-9, minEccentricity(1000, 200), 20)

	l, d := 6000.0, 600.0
	chk.Scalar(tst, "tall column", 1e-9, minEccentricity(l, d), l/500+d/30)
}

func Test_rccolumn03(tst *testing.T) {

	chk.PrintTitle("rccolumn03: alpha interpolates linearly between the 0.2 and 0.8 axial-ratio anchors")

	chk.Scalar(tst, "below 0.2 clamps to 1.0", 1e-12, alphaInterpolated(0.05), 1.0)
	chk.Scalar(tst, "above 0.8 clamps to 2.0", 1e-12, alphaInterpolated(0.95), 2.0)
	chk.Scalar(tst, "midpoint 0.5", 1e-9, alphaInterpolated(0.5), 1.5)
}

func Test_rccolumn04(tst *testing.T) {

	chk.PrintTitle("rccolumn04: a braced column below the slenderness limit applies no P-delta amplification")

	in := RCColumnInput{Width: 400, Depth: 400, Length: 3000, Fc: 28, Fy: 415, Asc: 2000, Pu: 500, Mux: 80, Muy: 40, Braced: true}
	res, err := Check(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if res.IsSlender {
		tst.Fatal("expected a braced column at slenderness 25 (limit 34) to be classified non-slender")
	}
	chk.Scalar(tst, "no delta moment applied", 1e-12, res.DeltaMoment, 0)

	alpha := alphaInterpolated(in.Pu / res.Puz)
	expectedRatio := math.Pow(math.Abs(in.Mux)/res.Mux1, alpha) + math.Pow(math.Abs(in.Muy)/res.Muy1, alpha)
	chk.Scalar(tst, "interaction ratio", 1e-9, res.InteractionRatio, expectedRatio)
	if !res.IsAdequate {
		tst.Fatal("expected this section to be adequate")
	}
}

func Test_rccolumn05(tst *testing.T) {

	chk.PrintTitle("rccolumn05: an unbraced column above the slenderness limit amplifies Mux via P-delta")

	in := RCColumnInput{Width: 400, Depth: 400, Length: 3000, Fc: 28, Fy: 415, Asc: 2000, Pu: 500, Mux: 80, Muy: 40, Braced: false}
	res, err := Check(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !res.IsSlender {
		tst.Fatal("expected a slenderness of 25 with limit 22 (unbraced) to classify as slender")
	}

	amplifier := 1 / (1 - in.Pu/res.Puz)
	expectedDelta := (amplifier - 1) * in.Mux
	chk.Scalar(tst, "delta moment", 1e-6, res.DeltaMoment, expectedDelta)
}

func Test_rccolumn06(tst *testing.T) {

	chk.PrintTitle("rccolumn06: non-positive geometry is rejected")

	_, err := Check(RCColumnInput{Width: 0, Depth: 400, Length: 3000, Fc: 28, Fy: 415})
	if err == nil {
		tst.Fatal("expected an error for non-positive width")
	}
}
