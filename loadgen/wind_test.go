package loadgen

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_wind01(tst *testing.T) {

	chk.PrintTitle("wind01: k2 terrain-factor interpolation matches the table at and between grid points")

	chk.Scalar(tst, "k2 at grid point (z=10)", 1e-12, must(k2(1, ClassA, 10)), 1.05)

	got := must(k2(1, ClassA, 12.5))
	chk.Scalar(tst, "k2 midway 10-15", 1e-9, got, 1.05+0.5*(1.09-1.05))

	chk.Scalar(tst, "k2 below range clamps to first entry", 1e-12, must(k2(1, ClassA, 0)), 1.05)
	chk.Scalar(tst, "k2 above range clamps to last entry", 1e-12, must(k2(1, ClassA, 10000)), 1.40)
}

func must(v float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return v
}

func Test_wind02(tst *testing.T) {

	chk.PrintTitle("wind02: topography factor K3 is 1 for shallow slope and scales above 3 degrees, capped at 45")

	flat := Topography{Slope: 3, UpwindFraction: 1}
	chk.Scalar(tst, "K3 flat", 1e-12, flat.K3(), 1)

	steep := Topography{Slope: 30, UpwindFraction: 1}
	chk.Scalar(tst, "K3 at slope=30", 1e-9, steep.K3(), 1+0.01*(30-3)*1)

	capped := Topography{Slope: 60, UpwindFraction: 1}
	chk.Scalar(tst, "K3 capped at slope=45", 1e-9, capped.K3(), 1+0.01*(45-3)*1)
}

func Test_wind03(tst *testing.T) {

	chk.PrintTitle("wind03: Generate matches a hand-computed single-strip pressure and force")

	in := WindInput{
		BasicSpeed: 50,
		Terrain:    1,
		Class:      ClassA,
		Height:     20,
		Width:      10,
		Opening:    OpeningNormal,
		StripCount: 1,
	}
	res, err := Wind(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(res.Profile), 1)

	const vz = 50 * 1.00 * 1.05 * 1
	const pz = 0.6 * vz * vz
	strip := res.Profile[0]
	chk.Scalar(tst, "Vz", 1e-9, strip.Vz, vz)
	chk.Scalar(tst, "Pz", 1e-6, strip.Pz, pz)

	const area = 20 * 10
	chk.Scalar(tst, "windward force", 1e-3, strip.WindwardForce, (0.8+0.2)*area*pz)
	chk.Scalar(tst, "leeward force", 1e-3, strip.LeewardForce, (0.5+0.2)*area*pz)
}

func Test_wind04(tst *testing.T) {

	chk.PrintTitle("wind04: an unknown structure class is rejected")

	_, err := Wind(WindInput{BasicSpeed: 50, Terrain: 1, Class: "Z", Height: 10, Width: 10, Opening: OpeningNormal})
	if err == nil {
		tst.Fatal("expected an error for an unknown structure class")
	}
}
