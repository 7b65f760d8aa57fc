package loadgen

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_seismic01(tst *testing.T) {

	chk.PrintTitle("seismic01: FundamentalPeriod matches the RC empirical formula")

	t, err := FundamentalPeriod(FrameRC, 9, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "Ta", 1e-6, t, 0.075*math.Pow(9, 0.75))
}

func Test_seismic02(tst *testing.T) {

	chk.PrintTitle("seismic02: SpectralCoefficient covers all three branches of the shape")

	// ascending branch: period below Ts
	sa, err := SpectralCoefficient(0.05, SoilII, 5)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "ascending", 1e-9, sa, 1.0+(0.05/0.20)*1.5)

	// plateau
	sa, _ = SpectralCoefficient(0.39, SoilII, 5)
	chk.Scalar(tst, "plateau", 1e-12, sa, 2.5)

	// descending branch: period above T0
	sa, _ = SpectralCoefficient(1.2, SoilII, 5)
	chk.Scalar(tst, "descending", 1e-9, sa, 2.5*1.36*0.60/1.2)
}

func Test_seismic03(tst *testing.T) {

	chk.PrintTitle("seismic03: DampingFactor interpolates between table entries and clamps at the ends")

	chk.Scalar(tst, "below range clamps", 1e-12, DampingFactor(1), 1.40)
	chk.Scalar(tst, "above range clamps", 1e-12, DampingFactor(40), 0.53)
	chk.Scalar(tst, "midway 5-7", 1e-9, DampingFactor(6), 1.00+0.5*(0.90-1.00))
}

// Test_seismic04 runs the full equivalent-static distribution for a
// three-story RC frame (h=9m, equal story weights) and checks every
// output field against a hand-computed reference.
func Test_seismic04(tst *testing.T) {

	chk.PrintTitle("seismic04: three-story equivalent-static distribution matches a hand-computed reference")

	in := SeismicInput{
		Zone:              ZoneIV,
		Importance:        ImportanceStandardI,
		Soil:              SoilII,
		ResponseReduction: 5,
		FrameType:         FrameRC,
		Heights:           []float64{3, 6, 9},
		Weights:           []float64{100, 100, 100},
	}
	res, err := Generate(in)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	chk.Scalar(tst, "period", 1e-6, res.Period, 0.075*math.Pow(9, 0.75))
	chk.Scalar(tst, "spectral coeff (plateau)", 1e-9, res.SpectralCoeff, 2.5)
	chk.Scalar(tst, "Ah", 1e-9, res.Ah, 0.06)
	chk.Scalar(tst, "base shear", 1e-6, res.BaseShear, 18.0)

	chk.Vector(tst, "story forces", 1e-6, res.StoryForces, []float64{18.0 / 14, 36.0 / 7, 162.0 / 14})
	chk.Vector(tst, "story shears", 1e-6, res.StoryShears, []float64{18.0, 16.0 + 5.0/7, 11.0 + 8.0/14})
	chk.Vector(tst, "overturning moments", 1e-4, res.OverturningMoments, []float64{84.857143, 34.714286, 0})
}

func Test_seismic05(tst *testing.T) {

	chk.PrintTitle("seismic05: mismatched heights/weights lengths are rejected")

	_, err := Generate(SeismicInput{
		Zone: ZoneII, Importance: ImportanceStandardI, ResponseReduction: 5,
		FrameType: FrameRC, Heights: []float64{3, 6}, Weights: []float64{100},
	})
	if err == nil {
		tst.Fatal("expected an error for mismatched heights/weights")
	}
}
