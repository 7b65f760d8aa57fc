// Package design implements the code-style checks of spec.md §4.I: steel
// interaction ratios and RC beam/column sizing. Both are adapted from
// alexiusacademia-gorcb's internal/beam and internal/section packages —
// generalized from a standalone CLI calculator (one section, one typed
// moment, prompted interactively) into pure functions that take
// caller-supplied factored forces (plus model.Section/model.Material
// records for the steel check).
package design

import (
	"math"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
)

// SteelCheckInput collects a single member's steel interaction inputs
// (spec.md §4.I).
type SteelCheckInput struct {
	Section *model.Section
	Mat     *model.Material

	UnbracedLength       float64 // L, m
	EffectiveLengthFactor float64 // k
	UnbracedFlexuralLength float64 // L_b, m

	Pu  float64 // axial force, N (compression positive)
	Mux float64 // N.m
	Muy float64 // N.m

	PhiTension     float64 // default 0.90
	PhiCompression float64 // default 0.90
	PhiFlexure     float64 // default 0.90
}

// SteelCheckResult reports the governing utilization and its term (spec.md
// §4.I).
type SteelCheckResult struct {
	TensionCapacity     float64 // N
	CompressionCapacity float64 // N
	FlexureCapacityX     float64 // N.m
	Fcr                 float64 // N/m^2
	Fe                  float64 // Euler critical stress, N/m^2

	TensionRatio     float64
	CompressionRatio float64
	FlexureRatio     float64
	InteractionRatio float64

	Utilization   float64
	GoverningTerm string
}

// lpLr returns the plastic and elastic unbraced-length limits for the
// linear flexure-capacity reduction, following a conventional
// steel-beam lateral-torsional-buckling bracket. rY is the weak-axis
// radius of gyration.
func lpLr(rY, e, fy float64) (lp, lr float64) {
	lp = 1.76 * rY * math.Sqrt(e/fy)
	lr = 4.0 * lp
	return
}

// SteelCheck computes the governing interaction ratio for a single
// member per spec.md §4.I: tension capacity phi_t*A*fy, compression
// capacity phi_c*A*f_cr with f_cr = min(fy, 0.877*Fe) and Fe =
// pi^2*E/(kL/r)^2 from the more slender axis, flexure capacity
// phi_m*fy*Z with a linear reduction between L_p and L_r, and the
// governing term among the three individual ratios (tension, compression,
// major-axis flexure) and the interaction (Pu/Pc) + (8/9)(Mux/Mcx). Muy
// is not checked: no minor-axis flexure ratio is computed.
func SteelCheck(in SteelCheckInput) (*SteelCheckResult, error) {
	sec, mat := in.Section, in.Mat
	if sec == nil || mat == nil {
		return nil, errs.New(errs.InvalidModel, "steel check requires a section and material")
	}
	if sec.A <= 0 || sec.Iy <= 0 || sec.Iz <= 0 {
		return nil, errs.New(errs.InvalidModel, "steel check requires positive A, Iy, Iz")
	}
	if mat.YieldStrength <= 0 {
		return nil, errs.New(errs.InvalidModel, "steel check requires a positive yield strength")
	}

	phiT := in.PhiTension
	if phiT <= 0 {
		phiT = 0.90
	}
	phiC := in.PhiCompression
	if phiC <= 0 {
		phiC = 0.90
	}
	phiM := in.PhiFlexure
	if phiM <= 0 {
		phiM = 0.90
	}

	ry := math.Sqrt(sec.Iy / sec.A)
	rz := math.Sqrt(sec.Iz / sec.A)
	rMin := math.Min(ry, rz)

	kl := in.EffectiveLengthFactor * in.UnbracedLength
	var fe float64
	if kl > 0 && rMin > 0 {
		slenderness := kl / rMin
		fe = math.Pi * math.Pi * mat.E / (slenderness * slenderness)
	}

	fy := mat.YieldStrength
	fcr := fy
	if fe > 0 {
		fcr = math.Min(fy, 0.877*fe)
	}

	tensionCap := phiT * sec.A * fy
	compressionCap := phiC * sec.A * fcr

	zx := sec.Zz
	if zx <= 0 {
		zx = sec.Zpz
	}
	if zx <= 0 {
		return nil, errs.New(errs.InvalidModel, "steel check requires a nonzero section modulus about z")
	}
	mp := fy * zx
	lp, lr := lpLr(ry, mat.E, fy)
	flexureCap := phiM * mp
	if in.UnbracedFlexuralLength > lp {
		if in.UnbracedFlexuralLength >= lr {
			flexureCap = phiM * mp * (lp / in.UnbracedFlexuralLength)
		} else {
			frac := (in.UnbracedFlexuralLength - lp) / (lr - lp)
			flexureCap = phiM * (mp - frac*(mp-0.7*mp))
		}
	}

	res := &SteelCheckResult{
		TensionCapacity:     tensionCap,
		CompressionCapacity: compressionCap,
		FlexureCapacityX:    flexureCap,
		Fcr:                 fcr,
		Fe:                  fe,
	}

	if in.Pu >= 0 {
		if compressionCap > 0 {
			res.CompressionRatio = in.Pu / compressionCap
		}
	} else if tensionCap > 0 {
		res.TensionRatio = -in.Pu / tensionCap
	}
	if flexureCap > 0 {
		res.FlexureRatio = math.Abs(in.Mux) / flexureCap
	}

	pc := compressionCap
	if in.Pu < 0 {
		pc = tensionCap
	}
	if pc > 0 && flexureCap > 0 {
		res.InteractionRatio = math.Abs(in.Pu)/pc + (8.0/9.0)*(math.Abs(in.Mux)/flexureCap)
	}

	res.Utilization = res.TensionRatio
	res.GoverningTerm = "tension"
	terms := []struct {
		name string
		val  float64
	}{
		{"compression", res.CompressionRatio},
		{"flexure", res.FlexureRatio},
		{"interaction", res.InteractionRatio},
	}
	for _, t := range terms {
		if t.val > res.Utilization {
			res.Utilization = t.val
			res.GoverningTerm = t.name
		}
	}
	return res, nil
}
