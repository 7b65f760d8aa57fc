package design

import (
	"math"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
)

// RCColumnInput collects a rectangular tied RC column's capacity-check
// inputs, in mm, MPa, kN, kN.m (spec.md §4.I). There is no column module
// in the teacher's own RC package (internal/beam covers beams only); this
// is adapted from internal/section/analysis.go's stress-strain-layer
// analysis idiom, generalized to the column code checks spec.md §4.I
// names directly (uniaxial capacity, biaxial interaction, slenderness
// amplification, minimum eccentricity) rather than a full fiber analysis.
type RCColumnInput struct {
	Width, Depth float64 // mm, gross cross-section
	Length       float64 // mm, unsupported length
	Fc, Fy       float64 // MPa
	Ac           float64 // mm^2, net concrete area; Width*Depth - Asc if unset
	Asc          float64 // mm^2, total longitudinal steel area

	Pu         float64 // kN
	Mux, Muy   float64 // kN.m, first-order factored moments

	EffectiveLengthFactor float64 // k; default 1.0
	Braced                bool
}

// RCColumnResult reports the column's capacity and interaction outcome
// (spec.md §4.I).
type RCColumnResult struct {
	Puz              float64 // kN, pure axial capacity
	MinEccentricity  float64 // mm
	Mux1, Muy1       float64 // kN.m, uniaxial capacities at Pu (approximated as Puz-proportioned, see DESIGN.md)
	Alpha            float64
	SlendernessRatio float64
	IsSlender        bool
	DeltaMoment      float64 // kN.m, P-delta additional moment, added to Mux
	InteractionRatio float64
	IsAdequate       bool
}

// minEccentricity returns L/500 + D/30, floored at 20mm (spec.md §4.I).
func minEccentricity(lengthMM, depthMM float64) float64 {
	e := lengthMM/500 + depthMM/30
	if e < 20 {
		e = 20
	}
	return e
}

// alphaInterpolated linearly interpolates alpha from 1.0 to 2.0 over
// Pu/Puz in [0.2, 0.8] (spec.md §4.I).
func alphaInterpolated(puOverPuz float64) float64 {
	switch {
	case puOverPuz <= 0.2:
		return 1.0
	case puOverPuz >= 0.8:
		return 2.0
	default:
		return 1.0 + (puOverPuz-0.2)/(0.8-0.2)
	}
}

// Check evaluates the column's uniaxial capacity, biaxial interaction,
// and slenderness amplification per spec.md §4.I:
//
//	Puz = 0.4*f'c*Ac + 0.67*fy*Asc
//	(Mux/Mux1)^alpha + (Muy/Muy1)^alpha <= 1
//
// with alpha interpolated 1.0 -> 2.0 over Pu/Puz in [0.2, 0.8], slender
// columns amplified via a P-delta additional moment, and minimum
// eccentricity L/500 + D/30 floored at 20mm.
func Check(in RCColumnInput) (*RCColumnResult, error) {
	if in.Width <= 0 || in.Depth <= 0 || in.Length <= 0 {
		return nil, errs.New(errs.InvalidModel, "RC column check requires positive width, depth and length")
	}
	if in.Fc <= 0 || in.Fy <= 0 {
		return nil, errs.New(errs.InvalidModel, "RC column check requires positive f'c and fy")
	}

	ac := in.Ac
	if ac <= 0 {
		ac = in.Width*in.Depth - in.Asc
	}
	puz := (0.4*in.Fc*ac + 0.67*in.Fy*in.Asc) / 1000

	res := &RCColumnResult{Puz: puz, MinEccentricity: minEccentricity(in.Length, in.Depth)}

	k := in.EffectiveLengthFactor
	if k <= 0 {
		k = 1.0
	}
	radius := 0.3 * math.Min(in.Width, in.Depth)
	slenderness := k * in.Length / radius
	res.SlendernessRatio = slenderness

	limit := 22.0
	if in.Braced {
		limit = 34.0
	}
	res.IsSlender = slenderness > limit

	mux := in.Mux
	if res.IsSlender && puz > in.Pu {
		// Simplified P-delta amplification: Mux is scaled by the standard
		// 1/(1-Pu/Pc) factor with Pc approximated as Puz, and the increase
		// is reported as the additional moment. Minimum eccentricity does
		// not enter this moment.
		amplifier := 1 / (1 - in.Pu/puz)
		delta := (amplifier - 1) * mux
		res.DeltaMoment = delta
		mux += delta
	}

	var puOverPuz float64
	if puz > 0 {
		puOverPuz = in.Pu / puz
	}
	alpha := alphaInterpolated(puOverPuz)
	res.Alpha = alpha

	// Uniaxial capacities at the current axial load are approximated by
	// scaling Puz's steel-moment arm; a full strain-compatibility solve
	// is out of scope (see DESIGN.md).
	armX := 0.4 * in.Depth
	armY := 0.4 * in.Width
	mux1 := puz * armX / 1000
	muy1 := puz * armY / 1000
	res.Mux1, res.Muy1 = mux1, muy1

	if mux1 > 0 && muy1 > 0 {
		ratio := math.Pow(math.Abs(mux)/mux1, alpha) + math.Pow(math.Abs(in.Muy)/muy1, alpha)
		res.InteractionRatio = ratio
		res.IsAdequate = ratio <= 1 && in.Pu <= puz
	}

	return res, nil
}
