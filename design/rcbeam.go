package design

import (
	"math"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
)

// NSCP 2015 material constants, grounded on
// alexiusacademia-gorcb/internal/nscp/materials.go (reproduced here rather
// than imported since that package is GOPATH-relative to the teacher's own
// module path, not this one; the constants and formulas are copied
// verbatim).
const (
	rcBeta1Max        = 0.85
	rcBeta1Min        = 0.65
	rcEpsilonCU       = 0.003
	rcPhiFlexure      = 0.90
	rcPhiShear        = 0.75
	rcEs              = 200000.0 // MPa
)

func rcBeta1(fc float64) float64 {
	if fc <= 28 {
		return rcBeta1Max
	}
	b := rcBeta1Max - 0.05*(fc-28)/7
	return math.Max(b, rcBeta1Min)
}

func rcRhoMin(fc, fy float64) float64 {
	return math.Max(math.Sqrt(fc)/(4*fy), 1.4/fy)
}

func rcRhoMax(fc, fy float64) float64 {
	beta1 := rcBeta1(fc)
	return 0.85 * beta1 * (fc / fy) * (rcEpsilonCU / (rcEpsilonCU + 0.005))
}

// RCBeamInput collects a rectangular RC beam section's flexure/shear
// sizing inputs, in the teacher's native units: mm, MPa, kN, kN.m
// (spec.md §4.I). LimitRatio is the neutral-axis-to-depth ratio that
// bounds the singly-reinforced compression block; callers may supply it
// directly, and when it is zero DesignFlexure derives it from fy (0.48
// for fy >= 500 MPa, 0.53 otherwise).
type RCBeamInput struct {
	Width          float64 // b, mm
	Height         float64 // h, mm
	Cover          float64 // mm, to tension steel centroid
	Fc             float64 // f'c, MPa
	Fy             float64 // fy, MPa
	Mu             float64 // factored moment, kN.m
	Vu             float64 // factored shear, kN
	LimitRatio     float64 // c/d limit; 0 means "derive from fy" (0.48 for 500, else 0.53)
}

// RCBeamFlexureResult reports the flexure sizing outcome (spec.md §4.I).
type RCBeamFlexureResult struct {
	EffectiveDepth    float64
	RhoMin, RhoMax    float64
	AsRequired        float64
	RequiresDoubly    bool
	PhiMn             float64
	NeutralAxisDepth  float64
	CompressionDepth  float64
}

// RCBeamShearResult reports the stirrup sizing outcome (spec.md §4.I).
type RCBeamShearResult struct {
	Vc          float64 // concrete shear capacity, kN
	VsRequired  float64 // steel shear demand Vu/phi - Vc, kN (0 if phi*Vc alone governs)
	SpacingCap  float64 // mm, min(0.75d, 300)
	Spacing     float64 // mm, snapped to 25mm increments
	StirrupsRequired bool
}

// DesignFlexure solves the rectangular stress-block equation for the
// required tension steel area, per spec.md §4.I: Mu is compared with the
// singly-reinforced limit moment at c = limitRatio*d; above it the design
// is flagged doubly-reinforced, below it rho follows in closed form from
// Rn (no iteration on the neutral-axis depth).
//
// Grounded directly on
// alexiusacademia-gorcb/internal/beam/singly.go's SinglyReinforced.Design
// (quadratic rho-from-Rn solution) and doubly.go's Mu,lim threshold
// check.
func DesignFlexure(in RCBeamInput) (*RCBeamFlexureResult, error) {
	if in.Width <= 0 || in.Height <= 0 || in.Cover <= 0 {
		return nil, errs.New(errs.InvalidModel, "RC beam flexure design requires positive width, height and cover")
	}
	if in.Fc <= 0 || in.Fy <= 0 {
		return nil, errs.New(errs.InvalidModel, "RC beam flexure design requires positive f'c and fy")
	}
	d := in.Height - in.Cover
	beta1 := rcBeta1(in.Fc)

	limitRatio := in.LimitRatio
	if limitRatio <= 0 {
		if in.Fy >= 500 {
			limitRatio = 0.48
		} else {
			limitRatio = 0.53
		}
	}

	rhoMin := rcRhoMin(in.Fc, in.Fy)
	rhoMax := rcRhoMax(in.Fc, in.Fy)

	res := &RCBeamFlexureResult{EffectiveDepth: d, RhoMin: rhoMin, RhoMax: rhoMax}

	cLim := limitRatio * d
	aLim := beta1 * cLim
	muLimNmm := rcPhiFlexure * 0.85 * in.Fc * in.Width * aLim * (d - aLim/2)
	muLim := muLimNmm / 1e6

	if in.Mu > muLim {
		res.RequiresDoubly = true
		res.PhiMn = muLim
		res.NeutralAxisDepth = cLim
		res.CompressionDepth = aLim
		asMax := rhoMax * in.Width * d
		res.AsRequired = asMax
		return res, nil
	}

	muNmm := in.Mu * 1e6
	rn := muNmm / (rcPhiFlexure * in.Width * d * d)
	term := 2 * rn / (0.85 * in.Fc)
	if term > 1 {
		return nil, errs.New(errs.InvalidModel, "RC beam section inadequate: Mu too high for singly reinforced design")
	}

	rho := (0.85 * in.Fc / in.Fy) * (1 - math.Sqrt(1-term))
	if rho < rhoMin {
		rho = rhoMin
	}

	asReq := rho * in.Width * d
	a := asReq * in.Fy / (0.85 * in.Fc * in.Width)
	c := a / beta1
	phiMn := rcPhiFlexure * asReq * in.Fy * (d - a/2) / 1e6

	res.AsRequired = asReq
	res.PhiMn = phiMn
	res.NeutralAxisDepth = c
	res.CompressionDepth = a
	return res, nil
}

// DesignShear checks shear per spec.md §4.I: concrete capacity
// 0.85*sqrt(f'c)*b*d/1000 (kN); stirrups are required when Vu exceeds
// phi*Vc, with VsRequired = Vu/phi - Vc. The reported spacing is the cap
// min(0.75d, 300mm) snapped down to a 25mm increment; it does not depend
// on VsRequired or on a stirrup bar size.
func DesignShear(in RCBeamInput, d float64) (*RCBeamShearResult, error) {
	if in.Width <= 0 || d <= 0 || in.Fc <= 0 {
		return nil, errs.New(errs.InvalidModel, "RC beam shear design requires positive width, depth and f'c")
	}
	vc := 0.85 * math.Sqrt(in.Fc) * in.Width * d / 1000

	res := &RCBeamShearResult{Vc: vc, SpacingCap: math.Min(0.75*d, 300)}
	if in.Vu <= rcPhiShear*vc {
		return res, nil
	}

	res.StirrupsRequired = true
	res.VsRequired = in.Vu/rcPhiShear - vc

	spacing := res.SpacingCap
	spacing = math.Floor(spacing/25) * 25
	if spacing < 25 {
		spacing = 25
	}
	res.Spacing = spacing
	return res, nil
}
