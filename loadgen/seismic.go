package loadgen

import (
	"math"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
)

// Zone is the seismic zone designation (spec.md §4.H).
type Zone string

const (
	ZoneII  Zone = "II"
	ZoneIII Zone = "III"
	ZoneIV  Zone = "IV"
	ZoneV   Zone = "V"
)

var zoneFactor = map[Zone]float64{
	ZoneII:  0.10,
	ZoneIII: 0.16,
	ZoneIV:  0.24,
	ZoneV:   0.36,
}

// ImportanceCategory selects the importance factor I (spec.md §4.H).
type ImportanceCategory string

const (
	ImportanceStandardI  ImportanceCategory = "standard-1"
	ImportanceStandardII ImportanceCategory = "standard-2"
	ImportanceEssential  ImportanceCategory = "essential"
	ImportanceHazardous  ImportanceCategory = "hazardous"
)

var importanceFactor = map[ImportanceCategory]float64{
	ImportanceStandardI:  1.0,
	ImportanceStandardII: 1.0,
	ImportanceEssential:  1.2,
	ImportanceHazardous:  1.5,
}

// SoilType selects the site-response spectrum (spec.md §4.H).
type SoilType string

const (
	SoilI   SoilType = "I"
	SoilII  SoilType = "II"
	SoilIII SoilType = "III"
)

// soilDescendingCoeff is the soil-dependent descending-branch coefficient
// of the three-piece spectrum (spec.md §4.H: "1.0 / 1.36 / 1.67").
var soilDescendingCoeff = map[SoilType]float64{
	SoilI:   1.0,
	SoilII:  1.36,
	SoilIII: 1.67,
}

// soilCornerPeriods gives (Ts, T0) for the ascending/plateau boundary and
// the plateau/descending boundary, widening with softer soil.
var soilCornerPeriods = map[SoilType][2]float64{
	SoilI:   {0.15, 0.40},
	SoilII:  {0.20, 0.60},
	SoilIII: {0.27, 0.80},
}

// FrameType selects the empirical fundamental-period formula (spec.md
// §4.H).
type FrameType string

const (
	FrameRC        FrameType = "rc"
	FrameSteel     FrameType = "steel"
	FrameShearWall FrameType = "shear-wall"
)

// FundamentalPeriod returns the empirical period T_a for the given frame
// type, height h (m), and (for shear-wall/masonry) depth d (m) in the
// direction considered, per spec.md §4.H's formulas.
func FundamentalPeriod(frame FrameType, h, d float64) (float64, error) {
	switch frame {
	case FrameRC:
		return 0.075 * math.Pow(h, 0.75), nil
	case FrameSteel:
		return 0.085 * math.Pow(h, 0.75), nil
	case FrameShearWall:
		if d <= 0 {
			return 0, errs.New(errs.InvalidModel, "shear-wall period formula requires a positive depth, got %v", d)
		}
		return 0.09 * h / math.Sqrt(d), nil
	default:
		return 0, errs.New(errs.InvalidModel, "unknown frame type %q", frame)
	}
}

// dampingCorrection is a documented lookup of the damping correction
// factor applied to S_a/g, indexed by damping ratio percent (spec.md
// §4.H / §6 "seismic.damping_percent", default 5).
var dampingCorrection = map[int]float64{
	2:  1.40,
	5:  1.00,
	7:  0.90,
	10: 0.80,
	15: 0.70,
	20: 0.63,
	25: 0.58,
	30: 0.53,
}

// DampingFactor interpolates the damping correction table, clamping to
// its end entries outside the documented range.
func DampingFactor(percent int) float64 {
	keys := []int{2, 5, 7, 10, 15, 20, 25, 30}
	if percent <= keys[0] {
		return dampingCorrection[keys[0]]
	}
	last := keys[len(keys)-1]
	if percent >= last {
		return dampingCorrection[last]
	}
	for i := 0; i < len(keys)-1; i++ {
		if percent >= keys[i] && percent <= keys[i+1] {
			lo, hi := dampingCorrection[keys[i]], dampingCorrection[keys[i+1]]
			t := float64(percent-keys[i]) / float64(keys[i+1]-keys[i])
			return lo + t*(hi-lo)
		}
	}
	return 1.0
}

// SpectralCoefficient evaluates the three-piece spectral shape S_a/g(T,
// soil) of spec.md §4.H: ascending to the plateau, a flat plateau at
// 2.5, then a descending hyperbola scaled by the soil's coefficient.
func SpectralCoefficient(period float64, soil SoilType, dampingPercent int) (float64, error) {
	corners, ok := soilCornerPeriods[soil]
	if !ok {
		return 0, errs.New(errs.InvalidModel, "unknown soil type %q", soil)
	}
	coeff, ok := soilDescendingCoeff[soil]
	if !ok {
		return 0, errs.New(errs.InvalidModel, "unknown soil type %q", soil)
	}
	ts, t0 := corners[0], corners[1]

	var sa float64
	switch {
	case period <= ts:
		if ts <= 0 {
			sa = 2.5
		} else {
			sa = 1.0 + (period/ts)*1.5
		}
	case period <= t0:
		sa = 2.5
	default:
		sa = 2.5 * coeff * t0 / period
	}

	if dampingPercent != 5 && dampingPercent > 0 {
		sa *= DampingFactor(dampingPercent)
	}
	return sa, nil
}

// SeismicInput collects the equivalent-static method's inputs (spec.md
// §4.H).
type SeismicInput struct {
	Zone               Zone
	Importance         ImportanceCategory
	Soil               SoilType
	ResponseReduction  float64 // R
	FrameType          FrameType
	Depth              float64 // d, only used by shear-wall/masonry period formula
	Period             float64 // user-supplied T; <= 0 means "compute T_a"
	DampingPercent     int     // default 5 if <= 0
	Heights            []float64 // story heights above base, m, ascending
	Weights            []float64 // story seismic weights W_i, kN
}

// SeismicResult is the static-equivalent seismic load generator's output
// (spec.md §4.H).
type SeismicResult struct {
	Period       float64
	SpectralCoeff float64
	Ah           float64 // design horizontal coefficient
	BaseShear    float64 // V_B, kN
	StoryForces  []float64 // Q_i, kN, same order as Heights/Weights
	StoryShears  []float64 // cumulative from the top, same order
	OverturningMoments []float64 // kN.m, at each level, from forces above
}

// Generate computes the NSCP-style equivalent static seismic load
// distribution exactly per spec.md §4.H.
func Generate(in SeismicInput) (*SeismicResult, error) {
	if len(in.Heights) == 0 || len(in.Heights) != len(in.Weights) {
		return nil, errs.New(errs.InvalidModel, "seismic generator requires matching non-empty heights and weights, got %d/%d", len(in.Heights), len(in.Weights))
	}
	z, ok := zoneFactor[in.Zone]
	if !ok {
		return nil, errs.New(errs.InvalidModel, "unknown seismic zone %q", in.Zone)
	}
	imp, ok := importanceFactor[in.Importance]
	if !ok {
		return nil, errs.New(errs.InvalidModel, "unknown importance category %q", in.Importance)
	}
	if in.ResponseReduction <= 0 {
		return nil, errs.New(errs.InvalidModel, "response reduction factor R must be positive, got %v", in.ResponseReduction)
	}

	period := in.Period
	if period <= 0 {
		h := in.Heights[len(in.Heights)-1]
		t, err := FundamentalPeriod(in.FrameType, h, in.Depth)
		if err != nil {
			return nil, err
		}
		period = t
	}

	damping := in.DampingPercent
	if damping <= 0 {
		damping = 5
	}
	sa, err := SpectralCoefficient(period, in.Soil, damping)
	if err != nil {
		return nil, err
	}

	ah := (z / 2) * (imp / in.ResponseReduction) * sa
	if floor := 0.10 * z; ah < floor {
		ah = floor
	}

	var totalW float64
	for _, w := range in.Weights {
		totalW += w
	}
	baseShear := ah * totalW

	n := len(in.Heights)
	whSq := make([]float64, n)
	var sumWhSq float64
	for i := range in.Heights {
		whSq[i] = in.Weights[i] * in.Heights[i] * in.Heights[i]
		sumWhSq += whSq[i]
	}

	storyForces := make([]float64, n)
	if sumWhSq > 0 {
		for i := range storyForces {
			storyForces[i] = baseShear * whSq[i] / sumWhSq
		}
	}

	storyShears := make([]float64, n)
	var cumulative float64
	for i := n - 1; i >= 0; i-- {
		cumulative += storyForces[i]
		storyShears[i] = cumulative
	}

	overturning := make([]float64, n)
	for level := 0; level < n; level++ {
		var m float64
		for i := level + 1; i < n; i++ {
			m += storyForces[i] * (in.Heights[i] - in.Heights[level])
		}
		overturning[level] = m
	}

	return &SeismicResult{
		Period:             period,
		SpectralCoeff:      sa,
		Ah:                 ah,
		BaseShear:          baseShear,
		StoryForces:        storyForces,
		StoryShears:        storyShears,
		OverturningMoments: overturning,
	}, nil
}
