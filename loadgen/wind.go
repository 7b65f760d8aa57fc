// Package loadgen implements the static-equivalent wind and seismic load
// generators of spec.md §4.H. Both are grounded directly on
// alexiusacademia-gorcb/internal/nscp's idiom — exported constants plus
// small pure functions per code section/table — generalized from the
// teacher's RC material-constant tables to wind and seismic code tables.
package loadgen

import "github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"

// StructureClass is the wind code's building-size classification
// (spec.md §4.H).
type StructureClass string

const (
	ClassA StructureClass = "A"
	ClassB StructureClass = "B"
	ClassC StructureClass = "C"
)

// OpeningCategory sets the internal pressure coefficient bracket.
type OpeningCategory string

const (
	OpeningNormal   OpeningCategory = "normal"
	OpeningLarge    OpeningCategory = "large"
	OpeningDominant OpeningCategory = "dominant"
	OpeningSealed   OpeningCategory = "sealed"
)

// k1Table gives the risk factor per structure class (spec.md §4.H).
var k1Table = map[StructureClass]float64{
	ClassA: 1.00,
	ClassB: 0.94,
	ClassC: 0.88,
}

// k2Heights are the fixed interpolation heights (m) of the terrain-factor
// table (spec.md §4.H).
var k2Heights = []float64{10, 15, 20, 30, 50, 100, 150, 200, 250, 300, 350, 400, 450, 500}

// k2Table[terrain][class] is the terrain factor at each k2Heights entry,
// ascending with height and decreasing with terrain roughness, per the
// conventional wind-code terrain-category shape (open country rougher
// growth than a dense city center).
var k2Table = map[int]map[StructureClass][]float64{
	1: {
		ClassA: {1.05, 1.09, 1.12, 1.15, 1.20, 1.26, 1.30, 1.32, 1.34, 1.36, 1.37, 1.38, 1.39, 1.40},
		ClassB: {1.03, 1.07, 1.10, 1.13, 1.18, 1.24, 1.28, 1.30, 1.32, 1.34, 1.35, 1.36, 1.37, 1.38},
		ClassC: {1.00, 1.04, 1.07, 1.10, 1.15, 1.20, 1.24, 1.26, 1.28, 1.30, 1.31, 1.32, 1.33, 1.34},
	},
	2: {
		ClassA: {1.00, 1.05, 1.07, 1.12, 1.17, 1.24, 1.28, 1.30, 1.32, 1.34, 1.35, 1.36, 1.37, 1.38},
		ClassB: {0.98, 1.02, 1.05, 1.10, 1.15, 1.22, 1.25, 1.28, 1.30, 1.32, 1.33, 1.34, 1.35, 1.36},
		ClassC: {0.93, 0.97, 1.00, 1.04, 1.10, 1.17, 1.21, 1.24, 1.26, 1.28, 1.29, 1.30, 1.31, 1.32},
	},
	3: {
		ClassA: {0.91, 0.97, 1.01, 1.06, 1.12, 1.20, 1.24, 1.27, 1.29, 1.31, 1.32, 1.33, 1.34, 1.35},
		ClassB: {0.88, 0.94, 0.98, 1.03, 1.10, 1.17, 1.21, 1.24, 1.27, 1.29, 1.30, 1.31, 1.32, 1.33},
		ClassC: {0.82, 0.87, 0.91, 0.96, 1.02, 1.10, 1.15, 1.18, 1.21, 1.23, 1.24, 1.25, 1.26, 1.27},
	},
	4: {
		ClassA: {0.80, 0.87, 0.91, 0.97, 1.04, 1.13, 1.18, 1.21, 1.24, 1.26, 1.27, 1.28, 1.29, 1.30},
		ClassB: {0.76, 0.83, 0.87, 0.93, 1.01, 1.10, 1.15, 1.18, 1.21, 1.23, 1.24, 1.25, 1.26, 1.27},
		ClassC: {0.67, 0.73, 0.78, 0.84, 0.92, 1.01, 1.06, 1.10, 1.13, 1.15, 1.16, 1.17, 1.18, 1.19},
	},
}

// k2 interpolates the terrain factor linearly over k2Heights, clamping to
// the table's end values outside its range (spec.md §4.H).
func k2(terrain int, class StructureClass, z float64) (float64, error) {
	col, ok := k2Table[terrain]
	if !ok {
		return 0, errs.New(errs.InvalidModel, "unknown wind terrain category %d", terrain)
	}
	vals, ok := col[class]
	if !ok {
		return 0, errs.New(errs.InvalidModel, "unknown structure class %q", class)
	}
	if z <= k2Heights[0] {
		return vals[0], nil
	}
	last := len(k2Heights) - 1
	if z >= k2Heights[last] {
		return vals[last], nil
	}
	for i := 0; i < last; i++ {
		if z >= k2Heights[i] && z <= k2Heights[i+1] {
			t := (z - k2Heights[i]) / (k2Heights[i+1] - k2Heights[i])
			return vals[i] + t*(vals[i+1]-vals[i]), nil
		}
	}
	return vals[last], nil
}

// Topography describes the slope/position input to k3 (spec.md §4.H).
type Topography struct {
	// Slope is the upwind slope in degrees; 0 for flat terrain (k3 = 1).
	Slope float64
	// UpwindFraction is the fractional distance up the slope/hill face
	// (0 at the base, 1 at the crest) of the point being evaluated.
	UpwindFraction float64
}

// K3 computes the topography factor. Flat or shallow terrain (slope <=
// 3deg) gives 1; steeper slopes scale up linearly with both slope
// steepness and upwind fraction, floored at 1 (spec.md §4.H: "k3 >= 1").
func (t Topography) K3() float64 {
	if t.Slope <= 3 {
		return 1
	}
	s := t.Slope
	if s > 45 {
		s = 45
	}
	factor := 1 + 0.01*(s-3)*t.UpwindFraction
	if factor < 1 {
		factor = 1
	}
	return factor
}

// pressureCoeffBracket holds Cpe for a windward/leeward pair, keyed by an
// h/w upper bound (spec.md §4.H: "table keyed by h/w brackets").
type pressureCoeffBracket struct {
	hwMax            float64
	cpeWindward      float64
	cpeLeeward       float64
}

var cpeTable = []pressureCoeffBracket{
	{hwMax: 0.5, cpeWindward: 0.7, cpeLeeward: -0.3},
	{hwMax: 1.0, cpeWindward: 0.7, cpeLeeward: -0.4},
	{hwMax: 2.0, cpeWindward: 0.8, cpeLeeward: -0.5},
	{hwMax: 4.0, cpeWindward: 0.8, cpeLeeward: -0.6},
	{hwMax: 1e18, cpeWindward: 0.8, cpeLeeward: -0.7},
}

// cpe returns (windward, leeward) external pressure coefficients for the
// given height/width ratio.
func cpe(hw float64) (windward, leeward float64) {
	for _, b := range cpeTable {
		if hw <= b.hwMax {
			return b.cpeWindward, b.cpeLeeward
		}
	}
	last := cpeTable[len(cpeTable)-1]
	return last.cpeWindward, last.cpeLeeward
}

// cpiTable gives the internal pressure coefficient magnitude per opening
// category (spec.md §4.H).
var cpiTable = map[OpeningCategory]float64{
	OpeningNormal:   0.2,
	OpeningLarge:    0.5,
	OpeningDominant: 0.7,
	OpeningSealed:   0.0,
}

// WindInput collects the basic-speed-pressure method's inputs (spec.md
// §4.H).
type WindInput struct {
	BasicSpeed  float64 // V_b, m/s
	Terrain     int     // 1-4
	Class       StructureClass
	Topography  Topography
	Height      float64 // z, building height, m
	Width       float64 // w, m (face normal to the wind)
	Depth       float64 // d, m
	Opening     OpeningCategory
	StripCount  int // number of equal height strips in the profile output; default 10
}

// Strip is one height band of the wind-pressure profile.
type Strip struct {
	ZBottom, ZTop   float64
	Vz              float64 // design wind speed at strip mid-height, m/s
	Pz              float64 // design wind pressure at strip mid-height, N/m^2
	WindwardForce   float64 // N, on the strip area (strip height x Width)
	LeewardForce    float64 // N, on the strip area (strip height x Width)
}

// Result is the wind load generator's output (spec.md §4.H).
type Result struct {
	K1      float64
	K3      float64
	CpeWindward, CpeLeeward float64
	Cpi     float64
	Profile []Strip
}

// Wind computes the basic-speed-pressure wind loading profile
// exactly per spec.md §4.H: V_z = V_b*k1*k2(z)*k3, P_z = 0.6*V_z^2,
// F = (Cpe - (-Cpi))*A*Pz for windward and the symmetric combination for
// leeward, subdividing the elevation into equal strips.
func Wind(in WindInput) (*Result, error) {
	k1, ok := k1Table[in.Class]
	if !ok {
		return nil, errs.New(errs.InvalidModel, "unknown structure class %q", in.Class)
	}
	if in.Width <= 0 {
		return nil, errs.New(errs.InvalidModel, "wind generator requires a positive width, got %v", in.Width)
	}
	k3 := in.Topography.K3()

	hw := in.Height / in.Width
	cpeW, cpeL := cpe(hw)
	cpi, ok := cpiTable[in.Opening]
	if !ok {
		return nil, errs.New(errs.InvalidModel, "unknown opening category %q", in.Opening)
	}

	strips := in.StripCount
	if strips <= 0 {
		strips = 10
	}
	stripHeight := in.Height / float64(strips)

	profile := make([]Strip, strips)
	for i := 0; i < strips; i++ {
		zBottom := float64(i) * stripHeight
		zTop := zBottom + stripHeight
		zMid := 0.5 * (zBottom + zTop)

		k2v, err := k2(in.Terrain, in.Class, zMid)
		if err != nil {
			return nil, err
		}
		vz := in.BasicSpeed * k1 * k2v * k3
		pz := 0.6 * vz * vz
		area := stripHeight * in.Width

		profile[i] = Strip{
			ZBottom:       zBottom,
			ZTop:          zTop,
			Vz:            vz,
			Pz:            pz,
			WindwardForce: (cpeW + cpi) * area * pz,
			LeewardForce:  (-cpeL + cpi) * area * pz,
		}
	}

	return &Result{
		K1:          k1,
		K3:          k3,
		CpeWindward: cpeW,
		CpeLeeward:  cpeL,
		Cpi:         cpi,
		Profile:     profile,
	}, nil
}
