package frame

import "math"

// worldUp is the reference "up" vector used to build the local y/z axes
// from the member's axial direction, per spec.md §4.B. Members nearly
// parallel to this vector fall back to an orthogonal reference instead,
// so the frame stays well-defined and stable under small perturbations of
// member orientation — the same role the teacher's Beam element plays
// with its P02 "point defining the y0-y2 plane" field (ele/solid/beam.go),
// generalized here to a fixed global convention instead of a per-element
// input point.
var worldUp = [3]float64{0, 0, 1}

// fallbackRef is used in place of worldUp when the member axis is nearly
// parallel to it (|e1·up| > 1-1e-6). Chosen orthogonal to worldUp so the
// substitution is stable regardless of which way the near-parallel member
// points.
var fallbackRef = [3]float64{1, 0, 0}

func sub3(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func dot3(a, b [3]float64) float64    { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func scale3(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}
func norm3(a [3]float64) float64 { return math.Sqrt(dot3(a, a)) }
func normalize3(a [3]float64) [3]float64 {
	n := norm3(a)
	if n < 1e-300 {
		return a
	}
	return scale3(a, 1/n)
}
func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Rotation3 is the 3x3 rotation matrix whose rows are (e1, e2, e3): the
// member's local axial, and the two transverse principal axes.
type Rotation3 [3][3]float64

// ComputeRotation builds the local axis system from member endpoints and
// a roll angle β (radians) about the member axis, per spec.md §4.B:
//
//  1. e1 = (pj - pi) / L
//  2. pick "up" (worldUp, or fallbackRef if e1 is nearly parallel to it)
//  3. e2 = normalize(up - (up·e1)e1), e3 = e1 x e2
//  4. rotate (e2, e3) by β about e1
func ComputeRotation(pi, pj [3]float64, length float64, roll float64) Rotation3 {
	e1 := scale3(sub3(pj, pi), 1/length)

	up := worldUp
	if math.Abs(dot3(e1, up)) > 1-1e-6 {
		up = fallbackRef
	}
	e2 := normalize3(sub3(up, scale3(e1, dot3(up, e1))))
	e3 := cross3(e1, e2)

	if roll != 0 {
		c, s := math.Cos(roll), math.Sin(roll)
		e2r := [3]float64{
			c*e2[0] + s*e3[0],
			c*e2[1] + s*e3[1],
			c*e2[2] + s*e3[2],
		}
		e3r := [3]float64{
			-s*e2[0] + c*e3[0],
			-s*e2[1] + c*e3[1],
			-s*e2[2] + c*e3[2],
		}
		e2, e3 = e2r, e3r
	}

	return Rotation3{e1, e2, e3}
}

// Transform12 builds the 12x12 block-diagonal transformation matrix (four
// copies of the 3x3 rotation R), mapping global to local DOFs.
func Transform12(r Rotation3) [12][12]float64 {
	var t [12][12]float64
	for block := 0; block < 4; block++ {
		off := block * 3
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t[off+i][off+j] = r[i][j]
			}
		}
	}
	return t
}
