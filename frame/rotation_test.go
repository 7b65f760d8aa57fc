package frame

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rotation01(tst *testing.T) {

	chk.PrintTitle("rotation01: axial member along global X is orthonormal")

	rot := ComputeRotation([3]float64{0, 0, 0}, [3]float64{4, 0, 0}, 4, 0)
	chk.Vector(tst, "e1", 1e-12, rot[0][:], []float64{1, 0, 0})

	for i := 0; i < 3; i++ {
		n := math.Sqrt(dot3(rot[i], rot[i]))
		chk.Scalar(tst, "unit length", 1e-12, n, 1)
	}
	chk.Scalar(tst, "e1.e2", 1e-12, dot3(rot[0], rot[1]), 0)
	chk.Scalar(tst, "e1.e3", 1e-12, dot3(rot[0], rot[2]), 0)
	chk.Scalar(tst, "e2.e3", 1e-12, dot3(rot[1], rot[2]), 0)
}

func Test_rotation02(tst *testing.T) {

	chk.PrintTitle("rotation02: member nearly parallel to world-up falls back to a stable frame")

	rot := ComputeRotation([3]float64{0, 0, 0}, [3]float64{0, 0, 5}, 5, 0)
	n := math.Sqrt(dot3(rot[1], rot[1]))
	chk.Scalar(tst, "e2 unit length", 1e-9, n, 1)
	chk.Scalar(tst, "e1.e2", 1e-9, dot3(rot[0], rot[1]), 0)
}

func Test_rotation03(tst *testing.T) {

	chk.PrintTitle("rotation03: roll angle rotates e2/e3 but preserves orthonormality")

	rot := ComputeRotation([3]float64{0, 0, 0}, [3]float64{3, 0, 0}, 3, math.Pi/2)
	chk.Scalar(tst, "e1.e2", 1e-9, dot3(rot[0], rot[1]), 0)
	chk.Scalar(tst, "e2 unit length", 1e-9, math.Sqrt(dot3(rot[1], rot[1])), 1)
}

func Test_transform01(tst *testing.T) {

	chk.PrintTitle("transform01: Transform12 is block-diagonal and orthogonal")

	rot := ComputeRotation([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, math.Sqrt2, 0)
	t := Transform12(rot)
	for block := 0; block < 4; block++ {
		off := block * 3
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if t[off+i][off+j] != rot[i][j] {
					tst.Fatalf("block %d mismatch at (%d,%d)", block, i, j)
				}
			}
		}
	}
	// off-diagonal blocks must be zero
	chk.Scalar(tst, "off-block entry", 1e-15, t[0][3], 0)
}
