package la

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_dense1201(tst *testing.T) {

	chk.PrintTitle("dense1201: MulMat12Vec matches hand-computed output on a sparse pattern")

	var a Mat12
	a[0][0] = 2
	a[0][1] = 3
	a[1][1] = 4
	var x Vec12
	x[0] = 1
	x[1] = 2
	y := MulMat12Vec(&a, &x)
	chk.Scalar(tst, "y0", 1e-15, y[0], 8)  // 2*1+3*2
	chk.Scalar(tst, "y1", 1e-15, y[1], 8)  // 4*2
	chk.Scalar(tst, "y2", 1e-15, y[2], 0)
}

func Test_dense1202(tst *testing.T) {

	chk.PrintTitle("dense1202: TransposeMat12 is involutive")

	var a Mat12
	a[0][1] = 5
	a[3][7] = -2
	t := TransposeMat12(&a)
	chk.Scalar(tst, "t[1][0]", 1e-15, t[1][0], 5)
	chk.Scalar(tst, "t[7][3]", 1e-15, t[7][3], -2)
	tt := TransposeMat12(&t)
	chk.Scalar(tst, "tt[0][1]", 1e-15, tt[0][1], 5)
}

func Test_dense1203(tst *testing.T) {

	chk.PrintTitle("dense1203: Congruence with an identity rotation leaves K unchanged")

	var ident Mat12
	for i := 0; i < 12; i++ {
		ident[i][i] = 1
	}
	var k Mat12
	k[0][0] = 10
	k[1][1] = 20
	k[0][1] = 3
	k[1][0] = 3
	out := Congruence(&ident, &k)
	chk.Scalar(tst, "out[0][0]", 1e-12, out[0][0], 10)
	chk.Scalar(tst, "out[1][1]", 1e-12, out[1][1], 20)
	chk.Scalar(tst, "out[0][1]", 1e-12, out[0][1], 3)
}

func Test_dense1204(tst *testing.T) {

	chk.PrintTitle("dense1204: SymmetrizeInPlace and MaxAbsAsymmetry")

	var a Mat12
	a[0][1] = 10
	a[1][0] = 12
	asym := MaxAbsAsymmetry(&a)
	if asym <= 0 {
		tst.Fatal("expected nonzero asymmetry before symmetrizing")
	}
	a.SymmetrizeInPlace()
	chk.Scalar(tst, "a[0][1]", 1e-15, a[0][1], 11)
	chk.Scalar(tst, "a[1][0]", 1e-15, a[1][0], 11)
	chk.Scalar(tst, "asymmetry after", 1e-15, MaxAbsAsymmetry(&a), 0)
}
