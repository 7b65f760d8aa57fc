package la

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_lu01(tst *testing.T) {

	chk.PrintTitle("lu01: LUSolveDense matches the analytical solution")

	a := [][]float64{
		{2, 1},
		{1, 3},
	}
	b := []float64{3, 5}
	x, singular := LUSolveDense(a, b)
	if singular {
		tst.Fatal("unexpected singular report")
	}
	// x0=(3*3-1*5)/5=0.8, x1=(2*5-1*3)/5=1.4
	chk.Vector(tst, "x", 1e-12, x, []float64{0.8, 1.4})
}

func Test_lu02(tst *testing.T) {

	chk.PrintTitle("lu02: a singular matrix is reported, not panicked")

	a := [][]float64{
		{1, 2},
		{2, 4},
	}
	_, singular := LUSolveDense(a, []float64{1, 2})
	if !singular {
		tst.Fatal("expected singular=true for a rank-deficient matrix")
	}
}

func Test_lu03(tst *testing.T) {

	chk.PrintTitle("lu03: InvertDense recovers the identity under A*A^-1")

	a := [][]float64{
		{4, 2},
		{1, 3},
	}
	inv, singular := InvertDense(a)
	if singular {
		tst.Fatal("unexpected singular report")
	}
	prod := MulDense(a, inv)
	chk.Matrix(tst, "A*Ainv", 1e-9, prod, [][]float64{{1, 0}, {0, 1}})
}
