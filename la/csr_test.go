package la

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_csr01(tst *testing.T) {

	chk.PrintTitle("csr01: MatVec matches dense matrix-vector product")

	dense := [][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	}
	csr := FromDense(dense)
	x := []float64{1, 2, 3}
	y := make([]float64, 3)
	csr.MatVec(y, x)
	chk.Vector(tst, "y", 1e-15, y, []float64{2, 4, 10})
}

func Test_csr02(tst *testing.T) {

	chk.PrintTitle("csr02: Submatrix extracts the requested rows/cols in the given order")

	dense := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	csr := FromDense(dense)
	sub := csr.Submatrix([]int{2, 0}, []int{2, 0})
	got := sub.ToDense()
	chk.Matrix(tst, "sub", 1e-15, got, [][]float64{
		{9, 7},
		{3, 1},
	})
}

func Test_csr03(tst *testing.T) {

	chk.PrintTitle("csr03: ToDense/FromDense round-trip")

	dense := [][]float64{{1, 0}, {0, 2}}
	csr := FromDense(dense)
	chk.Matrix(tst, "round-trip", 1e-15, csr.ToDense(), dense)
	chk.Vector(tst, "diagonal", 1e-15, csr.Diagonal(), []float64{1, 2})
}
