package la

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bicgstab01(tst *testing.T) {

	chk.PrintTitle("bicgstab01: BiCGSTAB solves a small non-symmetric system")

	dense := [][]float64{
		{4, 1},
		{2, 3},
	}
	a := FromDense(dense)
	b := []float64{1, 2}
	res := BiCGSTAB(a, b, DefaultBiCGSTABConfig(2))
	if !res.Converged {
		tst.Fatalf("expected convergence, residual=%.3e", res.ResidualNorm)
	}
	// solve by hand: det=10, x = [1/10, 2/10*? ] -> use Cramer's rule
	// [4 1; 2 3] x = [1;2] => x0 = (1*3-1*2)/10=0.1, x1=(4*2-2*1)/10=0.6
	chk.Vector(tst, "x", 1e-6, res.X, []float64{0.1, 0.6})
}

func Test_bicgstab02(tst *testing.T) {

	chk.PrintTitle("bicgstab02: a numerically zero RHS short-circuits to the zero vector")

	a := FromDense([][]float64{{2, 0}, {0, 2}})
	res := BiCGSTAB(a, []float64{0, 0}, DefaultBiCGSTABConfig(2))
	if !res.Converged {
		tst.Fatal("expected the zero-RHS shortcut to report converged")
	}
}
