package la

import "math"

// CGConfig configures the preconditioned Conjugate Gradient solver, per
// spec.md §4.A / §6 (solver.cg.* options).
type CGConfig struct {
	Tolerance        float64 // default 1e-8
	MaxIterations    int     // default 3*n
	UseJacobi        bool    // default true
	InitialGuess     []float64
	// Progress, if set, is called once per iteration with the current
	// iterate index and residual norm. Returning false cancels the solve
	// cooperatively (spec.md §5); the loop returns CGResult{Cancelled:true}.
	Progress func(iter int, residNorm float64) bool
}

// CGResult reports how the solve terminated.
type CGResult struct {
	X             []float64
	Iterations    int
	ResidualNorm  float64
	Converged     bool
	Breakdown     bool
	Cancelled     bool
}

// DefaultCGConfig returns the spec's documented defaults for a system of
// size n.
func DefaultCGConfig(n int) CGConfig {
	return CGConfig{
		Tolerance:     1e-8,
		MaxIterations: 3 * n,
		UseJacobi:     true,
	}
}

func vecNorm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func vecDot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func isZeroVec(x []float64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

// jacobiPreconditioner returns 1/diag_i, replacing diagonal entries with
// |value| < 1e-15 by 1 before inverting, per spec.md §4.A.
func jacobiPreconditioner(a *CSR) []float64 {
	diag := a.Diagonal()
	inv := make([]float64, len(diag))
	for i, d := range diag {
		if d < 1e-15 && d > -1e-15 {
			d = 1
		}
		inv[i] = 1 / d
	}
	return inv
}

// CG solves A·x = b for symmetric positive-definite A using the
// Jacobi-preconditioned Conjugate Gradient method. Contract per spec.md
// §4.A: convergence is ‖r_k‖₂ < τ·‖b‖₂; termination is convergence,
// iteration cap, or breakdown (pᵀAp ≤ 1e-15). A numerically zero b
// short-circuits to the zero vector.
func CG(a *CSR, b []float64, cfg CGConfig) CGResult {
	n := len(b)
	if isZeroVec(b) {
		return CGResult{X: make([]float64, n), Converged: true}
	}

	x := make([]float64, n)
	if cfg.InitialGuess != nil {
		copy(x, cfg.InitialGuess)
	}

	var precond []float64
	if cfg.UseJacobi {
		precond = jacobiPreconditioner(a)
	}

	r := make([]float64, n)
	ax := make([]float64, n)
	a.MatVec(ax, x)
	for i := range r {
		r[i] = b[i] - ax[i]
	}

	z := make([]float64, n)
	applyPrecond := func(dst, src []float64) {
		if precond == nil {
			copy(dst, src)
			return
		}
		for i := range src {
			dst[i] = src[i] * precond[i]
		}
	}
	applyPrecond(z, r)

	p := make([]float64, n)
	copy(p, z)

	rz := vecDot(r, z)
	bNorm := vecNorm(b)
	ap := make([]float64, n)

	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 3 * n
	}
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = 1e-8
	}

	residNorm := vecNorm(r)
	if residNorm < tol*bNorm {
		return CGResult{X: x, Converged: true, ResidualNorm: residNorm}
	}

	for iter := 0; iter < maxIter; iter++ {
		a.MatVec(ap, p)
		pap := vecDot(p, ap)
		if pap <= 1e-15 && pap >= -1e-15 {
			return CGResult{X: x, Iterations: iter, ResidualNorm: residNorm, Breakdown: true}
		}
		alpha := rz / pap
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		residNorm = vecNorm(r)
		if cfg.Progress != nil && !cfg.Progress(iter+1, residNorm) {
			return CGResult{X: x, Iterations: iter + 1, ResidualNorm: residNorm, Cancelled: true}
		}
		if residNorm < tol*bNorm {
			return CGResult{X: x, Iterations: iter + 1, ResidualNorm: residNorm, Converged: true}
		}
		applyPrecond(z, r)
		rzNew := vecDot(r, z)
		beta := rzNew / rz
		for i := 0; i < n; i++ {
			p[i] = z[i] + beta*p[i]
		}
		rz = rzNew
	}
	return CGResult{X: x, Iterations: maxIter, ResidualNorm: residNorm, Converged: false}
}
