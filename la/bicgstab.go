package la

// BiCGSTABConfig configures the BiCGSTAB solver for non-symmetric systems,
// per spec.md §4.A.
type BiCGSTABConfig struct {
	Tolerance     float64
	MaxIterations int
	UseJacobi     bool
	InitialGuess  []float64
	Progress      func(iter int, residNorm float64) bool
}

// DefaultBiCGSTABConfig mirrors DefaultCGConfig's defaults.
func DefaultBiCGSTABConfig(n int) BiCGSTABConfig {
	return BiCGSTABConfig{Tolerance: 1e-8, MaxIterations: 3 * n, UseJacobi: true}
}

// BiCGSTABResult reports how the solve terminated, distinguishing the
// three breakdown guards the spec requires: ρ, (r̂ᵀv), and (tᵀt).
type BiCGSTABResult struct {
	X              []float64
	Iterations     int
	ResidualNorm   float64
	Converged      bool
	Breakdown      bool
	BreakdownCause string
	Cancelled      bool
}

// BiCGSTAB solves A·x = b for a general (non-symmetric) matrix using the
// stabilized biconjugate gradient method, guarding against the three
// classical breakdown modes per spec.md §4.A.
func BiCGSTAB(a *CSR, b []float64, cfg BiCGSTABConfig) BiCGSTABResult {
	n := len(b)
	if isZeroVec(b) {
		return BiCGSTABResult{X: make([]float64, n), Converged: true}
	}

	x := make([]float64, n)
	if cfg.InitialGuess != nil {
		copy(x, cfg.InitialGuess)
	}

	var precond []float64
	if cfg.UseJacobi {
		precond = jacobiPreconditioner(a)
	}
	applyPrecond := func(dst, src []float64) {
		if precond == nil {
			copy(dst, src)
			return
		}
		for i := range src {
			dst[i] = src[i] * precond[i]
		}
	}

	r := make([]float64, n)
	ax := make([]float64, n)
	a.MatVec(ax, x)
	for i := range r {
		r[i] = b[i] - ax[i]
	}
	rHat := make([]float64, n)
	copy(rHat, r)

	bNorm := vecNorm(b)
	residNorm := vecNorm(r)
	if residNorm < cfg.Tolerance*bNorm {
		return BiCGSTABResult{X: x, Converged: true, ResidualNorm: residNorm}
	}

	rho, alpha, omega := 1.0, 1.0, 1.0
	v := make([]float64, n)
	p := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	s := make([]float64, n)
	t := make([]float64, n)

	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 3 * n
	}
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = 1e-8
	}

	for iter := 0; iter < maxIter; iter++ {
		rhoNew := vecDot(rHat, r)
		if rhoNew <= 1e-15 && rhoNew >= -1e-15 {
			return BiCGSTABResult{X: x, Iterations: iter, ResidualNorm: residNorm, Breakdown: true, BreakdownCause: "rho"}
		}
		if iter == 0 {
			copy(p, r)
		} else {
			beta := (rhoNew / rho) * (alpha / omega)
			for i := 0; i < n; i++ {
				p[i] = r[i] + beta*(p[i]-omega*v[i])
			}
		}
		applyPrecond(y, p)
		a.MatVec(v, y)

		rHatV := vecDot(rHat, v)
		if rHatV <= 1e-15 && rHatV >= -1e-15 {
			return BiCGSTABResult{X: x, Iterations: iter, ResidualNorm: residNorm, Breakdown: true, BreakdownCause: "rHatV"}
		}
		alpha = rhoNew / rHatV
		for i := 0; i < n; i++ {
			s[i] = r[i] - alpha*v[i]
		}
		sNorm := vecNorm(s)
		if sNorm < tol*bNorm {
			for i := 0; i < n; i++ {
				x[i] += alpha * y[i]
			}
			return BiCGSTABResult{X: x, Iterations: iter + 1, ResidualNorm: sNorm, Converged: true}
		}

		applyPrecond(z, s)
		a.MatVec(t, z)
		tt := vecDot(t, t)
		if tt <= 1e-15 && tt >= -1e-15 {
			return BiCGSTABResult{X: x, Iterations: iter, ResidualNorm: residNorm, Breakdown: true, BreakdownCause: "tt"}
		}
		omega = vecDot(t, s) / tt

		for i := 0; i < n; i++ {
			x[i] += alpha*y[i] + omega*z[i]
			r[i] = s[i] - omega*t[i]
		}
		residNorm = vecNorm(r)
		if cfg.Progress != nil && !cfg.Progress(iter+1, residNorm) {
			return BiCGSTABResult{X: x, Iterations: iter + 1, ResidualNorm: residNorm, Cancelled: true}
		}
		if residNorm < tol*bNorm {
			return BiCGSTABResult{X: x, Iterations: iter + 1, ResidualNorm: residNorm, Converged: true}
		}
		rho = rhoNew
	}
	return BiCGSTABResult{X: x, Iterations: maxIter, ResidualNorm: residNorm, Converged: false}
}
