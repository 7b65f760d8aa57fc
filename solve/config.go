// Package solve implements global assembly, boundary-condition handling,
// and the direct/iterative dispatch that solves K·u=F for a single load
// case, plus reaction recovery (spec.md §4.D). It is the analogue of the
// teacher's fem.Domain + fem.EssentialBcs + fem.Solver trio
// (fem/domain.go, fem/essenbcs.go, fem/solver.go), generalized from a
// nonlinear time-stepping residual solve to a single linear-elastic solve.
package solve

import "context"

// Config holds the recognized options from spec.md §6.
type Config struct {
	// SparseThresholdDOFs: at or above this many free DOFs, use CG instead
	// of dense LU. Default 300.
	SparseThresholdDOFs int

	// CGTolerance is the CG convergence tolerance. Default 1e-8.
	CGTolerance float64

	// CGMaxIterations caps CG iterations. 0 means "3*n_free".
	CGMaxIterations int

	// UseJacobiPreconditioner toggles the Jacobi preconditioner. Default true.
	UseJacobiPreconditioner bool

	// Penalty is the large diagonal stiffness used only by the penalty BC
	// strategy (condense's hybrid driver). Default 1e20.
	Penalty float64

	// DOFBudget is an advisory ceiling (spec.md §5): above it, Solve
	// returns errs.ResourceBudgetExceeded instead of proceeding. Zero
	// means "no ceiling enforced".
	DOFBudget int

	// Ctx, if non-nil, is checked for cancellation at each CG iteration
	// of Solve's sparse path (spec.md §5's cooperative-cancellation contract,
	// expressed the idiomatic Go way instead of a bespoke callback type).
	Ctx context.Context
}

// DefaultConfig returns the documented defaults from spec.md §6.
func DefaultConfig() Config {
	return Config{
		SparseThresholdDOFs:     300,
		CGTolerance:             1e-8,
		CGMaxIterations:         0,
		UseJacobiPreconditioner: true,
		Penalty:                 1e20,
	}
}
