package solve

import (
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/diagnostics"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
)

// Solve assembles the model's global stiffness, applies the active load
// case's boundary conditions, and solves K_ff·u_f = F_f, returning a
// fully-owned Result value (spec.md §4.D, §6). Validation errors
// (errs.InvalidModel) abort before any linear algebra; numerical failures
// are captured and returned as errs.Unstable / errs.Unconverged /
// errs.ResourceBudgetExceeded rather than panicking, per spec.md §7.
func Solve(m *model.Model, loadCaseID string, cfg Config) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	lc, ok := m.LoadCase(loadCaseID)
	if !ok {
		return nil, errs.New(errs.InvalidModel, "unknown load case %q", loadCaseID)
	}

	log := &diagnostics.Log{}
	asm := Assemble(m, log)

	if cfg.DOFBudget > 0 && asm.NumDOF > cfg.DOFBudget {
		return nil, errs.New(errs.ResourceBudgetExceeded, "model has %d DOFs, exceeding configured budget %d", asm.NumDOF, cfg.DOFBudget)
	}

	constrained, free := ConstrainedDOFs(m, asm.NodeDOF)
	if len(free) == 0 {
		return nil, errs.NewUnstable(errs.FullyConstrained, "model has no free DOFs (%d nodes, all constrained)", len(m.Nodes()))
	}

	fAll := AssembleLoadVector(m, lc, asm.Geoms, asm.NodeDOF, asm.NumDOF)

	kff := asm.K.Submatrix(free, free)
	kcf := asm.K.Submatrix(constrained, free)
	ff := make([]float64, len(free))
	for i, dof := range free {
		ff[i] = fAll[dof]
	}

	threshold := cfg.SparseThresholdDOFs
	if threshold <= 0 {
		threshold = 300
	}

	var uf []float64
	usedCG := len(free) >= threshold
	converged := true
	var residNorm float64
	var iterations int

	if usedCG {
		cgCfg := la.DefaultCGConfig(len(free))
		if cfg.CGTolerance > 0 {
			cgCfg.Tolerance = cfg.CGTolerance
		}
		if cfg.CGMaxIterations > 0 {
			cgCfg.MaxIterations = cfg.CGMaxIterations
		}
		cgCfg.UseJacobi = cfg.UseJacobiPreconditioner
		if cfg.Ctx != nil {
			ctx := cfg.Ctx
			cgCfg.Progress = func(iter int, resid float64) bool {
				select {
				case <-ctx.Done():
					return false
				default:
					return true
				}
			}
		}
		res := la.CG(kff, ff, cgCfg)
		if res.Breakdown {
			return nil, errs.NewUnstable(errs.Mechanism, "CG breakdown at iteration %d (free DOFs=%d): K_ff is not SPD (rank-deficient mechanism)", res.Iterations, len(free))
		}
		if res.Cancelled {
			return nil, errs.New(errs.Cancelled, "solve cancelled at CG iteration %d", res.Iterations)
		}
		uf = res.X
		converged = res.Converged
		residNorm = res.ResidualNorm
		iterations = res.Iterations
		if !converged {
			log.Warnf("CG did not converge within %d iterations (residual norm %.3e)", iterations, residNorm)
		}
	} else {
		dense := kff.ToDense()
		x, singular := la.LUSolveDense(dense, ff)
		if singular {
			return nil, errs.NewUnstable(errs.Mechanism, "K_ff is singular (pivot collapse) for %d free DOFs: model likely has a mechanism or disconnected part", len(free))
		}
		uf = x
	}

	uFull := make([]float64, asm.NumDOF)
	for i, dof := range free {
		uFull[dof] = uf[i]
	}

	// R_c = K_cf·u_f - F_c (u_c is always 0: supports are rigid, not springs)
	rFull := make([]float64, asm.NumDOF)
	rc := make([]float64, len(constrained))
	kcf.MatVec(rc, uf)
	for i, dof := range constrained {
		rFull[dof] = rc[i] - fAll[dof]
	}

	fef := MemberFixedEndForces(lc, asm.Geoms)
	memberForces := make([]MemberEndForces, 0, len(asm.Geoms))
	for _, geom := range asm.Geoms {
		var uGlobal la.Vec12
		for k := 0; k < 12; k++ {
			uGlobal[k] = uFull[geom.DOFMap[k]]
		}
		uLocal := frameToLocal(geom, uGlobal)
		fLocal := la.MulMat12Vec(&geom.Element.Klocal, &uLocal)
		if contrib, ok := fef[geom.Member.ID]; ok {
			for k := 0; k < 12; k++ {
				fLocal[k] += contrib[k]
			}
		}
		memberForces = append(memberForces, MemberEndForces{
			MemberID: geom.Member.ID,
			I:        [6]float64{fLocal[0], fLocal[1], fLocal[2], fLocal[3], fLocal[4], fLocal[5]},
			J:        [6]float64{fLocal[6], fLocal[7], fLocal[8], fLocal[9], fLocal[10], fLocal[11]},
		})
	}

	result := &Result{
		LoadCaseID:    loadCaseID,
		Displacements: uFull,
		Reactions:     rFull,
		MemberForces:  memberForces,
		UsedCG:        usedCG,
		Converged:     converged,
		ResidualNorm:  residNorm,
		Iterations:    iterations,
		Warnings:      log.Entries(),
		Geoms:         asm.Geoms,
	}
	if !converged {
		return result, errs.New(errs.Unconverged, "CG stopped at iteration cap with residual norm %.3e", residNorm)
	}
	return result, nil
}

func frameToLocal(geom MemberGeometry, uGlobal la.Vec12) la.Vec12 {
	var t la.Mat12 = la.Mat12(geom.Element.T12)
	tt := la.TransposeMat12(&t)
	return la.MulMat12Vec(&tt, &uGlobal)
}
