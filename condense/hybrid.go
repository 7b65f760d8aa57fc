package condense

import (
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/diagnostics"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/solve"
)

// HybridResult mirrors solve.Result for a super-element-augmented model:
// displacements/reactions cover only the reduced model's DOFs (boundary +
// non-substructure nodes); recovered internal displacements are reported
// separately per super-element.
type HybridResult struct {
	Displacements []float64
	Reactions     []float64
	NodeDOF       map[string]int
	Internal      map[string]map[string][6]float64 // superElementID -> internal node id -> 6 displacement components
	UsedCG        bool
	Converged     bool
	ResidualNorm  float64
	Iterations    int
	Warnings      []string
}

// buildReducedModel assembles the reduced model per spec.md §4.E: boundary
// nodes of each super-element, union all non-substructure nodes; all
// members not in any substructure.
func buildReducedModel(parent *model.Model, substructureMembers map[string]bool, supers []*SuperElement) *model.Model {
	reduced := model.New()
	seen := make(map[string]bool)
	addNode := func(id string) {
		if seen[id] {
			return
		}
		if n, ok := parent.Node(id); ok {
			reduced.AddNode(*n)
			seen[id] = true
		}
	}
	for _, mem := range parent.Members() {
		if substructureMembers[mem.ID] {
			continue
		}
		addNode(mem.StartNode)
		addNode(mem.EndNode)
		reduced.AddMaterial(*parent.Material(mem.MaterialID))
		reduced.AddSection(*parent.Section(mem.SectionID))
		reduced.AddMember(*mem)
	}
	for _, se := range supers {
		for _, n := range se.BoundaryNodeIDs {
			addNode(n)
		}
	}
	// carry over supports and load cases referencing surviving nodes
	for _, n := range reduced.Nodes() {
		if sup, ok := parent.Support(n.ID); ok {
			reduced.SetSupport(*sup)
		}
	}
	for _, lcID := range parent.LoadCaseIDs() {
		lc, _ := parent.LoadCase(lcID)
		var kept []model.Load
		for _, ld := range lc.Loads {
			if ld.Member != "" {
				if substructureMembers[ld.Member] {
					continue
				}
			}
			kept = append(kept, ld)
		}
		reduced.AddLoadCase(model.LoadCase{ID: lc.ID, Name: lc.Name, Loads: kept})
	}
	return reduced
}

// HybridSolve builds the reduced model (regular members + super-element
// boundary nodes), assembles its global CSR via add_submatrix for the
// regular members and a second add_submatrix call per super-element
// mapping K* into the global DOFs of its boundary nodes, applies supports
// via the penalty method (diagonal <- solver.penalty, RHS row <- 0), and
// solves with CG — mirroring spec.md §4.E's hybrid driver exactly,
// including its preference for the penalty BC strategy (the CG operator
// must stay well-conditioned SPD, and a super-element's boundary DOFs
// rarely line up with a clean free/constrained partition the way a plain
// frame model's do).
func HybridSolve(parent *model.Model, substructureMemberIDs []string, supers []*SuperElement, loadCaseID string, cfg solve.Config) (*HybridResult, error) {
	substructureMembers := make(map[string]bool, len(substructureMemberIDs))
	for _, id := range substructureMemberIDs {
		substructureMembers[id] = true
	}

	reduced := buildReducedModel(parent, substructureMembers, supers)
	if err := reduced.Validate(); err != nil {
		return nil, err
	}
	lc, ok := reduced.LoadCase(loadCaseID)
	if !ok {
		return nil, errs.New(errs.InvalidModel, "unknown load case %q", loadCaseID)
	}

	log := &diagnostics.Log{}
	asm := solve.Assemble(reduced, log)
	dok := la.NewDOK(asm.NumDOF, asm.NumDOF)
	// regular-member contributions are already in asm.K; copy them in
	for i := 0; i < asm.K.M; i++ {
		for k := asm.K.RowPtrs[i]; k < asm.K.RowPtrs[i+1]; k++ {
			dok.Add(i, asm.K.ColIndices[k], asm.K.Values[k])
		}
	}

	for _, se := range supers {
		var dofMap []int
		for _, n := range se.BoundaryNodeIDs {
			base, ok := asm.NodeDOF[n]
			if !ok {
				return nil, errs.New(errs.InvalidModel, "super-element %q boundary node %q not present in reduced model", se.ID, n)
			}
			for k := 0; k < 6; k++ {
				dofMap = append(dofMap, base+k)
			}
		}
		dok.AddSubmatrix(se.Kstar, dofMap)
	}

	k := dok.ToCSR()
	fAll := solve.AssembleLoadVector(reduced, lc, asm.Geoms, asm.NodeDOF, asm.NumDOF)

	penalty := cfg.Penalty
	if penalty <= 0 {
		penalty = 1e20
	}
	constrained, _ := solve.ConstrainedDOFs(reduced, asm.NodeDOF)
	constrainedSet := make(map[int]bool, len(constrained))
	for _, d := range constrained {
		constrainedSet[d] = true
	}
	kPenalized := penalize(k, constrainedSet, penalty)
	for _, d := range constrained {
		fAll[d] = 0
	}

	cgCfg := la.DefaultCGConfig(asm.NumDOF)
	if cfg.CGTolerance > 0 {
		cgCfg.Tolerance = cfg.CGTolerance
	}
	if cfg.CGMaxIterations > 0 {
		cgCfg.MaxIterations = cfg.CGMaxIterations
	}
	cgCfg.UseJacobi = cfg.UseJacobiPreconditioner
	res := la.CG(kPenalized, fAll, cgCfg)
	if res.Breakdown {
		return nil, errs.NewUnstable(errs.Mechanism, "CG breakdown in hybrid solve at iteration %d", res.Iterations)
	}

	u := res.X
	reactions := make([]float64, asm.NumDOF)
	raw := make([]float64, asm.NumDOF)
	k.MatVec(raw, u)
	for _, d := range constrained {
		reactions[d] = raw[d]
	}

	internal := make(map[string]map[string][6]float64)
	for _, se := range supers {
		if se.T == nil || len(se.InternalNodeIDs) == 0 {
			continue
		}
		um := make([]float64, 6*len(se.BoundaryNodeIDs))
		for bi, n := range se.BoundaryNodeIDs {
			base := asm.NodeDOF[n]
			for k := 0; k < 6; k++ {
				um[6*bi+k] = u[base+k]
			}
		}
		ui := make([]float64, 6*len(se.InternalNodeIDs))
		for row := range se.T {
			var sum float64
			for col, v := range se.T[row] {
				sum += v * um[col]
			}
			ui[row] = sum
		}
		nodeDisp := make(map[string][6]float64, len(se.InternalNodeIDs))
		for ii, n := range se.InternalNodeIDs {
			var d [6]float64
			copy(d[:], ui[6*ii:6*ii+6])
			nodeDisp[n] = d
		}
		internal[se.ID] = nodeDisp
	}

	return &HybridResult{
		Displacements: u,
		Reactions:     reactions,
		NodeDOF:       asm.NodeDOF,
		Internal:      internal,
		UsedCG:        true,
		Converged:     res.Converged,
		ResidualNorm:  res.ResidualNorm,
		Iterations:    res.Iterations,
		Warnings:      log.Entries(),
	}, nil
}

// penalize returns a copy of k with a large diagonal stiffness added on
// constrained DOFs (the penalty BC strategy, spec.md §4.D/§4.E).
func penalize(k *la.CSR, constrained map[int]bool, penalty float64) *la.CSR {
	dok := la.NewDOK(k.M, k.N)
	for i := 0; i < k.M; i++ {
		for p := k.RowPtrs[i]; p < k.RowPtrs[i+1]; p++ {
			dok.Add(i, k.ColIndices[p], k.Values[p])
		}
	}
	for d := range constrained {
		dok.Add(d, d, penalty)
	}
	return dok.ToCSR()
}
