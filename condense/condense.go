// Package condense implements Guyan static condensation and the
// super-element / hybrid-solve driver of spec.md §4.E: partitioning a
// substructure's stiffness into internal/boundary blocks, forming the
// condensed operator K* and the recovery operator T, and later injecting
// K* into a larger global assembly.
//
// There is no direct teacher analogue for substructuring in gofem (it
// solves one monolithic mesh per run), so this package is built fresh in
// the teacher's idiom: doc-comment density matching fem/essenbcs.go, the
// same "partition, build, report a diagnostic instead of panicking on
// singular blocks" discipline the global solver uses.
package condense

import (
	"time"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/diagnostics"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/solve"
)

// SuperElement is a persisted static-condensation result (spec.md §3, §6).
type SuperElement struct {
	ID              string
	BoundaryNodeIDs []string
	InternalNodeIDs []string // empty for a merged super-element
	Kstar           [][]float64
	T               [][]float64 // optional: empty for a merged super-element
	Stats           Stats
	CreatedAt       time.Time
}

// Stats reports the reduction achieved, per spec.md §3.
type Stats struct {
	OriginalDOFs  int
	CondensedDOFs int
	ReductionRatio float64 // CondensedDOFs / OriginalDOFs
}

// buildSubmodel constructs a standalone model.Model containing only the
// given member ids and their incident nodes, carrying over the parent
// model's materials and sections by reference id (Model's own default
// fallback handles anything not copied).
func buildSubmodel(parent *model.Model, memberIDs []string) (*model.Model, map[string]bool) {
	sub := model.New()
	memberSet := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		memberSet[id] = true
	}
	seenNode := make(map[string]bool)
	for _, mem := range parent.Members() {
		if !memberSet[mem.ID] {
			continue
		}
		if sn, ok := parent.Node(mem.StartNode); ok && !seenNode[mem.StartNode] {
			sub.AddNode(*sn)
			seenNode[mem.StartNode] = true
		}
		if en, ok := parent.Node(mem.EndNode); ok && !seenNode[mem.EndNode] {
			sub.AddNode(*en)
			seenNode[mem.EndNode] = true
		}
		sub.AddMaterial(*parent.Material(mem.MaterialID))
		sub.AddSection(*parent.Section(mem.SectionID))
		sub.AddMember(*mem)
	}
	return sub, seenNode
}

// Reduce performs Guyan reduction on the substructure spanned by
// memberIDs, treating boundaryNodeIDs as the retained master DOFs and
// every other incident node as internal, per spec.md §4.E:
//
//	K* = K_mm - K_mi·K_ii⁻¹·K_im
//	T  = -K_ii⁻¹·K_im
//
// K_ii must be nonsingular; a singular internal block is reported as
// errs.Unstable/Mechanism with guidance to add boundary nodes or fix
// connectivity, not a raw numerical error (spec.md §4.E).
func Reduce(id string, parent *model.Model, memberIDs []string, boundaryNodeIDs []string, log *diagnostics.Log) (*SuperElement, error) {
	sub, nodeSet := buildSubmodel(parent, memberIDs)
	boundarySet := make(map[string]bool, len(boundaryNodeIDs))
	for _, b := range boundaryNodeIDs {
		if !nodeSet[b] {
			return nil, errs.New(errs.InvalidModel, "boundary node %q is not incident to the given substructure", b)
		}
		boundarySet[b] = true
	}

	asm := solve.Assemble(sub, log)

	var internalDOFs, boundaryDOFs []int
	var internalNodeIDs, boundaryNodeOrder []string
	for _, n := range sub.Nodes() {
		base := asm.NodeDOF[n.ID]
		if boundarySet[n.ID] {
			boundaryNodeOrder = append(boundaryNodeOrder, n.ID)
			for k := 0; k < 6; k++ {
				boundaryDOFs = append(boundaryDOFs, base+k)
			}
		} else {
			internalNodeIDs = append(internalNodeIDs, n.ID)
			for k := 0; k < 6; k++ {
				internalDOFs = append(internalDOFs, base+k)
			}
		}
	}

	kii := asm.K.Submatrix(internalDOFs, internalDOFs).ToDense()
	kim := asm.K.Submatrix(internalDOFs, boundaryDOFs).ToDense()
	kmi := asm.K.Submatrix(boundaryDOFs, internalDOFs).ToDense()
	kmm := asm.K.Submatrix(boundaryDOFs, boundaryDOFs).ToDense()

	var kstar, t [][]float64
	if len(internalDOFs) == 0 {
		// Fully-boundary substructure: no internal DOFs to eliminate.
		kstar = kmm
		t = nil
	} else {
		if minDiag := la.MinAbsDiag(kii); minDiag < 1e-10 {
			log.Warnf("super-element %q: K_ii has a near-zero diagonal entry (%.3e)", id, minDiag)
		}
		kiiInv, singular := la.InvertDense(kii)
		if singular {
			return nil, errs.NewUnstable(errs.Mechanism,
				"super-element %q: K_ii is singular (%d internal DOFs) — add more boundary nodes or fix connectivity", id, len(internalDOFs))
		}
		t = la.NegDense(la.MulDense(kiiInv, kim))
		kmiT := la.MulDense(kmi, la.MulDense(kiiInv, kim))
		kstar = la.SubDense(kmm, kmiT)
	}

	asym := relativeAsymmetry(kstar)
	if asym > 1e-10 {
		log.Warnf("super-element %q: K* relative asymmetry %.3e exceeds 1e-10 tolerance", id, asym)
	}
	symmetrizeDense(kstar)

	original := asm.NumDOF
	condensed := len(boundaryDOFs)
	ratio := 1.0
	if original > 0 {
		ratio = float64(condensed) / float64(original)
	}

	return &SuperElement{
		ID:              id,
		BoundaryNodeIDs: boundaryNodeOrder,
		InternalNodeIDs: internalNodeIDs,
		Kstar:           kstar,
		T:               t,
		Stats:           Stats{OriginalDOFs: original, CondensedDOFs: condensed, ReductionRatio: ratio},
		CreatedAt:       time.Now(),
	}, nil
}

func relativeAsymmetry(a [][]float64) float64 {
	var maxDiff, maxAbs float64
	for i := range a {
		for j := range a[i] {
			v := a[i][j]
			if v < 0 {
				v = -v
			}
			if v > maxAbs {
				maxAbs = v
			}
			d := a[i][j] - a[j][i]
			if d < 0 {
				d = -d
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	if maxAbs == 0 {
		return 0
	}
	return maxDiff / maxAbs
}

func symmetrizeDense(a [][]float64) {
	for i := range a {
		for j := i + 1; j < len(a[i]); j++ {
			avg := 0.5 * (a[i][j] + a[j][i])
			a[i][j] = avg
			a[j][i] = avg
		}
	}
}
