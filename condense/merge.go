package condense

import (
	"time"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
)

// Merge combines two or more super-elements that share boundary nodes
// into one, adding their K* blocks at shared DOFs in a new node-index
// space, per spec.md §4.E. The merged element retains only boundary DOFs:
// T and InternalNodeIDs are empty in the result, since the merge does not
// introduce any new internal DOFs to recover.
func Merge(id string, elements []*SuperElement) (*SuperElement, error) {
	if len(elements) < 2 {
		return nil, errs.New(errs.InvalidModel, "merge requires at least two super-elements, got %d", len(elements))
	}

	// Build the merged boundary-node ordering: union, first-seen order.
	var mergedNodes []string
	nodeIndex := make(map[string]int)
	for _, e := range elements {
		for _, n := range e.BoundaryNodeIDs {
			if _, ok := nodeIndex[n]; !ok {
				nodeIndex[n] = len(mergedNodes)
				mergedNodes = append(mergedNodes, n)
			}
		}
	}

	numDOF := 6 * len(mergedNodes)
	kstar := make([][]float64, numDOF)
	for i := range kstar {
		kstar[i] = make([]float64, numDOF)
	}

	for _, e := range elements {
		// local DOF d (within e's own boundary ordering) maps to merged
		// DOF via its node's position in mergedNodes.
		localBase := make([]int, len(e.BoundaryNodeIDs))
		for li, n := range e.BoundaryNodeIDs {
			localBase[li] = 6 * nodeIndex[n]
		}
		for li, gi0 := range localBase {
			for lj, gj0 := range localBase {
				for a := 0; a < 6; a++ {
					for b := 0; b < 6; b++ {
						kstar[gi0+a][gj0+b] += e.Kstar[6*li+a][6*lj+b]
					}
				}
			}
		}
	}

	originalDOFs := 0
	for _, e := range elements {
		originalDOFs += e.Stats.OriginalDOFs
	}
	ratio := 1.0
	if originalDOFs > 0 {
		ratio = float64(numDOF) / float64(originalDOFs)
	}

	return &SuperElement{
		ID:              id,
		BoundaryNodeIDs: mergedNodes,
		InternalNodeIDs: nil,
		Kstar:           kstar,
		T:               nil,
		Stats:           Stats{OriginalDOFs: originalDOFs, CondensedDOFs: numDOF, ReductionRatio: ratio},
		CreatedAt:       time.Now(),
	}, nil
}
