package condense

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_merge01(tst *testing.T) {

	chk.PrintTitle("merge01: merging two super-elements sums shared-node stiffness")

	e1 := simpleSuper("e1", []string{"p", "q"}, 10)
	e2 := simpleSuper("e2", []string{"q", "r"}, 20)

	merged, err := Merge("merged", []*SuperElement{e1, e2})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(merged.BoundaryNodeIDs), 3) // p, q, r
	chk.IntAssert(merged.Stats.CondensedDOFs, 18)

	// node q is shared: its diagonal stiffness is the sum of both contributions.
	qBase := 6 * indexOf(merged.BoundaryNodeIDs, "q")
	chk.Scalar(tst, "K*[q][q] summed", 1e-9, merged.Kstar[qBase][qBase], 10+20)
}

func Test_merge02(tst *testing.T) {

	chk.PrintTitle("merge02: merging fewer than two super-elements is rejected")

	e1 := simpleSuper("e1", []string{"p", "q"}, 10)
	_, err := Merge("merged", []*SuperElement{e1})
	if err == nil {
		tst.Fatal("expected an error for a single-element merge")
	}
}

func indexOf(ss []string, target string) int {
	for i, s := range ss {
		if s == target {
			return i
		}
	}
	return -1
}

// simpleSuper builds a minimal super-element whose Kstar has a single
// diagonal entry k at each boundary node's ux DOF, zero elsewhere — enough
// to exercise Merge's additive scatter without needing a real Reduce call.
func simpleSuper(id string, boundary []string, k float64) *SuperElement {
	n := 6 * len(boundary)
	kstar := make([][]float64, n)
	for i := range kstar {
		kstar[i] = make([]float64, n)
	}
	for bi := range boundary {
		kstar[6*bi][6*bi] = k
	}
	return &SuperElement{
		ID:              id,
		BoundaryNodeIDs: boundary,
		Kstar:           kstar,
		Stats:           Stats{OriginalDOFs: n + 6, CondensedDOFs: n},
	}
}
