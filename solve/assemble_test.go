package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/diagnostics"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
)

func twoNodeCantilever() *model.Model {
	m := model.New()
	m.AddNode(model.Node{ID: "i", X: 0, Y: 0, Z: 0})
	m.AddNode(model.Node{ID: "j", X: 2, Y: 0, Z: 0})
	m.AddMaterial(model.Material{ID: "steel", E: 2e11, Density: 7850})
	m.AddSection(model.Section{ID: "sec", A: 1e-2, Iy: 8e-5, Iz: 8e-5, J: 1.6e-4})
	m.AddMember(model.Member{ID: "b1", StartNode: "i", EndNode: "j", MaterialID: "steel", SectionID: "sec"})
	m.SetSupport(model.Support{NodeID: "i", Fixed: model.FixedMask})
	return m
}

func Test_assemble01(tst *testing.T) {

	chk.PrintTitle("assemble01: global stiffness has the expected size and is assembled without skips")

	m := twoNodeCantilever()
	log := &diagnostics.Log{}
	asm := Assemble(m, log)
	chk.IntAssert(asm.NumDOF, 12)
	chk.IntAssert(len(asm.Geoms), 1)
	if len(log.Entries()) != 0 {
		tst.Fatalf("unexpected warnings: %v", log.Entries())
	}
}

func Test_assemble02(tst *testing.T) {

	chk.PrintTitle("assemble02: a degenerate member is skipped with a diagnostic, not aborted")

	m := model.New()
	m.AddNode(model.Node{ID: "a", X: 0, Y: 0, Z: 0})
	m.AddNode(model.Node{ID: "b", X: 0, Y: 0, Z: 0}) // coincident: zero-length member
	m.AddMaterial(model.Material{ID: "steel", E: 2e11})
	m.AddSection(model.Section{ID: "sec", A: 1e-2, Iy: 8e-5, Iz: 8e-5})
	m.AddMember(model.Member{ID: "bad", StartNode: "a", EndNode: "b", MaterialID: "steel", SectionID: "sec"})

	log := &diagnostics.Log{}
	asm := Assemble(m, log)
	chk.IntAssert(len(asm.Geoms), 0)
	if len(log.Entries()) != 1 {
		tst.Fatalf("expected exactly one diagnostic, got %d", len(log.Entries()))
	}
}

func Test_constrainedDOFs01(tst *testing.T) {

	chk.PrintTitle("constrainedDOFs01: a fixed support at node i yields DOFs 0..5 constrained")

	m := twoNodeCantilever()
	nodeDOF := map[string]int{"i": 0, "j": 6}
	constrained, free := ConstrainedDOFs(m, nodeDOF)
	chk.IntAssert(len(constrained), 6)
	chk.IntAssert(len(free), 6)
	for k := 0; k < 6; k++ {
		chk.IntAssert(constrained[k], k)
		chk.IntAssert(free[k], 6+k)
	}
}
