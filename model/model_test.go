package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_model01(tst *testing.T) {

	chk.PrintTitle("model01: node/member CRUD and enumeration order")

	m := New()
	m.AddNode(Node{ID: "n1", X: 0, Y: 0, Z: 0})
	m.AddNode(Node{ID: "n2", X: 3, Y: 0, Z: 0})
	m.AddNode(Node{ID: "n3", X: 6, Y: 0, Z: 0})

	if len(m.Nodes()) != 3 {
		tst.Fatalf("expected 3 nodes, got %d", len(m.Nodes()))
	}
	chk.IntAssert(m.NodeIndex("n2"), 1)
	chk.IntAssert(m.NumDOF(), 18)

	m.AddMember(Member{ID: "m1", StartNode: "n1", EndNode: "n2"})
	m.AddMember(Member{ID: "m2", StartNode: "n2", EndNode: "n3"})
	if len(m.Members()) != 2 {
		tst.Fatalf("expected 2 members, got %d", len(m.Members()))
	}

	// re-adding an existing node must not duplicate its enumeration slot
	m.AddNode(Node{ID: "n1", X: 0, Y: 1, Z: 0})
	chk.IntAssert(len(m.Nodes()), 3)
	n1, _ := m.Node("n1")
	chk.Scalar(tst, "n1.Y after re-add", 1e-15, n1.Y, 1)
}

func Test_model02(tst *testing.T) {

	chk.PrintTitle("model02: RemoveNode cascades to members, supports, loads")

	m := New()
	m.AddNode(Node{ID: "n1"})
	m.AddNode(Node{ID: "n2", X: 4})
	m.AddNode(Node{ID: "n3", X: 8})
	m.AddMember(Member{ID: "m1", StartNode: "n1", EndNode: "n2"})
	m.AddMember(Member{ID: "m2", StartNode: "n2", EndNode: "n3"})
	m.SetSupport(Support{NodeID: "n2", Fixed: PinnedMask})
	m.AddLoadCase(LoadCase{ID: "lc1", Loads: []Load{
		{ID: "l1", Kind: NodalForce, NodeID: "n2", Vec: [3]float64{0, -1, 0}},
		{ID: "l2", Kind: MemberUDL, Member: "m1", S0: 0, S1: 1, W0: -1},
	}})

	m.RemoveNode("n2")

	if len(m.Nodes()) != 2 {
		tst.Fatalf("expected 2 nodes after removal, got %d", len(m.Nodes()))
	}
	if len(m.Members()) != 0 {
		tst.Fatalf("expected both incident members removed, got %d remaining", len(m.Members()))
	}
	if _, ok := m.Support("n2"); ok {
		tst.Fatalf("support on removed node should be gone")
	}
	lc, _ := m.LoadCase("lc1")
	if len(lc.Loads) != 0 {
		tst.Fatalf("loads referencing the removed node/member should be dropped, got %d", len(lc.Loads))
	}
}

func Test_model03(tst *testing.T) {

	chk.PrintTitle("model03: unknown material/section fall back to defaults")

	m := New()
	mat := m.Material("does-not-exist")
	chk.Scalar(tst, "default E", 1e-15, mat.E, DefaultMaterial.E)

	sec := m.Section("does-not-exist")
	chk.Scalar(tst, "default A", 1e-15, sec.A, DefaultSection.A)

	m.AddMaterial(Material{ID: "steel1", E: 2e11})
	chk.Scalar(tst, "derived G (nu=0.3)", 1e-8, m.Material("steel1").ShearModulus(), 2e11/(2*1.3))

	m.AddSection(Section{ID: "s1", Iy: 1e-5, Iz: 2e-5})
	chk.Scalar(tst, "derived J", 1e-15, m.Section("s1").TorsionalConstant(), 3e-5)
}
