package solve

import (
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/diagnostics"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/frame"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/la"
	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"
)

const degenerateLengthTol = 1e-10

// MemberGeometry caches, per member, the DOF map and built frame.Element
// so post-processing (diagrams, design checks) does not need to
// reassemble the kernel.
type MemberGeometry struct {
	Member  *model.Member
	DOFMap  [12]int
	Element frame.Element
	Props   frame.Properties
}

// ToProperties converts a model material+section pair into the frame
// kernel's Properties, applying the defaulting rules of spec.md §3: G
// derived from E (ν=0.3) when absent, J derived as Iy+Iz when absent.
func ToProperties(mat *model.Material, sec *model.Section) frame.Properties {
	return frame.Properties{
		E:   mat.E,
		G:   mat.ShearModulus(),
		A:   sec.A,
		Iy:  sec.Iy,
		Iz:  sec.Iz,
		J:   sec.TorsionalConstant(),
		Rho: mat.Density,
	}
}

// Assembled holds the global system before boundary conditions are
// applied, plus the bookkeeping needed to recover member end-forces and
// reactions afterward.
type Assembled struct {
	K        *la.CSR
	NumDOF   int
	Geoms    []MemberGeometry // in model member order; entries for skipped (degenerate) members are omitted
	NodeDOF  map[string]int   // node id -> index of its first DOF (6*nodeIndex)
}

// Assemble builds the global stiffness matrix by scattering each member's
// congruence-transformed 12x12 block into the global CSR via
// add_submatrix with the DOF map [6i+0..5, 6j+0..5], per spec.md §4.D.
// Degenerate members (L < 1e-10) are skipped with a diagnostic and do not
// abort assembly.
func Assemble(m *model.Model, log *diagnostics.Log) Assembled {
	nodes := m.Nodes()
	numDOF := 6 * len(nodes)
	nodeDOF := make(map[string]int, len(nodes))
	for i, n := range nodes {
		nodeDOF[n.ID] = 6 * i
	}

	dok := la.NewDOK(numDOF, numDOF)
	var geoms []MemberGeometry

	for _, mem := range m.Members() {
		startNode, ok1 := m.Node(mem.StartNode)
		endNode, ok2 := m.Node(mem.EndNode)
		if !ok1 || !ok2 {
			log.Warnf("member %q references a missing node; skipped", mem.ID)
			continue
		}
		pi := [3]float64{startNode.X, startNode.Y, startNode.Z}
		pj := [3]float64{endNode.X, endNode.Y, endNode.Z}

		mat := m.Material(mem.MaterialID)
		sec := m.Section(mem.SectionID)
		props := ToProperties(mat, sec)

		el := frame.Build(pi, pj, props, mem.Roll)
		if el.Length < degenerateLengthTol {
			log.Warnf("member %q is degenerate (length %.3e m < %.1e); skipped", mem.ID, el.Length, degenerateLengthTol)
			continue
		}

		var dofMap [12]int
		baseI, baseJ := nodeDOF[mem.StartNode], nodeDOF[mem.EndNode]
		for k := 0; k < 6; k++ {
			dofMap[k] = baseI + k
			dofMap[6+k] = baseJ + k
		}
		dok.AddMat12(&el.Kglobal, dofMap)

		geoms = append(geoms, MemberGeometry{Member: mem, DOFMap: dofMap, Element: el, Props: props})
	}

	return Assembled{K: dok.ToCSR(), NumDOF: numDOF, Geoms: geoms, NodeDOF: nodeDOF}
}

// ConstrainedDOFs returns, in ascending order, the global DOF indices that
// are fixed by some support, plus the complementary free DOF list.
func ConstrainedDOFs(m *model.Model, nodeDOF map[string]int) (constrained, free []int) {
	isConstrained := make(map[int]bool)
	for _, n := range m.Nodes() {
		sup, ok := m.Support(n.ID)
		if !ok {
			continue
		}
		base := nodeDOF[n.ID]
		for k := 0; k < 6; k++ {
			if sup.Fixed[k] {
				isConstrained[base+k] = true
			}
		}
	}
	numDOF := 6 * len(m.Nodes())
	for i := 0; i < numDOF; i++ {
		if isConstrained[i] {
			constrained = append(constrained, i)
		} else {
			free = append(free, i)
		}
	}
	return
}

// MemberFixedEndForces sums every load-case load's fixed-end force
// contribution onto its member, in local axes, keyed by member id. Used
// both to build the global RHS (negated) and, after solving, to recover
// true member end forces (K_local·u_local + FEF_local).
func MemberFixedEndForces(lc *model.LoadCase, geoms []MemberGeometry) map[string][12]float64 {
	geomByMember := make(map[string]*MemberGeometry, len(geoms))
	for i := range geoms {
		geomByMember[geoms[i].Member.ID] = &geoms[i]
	}
	fef := make(map[string][12]float64)
	for _, ld := range lc.Loads {
		switch ld.Kind {
		case model.MemberPoint, model.MemberUDL, model.MemberTrapz:
			geom, ok := geomByMember[ld.Member]
			if !ok {
				continue
			}
			contrib := FixedEndForcesLocal(ld, geom.Element.Length)
			acc := fef[ld.Member]
			for k := 0; k < 12; k++ {
				acc[k] += contrib[k]
			}
			fef[ld.Member] = acc
		}
	}
	return fef
}

// AssembleLoadVector builds the global nodal force vector for a load
// case, reducing every load variant to equivalent nodal forces at the
// global DOF level: nodal loads scatter directly; member span/point
// loads are converted to statically-equivalent nodal forces by negating
// their fixed-end forces and rotating to global axes, per the dispatch
// rule in spec.md §9 ("distribution-to-nodes mapping is the same for all
// variants when reduced to equivalent nodal forces").
func AssembleLoadVector(m *model.Model, lc *model.LoadCase, geoms []MemberGeometry, nodeDOF map[string]int, numDOF int) []float64 {
	f := make([]float64, numDOF)
	geomByMember := make(map[string]*MemberGeometry, len(geoms))
	for i := range geoms {
		geomByMember[geoms[i].Member.ID] = &geoms[i]
	}

	for _, ld := range lc.Loads {
		switch ld.Kind {
		case model.NodalForce:
			base, ok := nodeDOF[ld.NodeID]
			if !ok {
				continue
			}
			f[base+0] += ld.Vec[0]
			f[base+1] += ld.Vec[1]
			f[base+2] += ld.Vec[2]
		case model.NodalMoment:
			base, ok := nodeDOF[ld.NodeID]
			if !ok {
				continue
			}
			f[base+3] += ld.Vec[0]
			f[base+4] += ld.Vec[1]
			f[base+5] += ld.Vec[2]
		case model.MemberPoint, model.MemberUDL, model.MemberTrapz:
			geom, ok := geomByMember[ld.Member]
			if !ok {
				continue
			}
			fef := FixedEndForcesLocal(ld, geom.Element.Length)
			var localF [12]float64
			for k := 0; k < 12; k++ {
				localF[k] = -fef[k]
			}
			var t la.Mat12 = la.Mat12(geom.Element.T12)
			globalF := la.MulMat12Vec(&t, (*la.Vec12)(&localF))
			for k := 0; k < 12; k++ {
				f[geom.DOFMap[k]] += globalF[k]
			}
		}
	}
	return f
}
