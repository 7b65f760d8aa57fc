// Package model is the typed container of nodes, members, supports,
// materials, sections, and load cases that the solver borrows an immutable
// snapshot of (spec.md §3). It plays the role the teacher's inp package
// plays for gofem: a store keyed by stable identifiers, read-side
// enumeration in a stable order that defines DOF numbering, write-side
// CRUD with cascading deletes.
package model

import "sort"

// MaterialCategory tags the broad material family a record belongs to.
type MaterialCategory string

const (
	Steel    MaterialCategory = "steel"
	Concrete MaterialCategory = "concrete"
	RCC      MaterialCategory = "rcc"
	Timber   MaterialCategory = "timber"
	Other    MaterialCategory = "other"
)

// Material holds elastic and strength properties. G and J on the owning
// Section/Material are derived when absent, per spec.md §3: G from E and
// an assumed Poisson ratio of 0.3.
type Material struct {
	ID               string
	E                float64 // Pa
	G                float64 // Pa; 0 means "derive from E"
	Density          float64 // kg/m^3
	YieldStrength    float64 // Pa, steel
	UltimateStrength float64 // Pa, steel
	FC               float64 // Pa, concrete compressive strength (f'c)
	Category         MaterialCategory
}

// ShearModulus returns G, deriving it from E assuming ν=0.3 when the
// material record leaves it zero (spec.md §3).
func (m *Material) ShearModulus() float64 {
	if m.G > 0 {
		return m.G
	}
	const poisson = 0.3
	return m.E / (2 * (1 + poisson))
}

// Section holds cross-sectional properties. Iy, Iz are about the local
// principal axes (local y = "weak"/out-of-plane in the canonical
// convention this repo fixes per DESIGN.md's resolution of the §9 open
// question on axis labeling: local z is the member's primary bending axis
// for the common doubly-symmetric case, matching the stiffness kernel's
// DOF grouping in spec.md §4.B, not the renderer's geometric convention).
type Section struct {
	ID   string
	Type string // semantic tag: "rectangular", "I", "circular", "hollow", ...
	A    float64
	Iy   float64
	Iz   float64
	J    float64 // 0 means "derive as Iy+Iz"
	Zy   float64 // elastic section modulus about y, 0 if unset
	Zz   float64 // elastic section modulus about z, 0 if unset
	Zpy  float64 // plastic section modulus about y, 0 if unset
	Zpz  float64 // plastic section modulus about z, 0 if unset

	// Geometric dimensions, for rendering and for design-check formulas
	// that need explicit dimensions (e.g. RC rectangular sizing).
	Width, Height, Thickness float64
}

// TorsionalConstant returns J, falling back to Iy+Iz when unset, per
// spec.md §3.
func (s *Section) TorsionalConstant() float64 {
	if s.J > 0 {
		return s.J
	}
	return s.Iy + s.Iz
}

// Node is a point in global space, identified by a stable string id.
type Node struct {
	ID      string
	X, Y, Z float64
}

// Member is a 3D frame element spanning two nodes.
type Member struct {
	ID         string
	StartNode  string
	EndNode    string
	SectionID  string
	MaterialID string
	Roll       float64 // β, radians, rotation of local y/z about the member axis
}

// Support fixes a 6-DOF mask at a node. A true entry means that DOF is
// fixed at zero, per spec.md §3. (ux, uy, uz, rx, ry, rz).
type Support struct {
	NodeID string
	Fixed  [6]bool
}

// Canonical support masks, matching the UI's "fixed"/"pinned" tags
// (spec.md §3).
var (
	FixedMask  = [6]bool{true, true, true, true, true, true}
	PinnedMask = [6]bool{true, true, true, false, false, false}
)

// LoadKind discriminates the tagged union of load variants (spec.md §3).
type LoadKind string

const (
	NodalForce    LoadKind = "nodal_force"
	NodalMoment   LoadKind = "nodal_moment"
	MemberPoint   LoadKind = "member_point"
	MemberUDL     LoadKind = "member_udl"
	MemberTrapz   LoadKind = "member_trapezoidal"
)

// Load is a tagged union over nodal point force/moment and member span
// loads. Vec is a 3-component vector: global frame for nodal loads, local
// member-Y frame for diagram-generating member loads (spec.md §3).
type Load struct {
	ID     string
	Kind   LoadKind
	NodeID string // set for NodalForce / NodalMoment
	Member string // set for Member* kinds

	Vec [3]float64 // force/moment components; MemberPoint uses Vec[1] (local Y)

	S     float64 // parametric position in [0,1], for MemberPoint
	S0, S1 float64 // span in [0,1], for MemberUDL / MemberTrapz
	W0, W1 float64 // start/end intensity (local Y, N/m) for MemberTrapz; W0 doubles as the UDL intensity
}

// LoadCase is an identified, ordered collection of loads. The solver
// operates on exactly one case per invocation (spec.md §3).
type LoadCase struct {
	ID    string
	Name  string
	Loads []Load
}

// Model is the exclusive owner of nodes, members, supports, loads,
// materials, sections (spec.md §3's Ownership rule). Construct one with
// New; the zero value has nil maps and panics on the first insert.
type Model struct {
	nodes     map[string]*Node
	nodeOrder []string // stable enumeration order; defines DOF numbering

	members     map[string]*Member
	memberOrder []string

	materials map[string]*Material
	sections  map[string]*Section
	supports  map[string]*Support // keyed by node id

	loadCases map[string]*LoadCase
}

// New returns an empty model.
func New() *Model {
	return &Model{
		nodes:     make(map[string]*Node),
		members:   make(map[string]*Member),
		materials: make(map[string]*Material),
		sections:  make(map[string]*Section),
		supports:  make(map[string]*Support),
		loadCases: make(map[string]*LoadCase),
	}
}

// AddNode inserts or replaces a node, appending to the enumeration order
// the first time it's seen.
func (m *Model) AddNode(n Node) {
	if _, exists := m.nodes[n.ID]; !exists {
		m.nodeOrder = append(m.nodeOrder, n.ID)
	}
	cp := n
	m.nodes[n.ID] = &cp
}

// RemoveNode deletes a node and cascades the deletion to incident members,
// its support, and any nodal loads referencing it directly — the one-pass
// cascading-delete rule from spec.md §9 ("Cyclic references").
func (m *Model) RemoveNode(id string) {
	if _, ok := m.nodes[id]; !ok {
		return
	}
	delete(m.nodes, id)
	for i, nid := range m.nodeOrder {
		if nid == id {
			m.nodeOrder = append(m.nodeOrder[:i], m.nodeOrder[i+1:]...)
			break
		}
	}
	delete(m.supports, id)

	var keepMembers []string
	removedMembers := make(map[string]bool)
	for _, mid := range m.memberOrder {
		mem := m.members[mid]
		if mem.StartNode == id || mem.EndNode == id {
			removedMembers[mid] = true
			delete(m.members, mid)
			continue
		}
		keepMembers = append(keepMembers, mid)
	}
	m.memberOrder = keepMembers

	for _, lc := range m.loadCases {
		var kept []Load
		for _, ld := range lc.Loads {
			if ld.NodeID == id {
				continue
			}
			if ld.Member != "" && removedMembers[ld.Member] {
				continue
			}
			kept = append(kept, ld)
		}
		lc.Loads = kept
	}
}

// AddMember inserts or replaces a member.
func (m *Model) AddMember(mem Member) {
	if _, exists := m.members[mem.ID]; !exists {
		m.memberOrder = append(m.memberOrder, mem.ID)
	}
	cp := mem
	m.members[mem.ID] = &cp
}

// AddMaterial inserts or replaces a material.
func (m *Model) AddMaterial(mat Material) { cp := mat; m.materials[mat.ID] = &cp }

// AddSection inserts or replaces a section.
func (m *Model) AddSection(s Section) { cp := s; m.sections[s.ID] = &cp }

// SetSupport assigns a support mask to a node.
func (m *Model) SetSupport(s Support) { cp := s; m.supports[s.NodeID] = &cp }

// AddLoadCase inserts or replaces a load case.
func (m *Model) AddLoadCase(lc LoadCase) { cp := lc; m.loadCases[lc.ID] = &cp }

// Nodes returns nodes in stable enumeration order: node index i
// corresponds to global DOFs 6i..6i+5 (spec.md §4.C).
func (m *Model) Nodes() []*Node {
	out := make([]*Node, len(m.nodeOrder))
	for i, id := range m.nodeOrder {
		out[i] = m.nodes[id]
	}
	return out
}

// NodeIndex returns the enumeration index of a node id, or -1 if absent.
func (m *Model) NodeIndex(id string) int {
	for i, nid := range m.nodeOrder {
		if nid == id {
			return i
		}
	}
	return -1
}

// Node looks up a node by id.
func (m *Model) Node(id string) (*Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Members returns members in stable order.
func (m *Model) Members() []*Member {
	out := make([]*Member, len(m.memberOrder))
	for i, id := range m.memberOrder {
		out[i] = m.members[id]
	}
	return out
}

// Support returns the support mask for a node id, or (nil, false) if the
// node is unconstrained.
func (m *Model) Support(nodeID string) (*Support, bool) {
	s, ok := m.supports[nodeID]
	return s, ok
}

// DefaultMaterial is returned when a member references an unknown
// material id, per spec.md §4.C: unknown identities resolve to a
// well-defined default rather than fail. Callers that want strict
// validation should use Validate instead of relying on this fallback.
var DefaultMaterial = Material{ID: "__default__", E: 2e11, G: 7.7e10, Density: 7850, Category: Steel}

// DefaultSection is the fallback section for unknown ids.
var DefaultSection = Section{ID: "__default__", Type: "rectangular", A: 1e-2, Iy: 1e-5, Iz: 1e-5, J: 2e-5, Width: 0.1, Height: 0.1}

// Material looks up a material by id, returning DefaultMaterial for
// unknown ids (spec.md §4.C).
func (m *Model) Material(id string) *Material {
	if mat, ok := m.materials[id]; ok {
		return mat
	}
	d := DefaultMaterial
	return &d
}

// Section looks up a section by id, returning DefaultSection for unknown
// ids.
func (m *Model) Section(id string) *Section {
	if s, ok := m.sections[id]; ok {
		return s
	}
	d := DefaultSection
	return &d
}

// LoadCase looks up a load case by id.
func (m *Model) LoadCase(id string) (*LoadCase, bool) {
	lc, ok := m.loadCases[id]
	return lc, ok
}

// LoadCaseIDs returns all registered load-case ids, sorted for determinism.
func (m *Model) LoadCaseIDs() []string {
	ids := make([]string, 0, len(m.loadCases))
	for id := range m.loadCases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NumDOF returns 6*len(nodes), the full (unconstrained) DOF count.
func (m *Model) NumDOF() int {
	return 6 * len(m.nodeOrder)
}
