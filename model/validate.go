package model

import (
	"fmt"
	"math"

	"github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/errs"
)

const lengthEpsilon = 1e-10

// Validate checks the invariants spec.md §3/§4.C/§7 require before any
// linear algebra runs: dangling node references, zero-length members,
// negative section properties. Missing material/section ids are NOT an
// error here — they resolve to DefaultMaterial/DefaultSection per §4.C —
// but a negative property on a record that DOES exist is invalid.
func (m *Model) Validate() error {
	for _, mem := range m.Members() {
		if _, ok := m.nodes[mem.StartNode]; !ok {
			return errs.New(errs.InvalidModel, "member %q references unknown start node %q", mem.ID, mem.StartNode)
		}
		if _, ok := m.nodes[mem.EndNode]; !ok {
			return errs.New(errs.InvalidModel, "member %q references unknown end node %q", mem.ID, mem.EndNode)
		}
		if mem.StartNode == mem.EndNode {
			return errs.New(errs.InvalidModel, "member %q has coincident start/end node %q", mem.ID, mem.StartNode)
		}
		l := m.MemberLength(mem)
		if l < lengthEpsilon {
			return errs.New(errs.InvalidModel, "member %q has zero length (%.3e m)", mem.ID, l)
		}
		if mat, ok := m.materials[mem.MaterialID]; ok {
			if err := validateMaterial(mat); err != nil {
				return err
			}
		}
		if sec, ok := m.sections[mem.SectionID]; ok {
			if err := validateSection(sec); err != nil {
				return err
			}
		}
	}
	for _, s := range m.supports {
		if _, ok := m.nodes[s.NodeID]; !ok {
			return errs.New(errs.InvalidModel, "support references unknown node %q", s.NodeID)
		}
	}
	return nil
}

func validateMaterial(mat *Material) error {
	if mat.E <= 0 {
		return errs.New(errs.InvalidModel, "material %q has non-positive E (%.3e)", mat.ID, mat.E)
	}
	if mat.G < 0 {
		return errs.New(errs.InvalidModel, "material %q has negative G (%.3e)", mat.ID, mat.G)
	}
	return nil
}

func validateSection(s *Section) error {
	if s.A <= 0 {
		return errs.New(errs.InvalidModel, "section %q has non-positive area (%.3e)", s.ID, s.A)
	}
	if s.Iy < 0 || s.Iz < 0 {
		return errs.New(errs.InvalidModel, "section %q has negative moment of inertia", s.ID)
	}
	if s.J < 0 {
		return errs.New(errs.InvalidModel, "section %q has negative torsional constant", s.ID)
	}
	return nil
}

// MemberLength returns the Euclidean length between a member's endpoints.
// Returns 0 if either endpoint is missing from the model (callers that
// need a safe length should call Validate first).
func (m *Model) MemberLength(mem *Member) float64 {
	a, ok1 := m.nodes[mem.StartNode]
	b, ok2 := m.nodes[mem.EndNode]
	if !ok1 || !ok2 {
		return 0
	}
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String renders a short diagnostic summary, used in error messages and
// the CLI's verbose mode.
func (m *Model) String() string {
	return fmt.Sprintf("Model{nodes=%d members=%d loadCases=%d}", len(m.nodeOrder), len(m.memberOrder), len(m.loadCases))
}
