package model

import (
	"encoding/json"
	"os"
	"sort"
)

// dto is the JSON wire shape for a Model, matching spec.md §6's contract
// that the model is exchanged as a value with the shape in §3. Grounded
// on alexiusacademia-gorcb/internal/section/analysis.go's LoadFromFile
// (json.Unmarshal into a plain struct, then Validate before use).
type dto struct {
	Nodes      []Node      `json:"nodes"`
	Members    []Member    `json:"members"`
	Materials  []Material  `json:"materials"`
	Sections   []Section   `json:"sections"`
	Supports   []Support   `json:"supports"`
	LoadCases  []LoadCase  `json:"load_cases"`
}

// LoadJSON reads a model from a JSON file in the §6 wire shape and
// validates it before returning.
func LoadJSON(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSON(data)
}

// ParseJSON decodes a model from JSON bytes, in enumeration order of the
// dto's slices (defines DOF numbering per spec.md §4.C).
func ParseJSON(data []byte) (*Model, error) {
	var d dto
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	m := New()
	for _, n := range d.Nodes {
		m.AddNode(n)
	}
	for _, mat := range d.Materials {
		m.AddMaterial(mat)
	}
	for _, s := range d.Sections {
		m.AddSection(s)
	}
	for _, mem := range d.Members {
		m.AddMember(mem)
	}
	for _, sup := range d.Supports {
		m.SetSupport(sup)
	}
	for _, lc := range d.LoadCases {
		m.AddLoadCase(lc)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveJSON writes the model to path in the §6 wire shape.
func (m *Model) SaveJSON(path string) error {
	data, err := m.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MarshalJSON implements json.Marshaler, emitting the model's contents in
// stable enumeration order.
func (m *Model) MarshalJSON() ([]byte, error) {
	d := dto{}
	for _, n := range m.Nodes() {
		d.Nodes = append(d.Nodes, *n)
	}
	for _, mem := range m.Members() {
		d.Members = append(d.Members, *mem)
	}
	matIDs := make([]string, 0, len(m.materials))
	for id := range m.materials {
		matIDs = append(matIDs, id)
	}
	sort.Strings(matIDs)
	for _, id := range matIDs {
		d.Materials = append(d.Materials, *m.materials[id])
	}
	secIDs := make([]string, 0, len(m.sections))
	for id := range m.sections {
		secIDs = append(secIDs, id)
	}
	sort.Strings(secIDs)
	for _, id := range secIDs {
		d.Sections = append(d.Sections, *m.sections[id])
	}
	for _, n := range m.Nodes() {
		if sup, ok := m.Support(n.ID); ok {
			d.Supports = append(d.Supports, *sup)
		}
	}
	for _, id := range m.LoadCaseIDs() {
		lc, _ := m.LoadCase(id)
		d.LoadCases = append(d.LoadCases, *lc)
	}
	return json.MarshalIndent(d, "", "  ")
}
