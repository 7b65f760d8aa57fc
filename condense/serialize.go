package condense

import (
	"encoding/json"
	"os"
	"time"
)

// superElementDTO is the JSON wire shape for a SuperElement, per spec.md
// §6: the seven fields of §3 plus a creation timestamp, with T optional
// (empty/omitted for a merged super-element).
type superElementDTO struct {
	ID              string      `json:"id"`
	BoundaryNodeIDs []string    `json:"boundary_node_ids"`
	InternalNodeIDs []string    `json:"internal_node_ids,omitempty"`
	Kstar           [][]float64 `json:"k_star"`
	T               [][]float64 `json:"t,omitempty"`
	Stats           Stats       `json:"stats"`
	CreatedAt       time.Time   `json:"created_at"`
}

// MarshalJSON implements json.Marshaler.
func (se *SuperElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(superElementDTO{
		ID:              se.ID,
		BoundaryNodeIDs: se.BoundaryNodeIDs,
		InternalNodeIDs: se.InternalNodeIDs,
		Kstar:           se.Kstar,
		T:               se.T,
		Stats:           se.Stats,
		CreatedAt:       se.CreatedAt,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (se *SuperElement) UnmarshalJSON(data []byte) error {
	var d superElementDTO
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	se.ID = d.ID
	se.BoundaryNodeIDs = d.BoundaryNodeIDs
	se.InternalNodeIDs = d.InternalNodeIDs
	se.Kstar = d.Kstar
	se.T = d.T
	se.Stats = d.Stats
	se.CreatedAt = d.CreatedAt
	return nil
}

// SaveJSON persists a super-element to path, per spec.md §6's
// persistence-layer contract.
func (se *SuperElement) SaveJSON(path string) error {
	data, err := json.MarshalIndent(se, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadSuperElementJSON reads a super-element previously written by
// SaveJSON. Node identities must remain stable between sessions for the
// result to remain meaningful (spec.md §6).
func LoadSuperElementJSON(path string) (*SuperElement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	se := &SuperElement{}
	if err := json.Unmarshal(data, se); err != nil {
		return nil, err
	}
	return se, nil
}
