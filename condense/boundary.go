package condense

import "github.com/rakshittiwari048-ship-it/beamlab-ultimate-sub000/model"

// AutoDetectBoundary returns, for a user-selected set of member ids, every
// node that is also incident to at least one member NOT in the selection
// (spec.md §4.E). If no such node exists — a truly isolated substructure
// — it falls back to the first and last nodes in the selection's node
// order, so Reduce always has at least one boundary node to retain.
func AutoDetectBoundary(parent *model.Model, memberIDs []string) []string {
	selected := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		selected[id] = true
	}

	incidentOutside := make(map[string]bool)
	var nodeOrder []string
	seen := make(map[string]bool)
	for _, mem := range parent.Members() {
		if !selected[mem.ID] {
			incidentOutside[mem.StartNode] = true
			incidentOutside[mem.EndNode] = true
			continue
		}
		if !seen[mem.StartNode] {
			nodeOrder = append(nodeOrder, mem.StartNode)
			seen[mem.StartNode] = true
		}
		if !seen[mem.EndNode] {
			nodeOrder = append(nodeOrder, mem.EndNode)
			seen[mem.EndNode] = true
		}
	}

	var boundary []string
	for _, n := range nodeOrder {
		if incidentOutside[n] {
			boundary = append(boundary, n)
		}
	}
	if len(boundary) == 0 && len(nodeOrder) > 0 {
		if len(nodeOrder) == 1 {
			return []string{nodeOrder[0]}
		}
		return []string{nodeOrder[0], nodeOrder[len(nodeOrder)-1]}
	}
	return boundary
}
