package room

import "fmt"

// Problem bundles everything the solver needs: the boundary and the full
// set of room requirements. It is immutable for the duration of a solve.
type Problem struct {
	Boundary     Boundary          `json:"boundary" yaml:"boundary"`
	Requirements []RoomRequirement `json:"requirements" yaml:"requirements"`
}

// Validate checks the boundary, every requirement in isolation, that IDs
// are unique, and that every adjacency reference resolves to a room that
// exists in the problem.
func (p *Problem) Validate() error {
	if err := p.Boundary.Validate(); err != nil {
		return fmt.Errorf("boundary: %w", err)
	}
	if len(p.Requirements) == 0 {
		return fmt.Errorf("problem must contain at least one room requirement")
	}

	seen := make(map[string]bool, len(p.Requirements))
	for i := range p.Requirements {
		req := &p.Requirements[i]
		if err := req.Validate(); err != nil {
			return fmt.Errorf("requirement[%d]: %w", i, err)
		}
		if seen[req.ID] {
			return fmt.Errorf("requirement[%d]: duplicate room ID %q", i, req.ID)
		}
		seen[req.ID] = true
	}

	for _, req := range p.Requirements {
		for _, a := range req.AdjacentTo {
			if !seen[a] {
				return fmt.Errorf("room %s: adjacent_to references unknown room %q", req.ID, a)
			}
		}
		for _, f := range req.NotAdjacentTo {
			if !seen[f] {
				return fmt.Errorf("room %s: not_adjacent_to references unknown room %q", req.ID, f)
			}
		}
	}

	return nil
}

// Lookup returns the requirement with the given ID, or nil if none exists.
func (p *Problem) Lookup(id string) *RoomRequirement {
	for i := range p.Requirements {
		if p.Requirements[i].ID == id {
			return &p.Requirements[i]
		}
	}
	return nil
}
