package constraints

import (
	"fmt"

	"github.com/dashua-baba/layoutsolve/pkg/geometry"
	"github.com/dashua-baba/layoutsolve/pkg/room"
)

// Result is the outcome of checking one candidate placement: whether it
// satisfies every hard rule, and the full set of human-readable reasons it
// doesn't (empty when Satisfied is true).
type Result struct {
	Satisfied  bool
	Violations []string
}

// Check evaluates every hard rule against candidate, in this fixed order,
// with no short-circuiting — every rule runs so the violation list is
// complete:
//
//  1. Boundary: candidate must lie within [0, W] x [0, H].
//  2. Non-overlap: candidate must not overlap any already-placed room.
//  3. Exterior wall: if req.HasExteriorWall, candidate must touch a
//     boundary edge.
//  4. Required adjacency: for each id in req.AdjacentTo that is already
//     placed, candidate must be adjacent to it. An adjacency partner that
//     is not yet placed is deferred — it will be enforced (or not) when
//     that partner is placed and checks its own AdjacentTo list.
//  5. Forbidden adjacency: for each already-placed id in
//     req.NotAdjacentTo, candidate must not be adjacent to it.
func Check(candidate *room.PlacedRoom, req *room.RoomRequirement, placed []room.PlacedRoom, boundary room.Boundary) Result {
	var violations []string
	rect := geometry.FromPlacedRoom(candidate)

	if !geometry.IsWithinBoundary(rect, boundary.Width, boundary.Height) {
		violations = append(violations, "room lies outside the boundary")
	}

	for _, other := range placed {
		if geometry.OverlapsWith(rect, geometry.FromPlacedRoom(&other)) {
			violations = append(violations, fmt.Sprintf("room overlaps already-placed room %s", other.ID))
		}
	}

	if req.HasExteriorWall && !geometry.TouchesExteriorWall(rect, boundary.Width, boundary.Height) {
		violations = append(violations, "room does not touch an exterior wall")
	}

	for _, want := range req.AdjacentTo {
		partner := findPlaced(placed, want)
		if partner == nil {
			continue // deferred: partner not placed yet
		}
		if !geometry.IsAdjacentTo(rect, geometry.FromPlacedRoom(partner)) {
			violations = append(violations, fmt.Sprintf("room is not adjacent to required room %s", want))
		}
	}

	for _, forbidden := range req.NotAdjacentTo {
		partner := findPlaced(placed, forbidden)
		if partner == nil {
			continue
		}
		if geometry.IsAdjacentTo(rect, geometry.FromPlacedRoom(partner)) {
			violations = append(violations, fmt.Sprintf("room is adjacent to forbidden room %s", forbidden))
		}
	}

	return Result{Satisfied: len(violations) == 0, Violations: violations}
}

func findPlaced(placed []room.PlacedRoom, id string) *room.PlacedRoom {
	for i := range placed {
		if placed[i].ID == id {
			return &placed[i]
		}
	}
	return nil
}
