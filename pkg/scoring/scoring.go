package scoring

import (
	"github.com/dashua-baba/layoutsolve/pkg/constraints"
	"github.com/dashua-baba/layoutsolve/pkg/geometry"
	"github.com/dashua-baba/layoutsolve/pkg/room"
)

const (
	hardScoreFull        = 20.0
	softScorePerAdjacent = 5.0
	softScoreExterior    = 3.0
	softScoreCap         = 15.0
	efficiencyScale      = 10.0
	efficiencyCap        = 10.0
	noViolationBonus     = 5.0
)

// PositionScore is the full breakdown of a scored candidate.
type PositionScore struct {
	Total         float64
	Hard          float64
	Soft          float64
	Efficiency    float64
	HasViolations bool
	Violations    []string
}

// Score evaluates candidate against req and the current placement state,
// calling constraints.Check and the geometry kernel it depends on.
//
//   - Hard is 20.0 if Check reports no violations, else 0.0.
//   - Soft is +5.0 per satisfied required adjacency to an already-placed
//     room, +3.0 if candidate touches an exterior wall, capped at 15.0.
//   - Efficiency is clamp(minArea/(w*h) * 10.0, 0, 10); exactly 10.0 when
//     w*h == minArea, lower for larger rooms.
//
// If there are violations, Soft and Efficiency are forced to 0.0 and the
// no-violation bonus is withheld, so Total is exactly 0. Otherwise
// Total = Hard + Soft + Efficiency + 5.0.
func Score(candidate *room.PlacedRoom, req *room.RoomRequirement, placed []room.PlacedRoom, boundary room.Boundary) PositionScore {
	check := constraints.Check(candidate, req, placed, boundary)
	hasViolations := !check.Satisfied

	hard := 0.0
	if !hasViolations {
		hard = hardScoreFull
	}

	soft := softPreference(candidate, req, placed, boundary)
	efficiency := spaceEfficiency(candidate, req)

	if hasViolations {
		soft = 0
		efficiency = 0
	}

	total := hard + soft + efficiency
	if !hasViolations {
		total += noViolationBonus
	}

	return PositionScore{
		Total:         total,
		Hard:          hard,
		Soft:          soft,
		Efficiency:    efficiency,
		HasViolations: hasViolations,
		Violations:    check.Violations,
	}
}

func softPreference(candidate *room.PlacedRoom, req *room.RoomRequirement, placed []room.PlacedRoom, boundary room.Boundary) float64 {
	rect := geometry.FromPlacedRoom(candidate)
	score := 0.0

	for _, want := range req.AdjacentTo {
		for i := range placed {
			if placed[i].ID == want && geometry.IsAdjacentTo(rect, geometry.FromPlacedRoom(&placed[i])) {
				score += softScorePerAdjacent
				break
			}
		}
	}

	if geometry.TouchesExteriorWall(rect, boundary.Width, boundary.Height) {
		score += softScoreExterior
	}

	if score > softScoreCap {
		score = softScoreCap
	}
	return score
}

func spaceEfficiency(candidate *room.PlacedRoom, req *room.RoomRequirement) float64 {
	area := candidate.Width * candidate.Height
	if area <= 0 {
		return 0
	}
	score := (req.MinArea / area) * efficiencyScale
	if score > efficiencyCap {
		score = efficiencyCap
	}
	if score < 0 {
		score = 0
	}
	return score
}
