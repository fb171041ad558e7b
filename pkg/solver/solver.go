package solver

import (
	"fmt"
	"sort"

	"github.com/dashua-baba/layoutsolve/pkg/candidates"
	"github.com/dashua-baba/layoutsolve/pkg/ordering"
	"github.com/dashua-baba/layoutsolve/pkg/room"
	"github.com/dashua-baba/layoutsolve/pkg/scoring"
)

// LayoutSolution is the output of a successful solve: every room placed,
// the search's own total quality score, and a validity flag kept for
// symmetry with the failure path (always true on a returned solution —
// Solve never returns a partial or invalid one).
type LayoutSolution struct {
	Rooms      []room.PlacedRoom `json:"rooms"`
	TotalScore float64           `json:"total_score"`
	IsValid    bool              `json:"is_valid"`
}

// Stats are search statistics collected alongside a Solve call, pure
// telemetry with no effect on search order or outcome. They are reported
// on both success and failure.
type Stats struct {
	CandidatesGenerated int
	CandidatesPruned    int
	NodesVisited        int
	Backtracks          int
}

// NoSolutionFound is the failure Solve reports for a valid problem whose
// backtracking search exhausted every candidate of the first room in
// search order without completing a full placement. Infeasibility can
// arise from a boundary too small, incompatible adjacency constraints, or
// a minimum area that yields no accepted dimensions under the candidate
// generator's exact-area filter.
type NoSolutionFound struct {
	Message string
}

func (e *NoSolutionFound) Error() string {
	return e.Message
}

// Solve orders problem's requirements most-constrained-first and performs
// a depth-first backtracking search for a complete, non-overlapping
// placement. It returns the first complete placement discovered under
// this fixed heuristic ordering — not a globally optimal one — or a
// *NoSolutionFound error if none exists. A problem that fails
// Problem.Validate is rejected before search with a wrapped validation
// error, which is not a *NoSolutionFound.
//
// Solve is a pure function: it holds no state across calls, and two calls
// with identical inputs return identical outputs.
func Solve(problem *room.Problem) (*LayoutSolution, Stats, error) {
	if err := problem.Validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("invalid problem: %w", err)
	}

	ordered := ordering.ByConstrainedness(problem.Requirements)

	search := &search{boundary: problem.Boundary}
	placed := search.recurse(ordered, nil)

	if placed == nil {
		return nil, search.stats, &NoSolutionFound{
			Message: fmt.Sprintf("no valid placement found for %d rooms in a %gx%g boundary",
				len(ordered), problem.Boundary.Width, problem.Boundary.Height),
		}
	}

	solution := &LayoutSolution{
		Rooms:      placed,
		TotalScore: scoreSolution(placed, ordered, problem.Boundary),
		IsValid:    true,
	}
	return solution, search.stats, nil
}

// search carries the per-solve state threaded through recursion: the
// fixed boundary and the statistics accumulator. It is created fresh for
// every Solve call, never shared across them.
type search struct {
	boundary room.Boundary
	stats    Stats
}

// recurse implements §4.6's procedure: place remaining[0], try its
// surviving candidates best-first, recurse on the rest, and backtrack on
// failure. It returns the completed placement stack, or nil if no
// candidate for remaining[0] leads to a complete placement.
func (s *search) recurse(remaining []room.RoomRequirement, placed []room.PlacedRoom) []room.PlacedRoom {
	if len(remaining) == 0 {
		return placed
	}

	req := &remaining[0]
	rest := remaining[1:]

	survivors := s.scoredCandidates(req, placed)

	for _, sc := range survivors {
		s.stats.NodesVisited++

		next := make([]room.PlacedRoom, len(placed)+1)
		copy(next, placed)
		next[len(placed)] = sc.candidate

		if result := s.recurse(rest, next); result != nil {
			return result
		}
		s.stats.Backtracks++
	}

	return nil
}

type scoredCandidate struct {
	score     scoring.PositionScore
	candidate room.PlacedRoom
}

// scoredCandidates generates every candidate for req, scores each against
// the current placement, discards any with violations, and returns the
// survivors sorted by total score descending with ties broken by
// candidate-generator emission order (stable sort).
func (s *search) scoredCandidates(req *room.RoomRequirement, placed []room.PlacedRoom) []scoredCandidate {
	generated := candidates.Generate(req, s.boundary)
	s.stats.CandidatesGenerated += len(generated)

	survivors := make([]scoredCandidate, 0, len(generated))
	for _, c := range generated {
		sc := scoring.Score(&c.PlacedRoom, req, placed, s.boundary)
		if sc.HasViolations {
			s.stats.CandidatesPruned++
			continue
		}
		survivors = append(survivors, scoredCandidate{score: sc, candidate: c.PlacedRoom})
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].score.Total > survivors[j].score.Total
	})

	return survivors
}

// scoreSolution replays a completed placement in order, scoring each room
// against the rooms placed before it — the same semantics the search used
// — and sums the per-room totals, so the reported total is consistent
// with the search's own ranking.
func scoreSolution(placed []room.PlacedRoom, reqs []room.RoomRequirement, boundary room.Boundary) float64 {
	total := 0.0
	for i := range placed {
		req := lookup(reqs, placed[i].ID)
		sc := scoring.Score(&placed[i], req, placed[:i], boundary)
		total += sc.Total
	}
	return total
}

func lookup(reqs []room.RoomRequirement, id string) *room.RoomRequirement {
	for i := range reqs {
		if reqs[i].ID == id {
			return &reqs[i]
		}
	}
	return nil
}
