package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dashua-baba/layoutsolve/pkg/room"
	"github.com/dashua-baba/layoutsolve/pkg/solver"
)

// RoomInput is the host-facing input structure for one room requirement,
// deserialized from a JSON array the caller supplies.
type RoomInput struct {
	ID              string   `json:"id"`
	MinArea         float64  `json:"min_area"`
	AdjacentTo      []string `json:"adjacent_to"`
	NotAdjacentTo   []string `json:"not_adjacent_to"`
	HasExteriorWall bool     `json:"has_exterior_wall"`
}

// PlacedRoomOutput is the host-facing output structure for one placed
// room.
type PlacedRoomOutput struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SolutionOutput is the host-facing output of a successful solve: every
// placed room, the solution's total score, and the wall-clock time the
// solve took.
type SolutionOutput struct {
	Rooms             []PlacedRoomOutput `json:"rooms"`
	Score             float64            `json:"score"`
	ComputationTimeMs uint64             `json:"computation_time_ms"`
}

// SolveLayout is the main host-environment entry point. It accepts a JSON
// array of room requirements and a boundary width/height, runs the
// solver, and returns a JSON-encoded SolutionOutput.
//
// Errors are always strings prefixed by the stage that failed, so a
// caller can tell a malformed request apart from an unsolvable one:
//
//   - "Parse error: ..."     — rooms_json could not be decoded
//   - "Solver error: ..."    — the solver found no valid placement, or the
//     assembled problem failed validation
//   - "Serialize error: ..." — the solution could not be encoded back to JSON
func SolveLayout(roomsJSON []byte, boundaryWidth, boundaryHeight float64) ([]byte, error) {
	var inputs []RoomInput
	if err := json.Unmarshal(roomsJSON, &inputs); err != nil {
		return nil, fmt.Errorf("Parse error: %w", err)
	}

	problem := &room.Problem{
		Boundary:     room.Boundary{Width: boundaryWidth, Height: boundaryHeight},
		Requirements: make([]room.RoomRequirement, len(inputs)),
	}
	for i, in := range inputs {
		problem.Requirements[i] = room.RoomRequirement{
			ID:              in.ID,
			MinArea:         in.MinArea,
			AdjacentTo:      in.AdjacentTo,
			NotAdjacentTo:   in.NotAdjacentTo,
			HasExteriorWall: in.HasExteriorWall,
		}
	}

	start := time.Now()
	solution, _, err := solver.Solve(problem)
	elapsed := uint64(time.Since(start).Milliseconds())
	if err != nil {
		return nil, fmt.Errorf("Solver error: %w", err)
	}

	output := SolutionOutput{
		Rooms:             make([]PlacedRoomOutput, len(solution.Rooms)),
		Score:             solution.TotalScore,
		ComputationTimeMs: elapsed,
	}
	for i, r := range solution.Rooms {
		output.Rooms[i] = PlacedRoomOutput{ID: r.ID, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}

	data, err := json.Marshal(output)
	if err != nil {
		return nil, fmt.Errorf("Serialize error: %w", err)
	}
	return data, nil
}

// SolveLayoutWithTimeout imposes a deadline on SolveLayout from the
// outside. The core solver takes no context: it runs to completion or
// exhaustion inside a goroutine, and this function races that goroutine
// against ctx. If ctx is done first, the goroutine is abandoned (it keeps
// running to completion but its result is discarded) and ctx.Err() is
// returned; there is no way to interrupt the search mid-recursion without
// polluting its purely synchronous core.
func SolveLayoutWithTimeout(ctx context.Context, roomsJSON []byte, boundaryWidth, boundaryHeight float64) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}

	done := make(chan result, 1)
	go func() {
		data, err := SolveLayout(roomsJSON, boundaryWidth, boundaryHeight)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.data, r.err
	}
}
