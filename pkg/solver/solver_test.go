package solver

import (
	"errors"
	"testing"

	"github.com/dashua-baba/layoutsolve/pkg/room"
	"pgregory.net/rapid"
)

func TestSolve_TwoUnconstrainedRooms(t *testing.T) {
	problem := &room.Problem{
		Boundary: room.Boundary{Width: 10, Height: 10},
		Requirements: []room.RoomRequirement{
			{ID: "a", MinArea: 9},
			{ID: "b", MinArea: 9},
		},
	}

	solution, _, err := Solve(problem)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(solution.Rooms) != 2 {
		t.Fatalf("expected 2 placed rooms, got %d", len(solution.Rooms))
	}
	if !solution.IsValid {
		t.Errorf("expected IsValid = true")
	}
	assertNoOverlaps(t, solution.Rooms)
	assertWithinBoundary(t, solution.Rooms, problem.Boundary)
}

func TestSolve_ImpossibleDueToSize(t *testing.T) {
	problem := &room.Problem{
		Boundary: room.Boundary{Width: 10, Height: 10},
		Requirements: []room.RoomRequirement{
			{ID: "a", MinArea: 60},
			{ID: "b", MinArea: 60},
		},
	}

	solution, _, err := Solve(problem)
	if solution != nil {
		t.Fatalf("expected nil solution, got %+v", solution)
	}
	var nsf *NoSolutionFound
	if !errors.As(err, &nsf) {
		t.Fatalf("expected *NoSolutionFound, got %v (%T)", err, err)
	}
}

func TestSolve_RequiredAdjacencySatisfied(t *testing.T) {
	problem := &room.Problem{
		Boundary: room.Boundary{Width: 10, Height: 10},
		Requirements: []room.RoomRequirement{
			{ID: "kitchen", MinArea: 9},
			{ID: "dining", MinArea: 9, AdjacentTo: []string{"kitchen"}},
		},
	}

	solution, _, err := Solve(problem)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	kitchen := findRoom(solution.Rooms, "kitchen")
	dining := findRoom(solution.Rooms, "dining")
	if kitchen == nil || dining == nil {
		t.Fatalf("expected both rooms placed, got %+v", solution.Rooms)
	}
	if !rectanglesAdjacent(kitchen, dining) {
		t.Errorf("expected kitchen and dining to be adjacent: %+v, %+v", kitchen, dining)
	}
}

func TestSolve_ExteriorWallRequirementSatisfied(t *testing.T) {
	problem := &room.Problem{
		Boundary: room.Boundary{Width: 8, Height: 8},
		Requirements: []room.RoomRequirement{
			{ID: "bedroom", MinArea: 9, HasExteriorWall: true},
		},
	}

	solution, _, err := Solve(problem)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	bedroom := findRoom(solution.Rooms, "bedroom")
	if bedroom == nil {
		t.Fatal("expected bedroom placed")
	}
	if !touchesExteriorWall(bedroom, problem.Boundary) {
		t.Errorf("expected bedroom to touch an exterior wall: %+v", bedroom)
	}
}

func TestSolve_MostConstrainedFirstDoesNotAffectCorrectness(t *testing.T) {
	problem := &room.Problem{
		Boundary: room.Boundary{Width: 12, Height: 12},
		Requirements: []room.RoomRequirement{
			{ID: "hallway", MinArea: 4},
			{ID: "living", MinArea: 16, AdjacentTo: []string{"hallway", "kitchen"}, HasExteriorWall: true},
			{ID: "kitchen", MinArea: 9, AdjacentTo: []string{"living"}},
		},
	}

	solution, _, err := Solve(problem)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(solution.Rooms) != 3 {
		t.Fatalf("expected 3 placed rooms, got %d", len(solution.Rooms))
	}
	assertNoOverlaps(t, solution.Rooms)
	assertWithinBoundary(t, solution.Rooms, problem.Boundary)
}

func TestSolve_TotalScorePositiveOnSuccess(t *testing.T) {
	problem := &room.Problem{
		Boundary: room.Boundary{Width: 10, Height: 10},
		Requirements: []room.RoomRequirement{
			{ID: "a", MinArea: 9},
		},
	}
	solution, _, err := Solve(problem)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if solution.TotalScore <= 0 {
		t.Errorf("expected positive total score, got %g", solution.TotalScore)
	}
}

func TestSolve_ComplexThreeRoomLayout(t *testing.T) {
	problem := &room.Problem{
		Boundary: room.Boundary{Width: 15, Height: 10},
		Requirements: []room.RoomRequirement{
			{ID: "living", MinArea: 20, HasExteriorWall: true},
			{ID: "kitchen", MinArea: 12, AdjacentTo: []string{"living"}},
			{ID: "bath", MinArea: 6, NotAdjacentTo: []string{"living"}},
		},
	}

	solution, stats, err := Solve(problem)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(solution.Rooms) != 3 {
		t.Fatalf("expected 3 placed rooms, got %d", len(solution.Rooms))
	}
	assertNoOverlaps(t, solution.Rooms)
	assertWithinBoundary(t, solution.Rooms, problem.Boundary)

	bath := findRoom(solution.Rooms, "bath")
	living := findRoom(solution.Rooms, "living")
	if bath == nil || living == nil {
		t.Fatal("expected bath and living placed")
	}
	if rectanglesAdjacent(bath, living) {
		t.Errorf("bath must not be adjacent to living: %+v, %+v", bath, living)
	}

	if stats.CandidatesGenerated == 0 {
		t.Errorf("expected nonzero candidates generated")
	}
}

func TestSolve_InvalidProblemReturnsError(t *testing.T) {
	problem := &room.Problem{
		Boundary:     room.Boundary{Width: 0, Height: 10},
		Requirements: []room.RoomRequirement{{ID: "a", MinArea: 9}},
	}
	_, _, err := Solve(problem)
	if err == nil {
		t.Fatal("expected an error for an invalid boundary")
	}
	var nsf *NoSolutionFound
	if errors.As(err, &nsf) {
		t.Errorf("invalid-problem errors should not be *NoSolutionFound")
	}
}

// TestSolve_NeverOverlapsAcrossRandomProblems is a property test: for any
// small solvable-sized problem, a returned solution is always internally
// consistent (no overlaps, everything within bounds), regardless of room
// count or requirement shape.
func TestSolve_NeverOverlapsAcrossRandomProblems(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.SampledFrom([]float64{10, 12, 15, 20}).Draw(t, "width")
		height := rapid.SampledFrom([]float64{10, 12, 15, 20}).Draw(t, "height")
		n := rapid.IntRange(1, 3).Draw(t, "n")

		reqs := make([]room.RoomRequirement, n)
		for i := 0; i < n; i++ {
			area := rapid.SampledFrom([]float64{4, 6, 9, 12}).Draw(t, "area")
			reqs[i] = room.RoomRequirement{ID: string(rune('a' + i)), MinArea: area}
		}

		problem := &room.Problem{
			Boundary:     room.Boundary{Width: width, Height: height},
			Requirements: reqs,
		}

		solution, _, err := Solve(problem)
		if err != nil {
			return
		}
		assertNoOverlaps(t, solution.Rooms)
		assertWithinBoundary(t, solution.Rooms, problem.Boundary)
	})
}

func findRoom(rooms []room.PlacedRoom, id string) *room.PlacedRoom {
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i]
		}
	}
	return nil
}

func rectanglesAdjacent(a, b *room.PlacedRoom) bool {
	shareVerticalEdge := (a.X+a.Width == b.X || b.X+b.Width == a.X) &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
	shareHorizontalEdge := (a.Y+a.Height == b.Y || b.Y+b.Height == a.Y) &&
		a.X < b.X+b.Width && b.X < a.X+a.Width
	return shareVerticalEdge || shareHorizontalEdge
}

func touchesExteriorWall(p *room.PlacedRoom, b room.Boundary) bool {
	return p.X == 0 || p.Y == 0 || p.X+p.Width == b.Width || p.Y+p.Height == b.Height
}

// errorfHelper is the subset of testing.TB and *rapid.T both satisfy,
// letting these assertions run under plain tests and rapid properties.
type errorfHelper interface {
	Helper()
	Errorf(format string, args ...interface{})
}

func assertNoOverlaps(t errorfHelper, rooms []room.PlacedRoom) {
	t.Helper()
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i], rooms[j]
			overlapsX := a.X < b.X+b.Width && b.X < a.X+a.Width
			overlapsY := a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
			if overlapsX && overlapsY {
				t.Errorf("rooms %s and %s overlap: %+v, %+v", a.ID, b.ID, a, b)
			}
		}
	}
}

func assertWithinBoundary(t errorfHelper, rooms []room.PlacedRoom, b room.Boundary) {
	t.Helper()
	for _, r := range rooms {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > b.Width || r.Y+r.Height > b.Height {
			t.Errorf("room %s out of bounds %+v in boundary %+v", r.ID, r, b)
		}
	}
}
