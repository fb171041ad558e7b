package candidates

import (
	"math"

	"github.com/dashua-baba/layoutsolve/pkg/room"
)

// AspectRatios is the fixed set of width/height ratios dimension
// enumeration tries, in the order scored and emitted.
var AspectRatios = []float64{0.5, 0.67, 0.8, 1.0, 1.2, 1.5, 2.0}

// Dimensions is an accepted (width, height) pair for a room's minimum
// area.
type Dimensions struct {
	Width, Height float64
}

// GenerateDimensions enumerates candidate (width, height) pairs for
// minArea by trying every ratio in AspectRatios: w = sqrt(minArea/ratio),
// h = minArea/w, both rounded to the nearest multiple of room.Grid. A pair
// is accepted only if the rounded product is exactly minArea — this
// exact-area filter is intentional and aggressive; it is what keeps the
// candidate space small, at the cost of rejecting min areas that cannot be
// expressed as a product of two grid-aligned halves under any listed
// ratio (in which case this returns no candidates for the room).
func GenerateDimensions(minArea float64) []Dimensions {
	var out []Dimensions
	for _, ratio := range AspectRatios {
		w := math.Sqrt(minArea / ratio)
		h := minArea / w
		rw := roundToGrid(w)
		rh := roundToGrid(h)
		if rw*rh == minArea {
			out = append(out, Dimensions{Width: rw, Height: rh})
		}
	}
	return out
}

func roundToGrid(v float64) float64 {
	return math.Round(v/room.Grid) * room.Grid
}

// GenerateGridPositions enumerates every grid-aligned (x, y) at which a
// roomWidth x roomHeight rectangle fits inside a boundaryWidth x
// boundaryHeight boundary, in row-major order (outer loop on x, inner on
// y).
func GenerateGridPositions(roomWidth, roomHeight, boundaryWidth, boundaryHeight float64) [][2]float64 {
	var out [][2]float64
	// room.Grid (0.5) is exactly representable in binary floating point, and
	// repeated addition of an exact half-integer stays exact at these
	// magnitudes, so plain equality/comparison is safe here (see
	// pkg/geometry's doc comment for the same property).
	for x := 0.0; x+roomWidth <= boundaryWidth; x += room.Grid {
		for y := 0.0; y+roomHeight <= boundaryHeight; y += room.Grid {
			out = append(out, [2]float64{x, y})
		}
	}
	return out
}

// Candidate is a single (dimensions, position) proposal for a room.
type Candidate struct {
	room.PlacedRoom
}

// Generate emits every (id, x, y, w, h) tuple formed by the Cartesian
// product of GenerateDimensions(req.MinArea) with the matching grid
// positions, in emission order: dimensions in AspectRatios order, then
// positions in row-major order within each dimension. This order is the
// stable input order for the scorer and the tie-breaker for equal scores.
func Generate(req *room.RoomRequirement, boundary room.Boundary) []Candidate {
	var out []Candidate
	for _, dim := range GenerateDimensions(req.MinArea) {
		positions := GenerateGridPositions(dim.Width, dim.Height, boundary.Width, boundary.Height)
		for _, pos := range positions {
			out = append(out, Candidate{room.PlacedRoom{
				ID:     req.ID,
				X:      pos[0],
				Y:      pos[1],
				Width:  dim.Width,
				Height: dim.Height,
			}})
		}
	}
	return out
}
