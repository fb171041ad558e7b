package geometry

import "github.com/dashua-baba/layoutsolve/pkg/room"

// Rectangle is the internal geometric value the predicates below operate
// on. It is structurally identical to a room.PlacedRoom shorn of its ID.
type Rectangle struct {
	X, Y, W, H float64
}

// FromPlacedRoom builds a Rectangle from a placed room.
func FromPlacedRoom(p *room.PlacedRoom) Rectangle {
	return Rectangle{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// OverlapsWith reports whether the open interiors of two rectangles
// intersect. Edge contact alone is not overlap.
func OverlapsWith(a, b Rectangle) bool {
	return !(a.X+a.W <= b.X || b.X+b.W <= a.X || a.Y+a.H <= b.Y || b.Y+b.H <= a.Y)
}

// IsAdjacentTo reports whether a and b share a non-degenerate edge
// segment. Corner-only touch (zero-length shared segment) is not
// adjacency.
func IsAdjacentTo(a, b Rectangle) bool {
	verticalEdge := a.X == b.X+b.W || a.X+a.W == b.X
	verticalOverlap := a.Y < b.Y+b.H && a.Y+a.H > b.Y

	horizontalEdge := a.Y == b.Y+b.H || a.Y+a.H == b.Y
	horizontalOverlap := a.X < b.X+b.W && a.X+a.W > b.X

	return (verticalEdge && verticalOverlap) || (horizontalEdge && horizontalOverlap)
}

// IsWithinBoundary reports whether r lies entirely within [0, W] x [0, H].
func IsWithinBoundary(r Rectangle, w, h float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= w && r.Y+r.H <= h
}

// TouchesExteriorWall reports whether at least one of r's four edges lies
// on a boundary edge.
func TouchesExteriorWall(r Rectangle, w, h float64) bool {
	return r.X == 0 || r.X+r.W == w || r.Y == 0 || r.Y+r.H == h
}
