package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/dashua-baba/layoutsolve/pkg/room"
	"github.com/dashua-baba/layoutsolve/pkg/solver"
)

// SVGOptions configures floor-plan visualization export.
type SVGOptions struct {
	Width        int    // Canvas width in pixels
	Height       int    // Canvas height in pixels
	Margin       int    // Canvas margin in pixels (default: 40)
	ShowLabels   bool   // Show room ID labels
	ColorByRole  bool   // Color rooms by exterior-wall/adjacency role
	ShowLegend   bool   // Show legend explaining colors
	Title        string // Optional title for the visualization
	ShowScore    bool   // Show the solution's total score
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       1000,
		Height:      800,
		Margin:      40,
		ShowLabels:  true,
		ColorByRole: true,
		ShowLegend:  true,
		Title:       "Floor Plan",
		ShowScore:   true,
	}
}

// ExportSVG renders solution within problem's boundary as an SVG floor
// plan: one rectangle per placed room, scaled to fit the canvas, labelled
// with its ID, and color-keyed by whether it carries an exterior-wall
// requirement or an adjacency requirement.
func ExportSVG(solution *solver.LayoutSolution, problem *room.Problem, opts SVGOptions) ([]byte, error) {
	if solution == nil {
		return nil, fmt.Errorf("solution cannot be nil")
	}
	if problem == nil {
		return nil, fmt.Errorf("problem cannot be nil")
	}

	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#f7fafc")

	headerHeight := 0
	if opts.Title != "" || opts.ShowScore {
		headerHeight = 40
	}

	scaleX, scaleY, originX, originY := computeScale(problem.Boundary, opts, headerHeight)

	drawBoundary(canvas, problem.Boundary, scaleX, scaleY, originX, originY)
	drawRooms(canvas, solution.Rooms, problem, scaleX, scaleY, originX, originY, opts)

	if opts.ShowLegend {
		drawLegend(canvas, opts)
	}
	if headerHeight > 0 {
		drawHeader(canvas, solution, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile generates a floor-plan SVG and saves it to a file, created
// with 0644 permissions.
func SaveSVGToFile(solution *solver.LayoutSolution, problem *room.Problem, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(solution, problem, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// computeScale returns the pixel-per-unit scale factors and origin needed
// to map a boundary's grid coordinates into the drawable canvas area.
func computeScale(boundary room.Boundary, opts SVGOptions, headerHeight int) (scaleX, scaleY float64, originX, originY int) {
	drawWidth := float64(opts.Width - 2*opts.Margin)
	drawHeight := float64(opts.Height - 2*opts.Margin - headerHeight)

	scaleX = drawWidth / boundary.Width
	scaleY = drawHeight / boundary.Height
	if scaleX > scaleY {
		scaleX = scaleY
	} else {
		scaleY = scaleX
	}

	originX = opts.Margin
	originY = opts.Margin + headerHeight
	return
}

// toPixels converts a grid-space rectangle into canvas pixel coordinates.
// The Y axis flips: grid Y=0 is the bottom wall, SVG Y=0 is the top.
func toPixels(x, y, w, h, scaleX, scaleY float64, originX, originY int, boundaryHeight float64) (px, py, pw, ph int) {
	px = originX + int(x*scaleX)
	py = originY + int((boundaryHeight-y-h)*scaleY)
	pw = int(w * scaleX)
	ph = int(h * scaleY)
	return
}

func drawBoundary(canvas *svg.SVG, boundary room.Boundary, scaleX, scaleY float64, originX, originY int) {
	px, py, pw, ph := toPixels(0, 0, boundary.Width, boundary.Height, scaleX, scaleY, originX, originY, boundary.Height)
	canvas.Rect(px, py, pw, ph, "fill:none;stroke:#1a202c;stroke-width:2")
}

func drawRooms(canvas *svg.SVG, placed []room.PlacedRoom, problem *room.Problem, scaleX, scaleY float64, originX, originY int, opts SVGOptions) {
	ordered := make([]room.PlacedRoom, len(placed))
	copy(ordered, placed)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, r := range ordered {
		req := problem.Lookup(r.ID)
		color := roomColor(req, opts)

		px, py, pw, ph := toPixels(r.X, r.Y, r.Width, r.Height, scaleX, scaleY, originX, originY, problem.Boundary.Height)
		canvas.Rect(px, py, pw, ph, fmt.Sprintf("fill:%s;stroke:#2d3748;stroke-width:1.5;opacity:0.85", color))

		if opts.ShowLabels {
			labelX := px + pw/2
			labelY := py + ph/2
			canvas.Text(labelX, labelY, r.ID, "text-anchor:middle;font-size:13px;font-family:monospace;fill:#1a202c")
		}
	}
}

// roomColor picks a color for a room based on its requirement: exterior
// wall takes priority over adjacency constraints, which take priority
// over an unconstrained room.
func roomColor(req *room.RoomRequirement, opts SVGOptions) string {
	if !opts.ColorByRole || req == nil {
		return "#cbd5e0"
	}
	switch {
	case req.HasExteriorWall:
		return "#68d391"
	case len(req.AdjacentTo) > 0:
		return "#63b3ed"
	case len(req.NotAdjacentTo) > 0:
		return "#fc8181"
	default:
		return "#cbd5e0"
	}
}

func drawLegend(canvas *svg.SVG, opts SVGOptions) {
	legendX := opts.Width - opts.Margin - 170
	legendY := opts.Margin + 10

	canvas.Rect(legendX-10, legendY-15, 180, 110, "fill:#ffffff;stroke:#cbd5e0;stroke-width:1;opacity:0.95;rx:5")
	canvas.Text(legendX, legendY, "Room role", "font-size:13px;font-weight:bold;fill:#1a202c")
	legendY += 22

	entries := []struct {
		name  string
		color string
	}{
		{"Exterior wall", "#68d391"},
		{"Required adjacency", "#63b3ed"},
		{"Forbidden adjacency", "#fc8181"},
		{"Unconstrained", "#cbd5e0"},
	}
	for _, e := range entries {
		canvas.Rect(legendX, legendY-10, 14, 14, fmt.Sprintf("fill:%s;stroke:#2d3748;stroke-width:1", e.color))
		canvas.Text(legendX+20, legendY, e.name, "font-size:11px;fill:#2d3748")
		legendY += 20
	}
}

func drawHeader(canvas *svg.SVG, solution *solver.LayoutSolution, opts SVGOptions) {
	headerY := 22
	if opts.Title != "" {
		canvas.Text(opts.Width/2, headerY, opts.Title, "text-anchor:middle;font-size:18px;font-weight:bold;fill:#1a202c;font-family:sans-serif")
	}
	if opts.ShowScore {
		canvas.Text(opts.Width/2, headerY+18, fmt.Sprintf("rooms: %d | total score: %.1f", len(solution.Rooms), solution.TotalScore),
			"text-anchor:middle;font-size:11px;fill:#4a5568;font-family:monospace")
	}
}
