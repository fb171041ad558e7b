// Package export renders a solved layout to the two output formats a host
// application needs: JSON for machine consumption and SVG for a visual
// floor plan, one rectangle per placed room.
package export
