// Package room defines the data model for the floor-plan layout solver:
// the caller-supplied room requirements and boundary, and the placed rooms
// produced by search. All lengths are metres, quantized to the grid
// resolution Grid (0.5 m).
package room
