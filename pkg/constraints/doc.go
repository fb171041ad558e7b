// Package constraints evaluates the hard placement rules — boundary,
// non-overlap, exterior wall, required/forbidden adjacency — against an
// incremental placement state. Check is pure and side-effect-free; its
// violation list exists for diagnostic surfacing only, never as control
// flow (a discarded candidate's violations never escape the solver).
package constraints
