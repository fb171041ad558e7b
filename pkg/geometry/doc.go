// Package geometry provides the primitive rectangle predicates the rest of
// the solver is built on: overlap, edge-adjacency, boundary containment,
// and exterior-wall contact. Every predicate uses exact floating-point
// equality deliberately — all coordinates entering them are multiples of
// room.Grid (0.5), a value exactly representable in binary floating point,
// and the arithmetic here (addition, comparison) preserves that
// representability. Any change to the grid resolution or its rounding must
// be accompanied by an equality-tolerance review of this package.
package geometry
