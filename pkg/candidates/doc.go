// Package candidates enumerates the discrete (dimensions, position) space
// the solver considers for a single room. Dimension enumeration tries a
// fixed table of aspect ratios and keeps only pairs whose rounded product
// is exactly the room's minimum area; position enumeration walks the grid
// in row-major order. The combined, ordered output is the stable input the
// scorer ranks and the solver backtracks over.
package candidates
