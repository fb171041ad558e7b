// Package ordering reorders room requirements most-constrained-first, a
// static pre-search heuristic applied once before backtracking begins. It
// is never revised during search.
package ordering
