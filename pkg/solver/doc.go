// Package solver implements the depth-first backtracking search that
// places every room in a problem or reports that no placement exists. It
// orchestrates the rest of the core the way dungo's pkg/dungeon.Generator
// orchestrates its own pipeline stages: order rooms (pkg/ordering),
// generate candidates (pkg/candidates), score and prune them
// (pkg/scoring, which in turn calls pkg/constraints and pkg/geometry),
// and recurse.
//
// The search is single-threaded, purely synchronous, and holds no global
// state: Solve is a pure function of its inputs. There is no
// context.Context parameter here by design — the core cannot be
// interrupted from inside itself; a caller that needs a deadline imposes
// one externally (see pkg/bridge, which runs Solve in a goroutine raced
// against a context).
package solver
