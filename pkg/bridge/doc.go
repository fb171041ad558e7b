// Package bridge is the host-environment entry point for the solver: JSON
// in, JSON out, with error strings prefixed by stage ("Parse error:",
// "Solver error:", "Serialize error:") so a caller embedding this module
// can distinguish where a call failed, and a computation_time_ms field on
// every successful solve.
//
// The core solver (pkg/solver) is synchronous and holds no
// context.Context; SolveLayoutWithTimeout imposes a deadline from the outside by
// racing the core against ctx in a goroutine, the same shape dungo's
// Generator.Generate uses ctx.Done() to bound its own pipeline stages.
package bridge
