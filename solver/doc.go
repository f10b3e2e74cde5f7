// Package solver orchestrates the three-phase covering pipeline — phase
// 1 generation, phase 2 greedy matching, phase 3 local search — behind
// a single Context that replaces the source implementation's
// process-wide globals (grid, dimensions, arena) with an explicit value
// threaded through every call.
//
// It also houses the K=1 convex-hull shortcut, the descending-ratio
// labeler, and the batch driver (SolveAll) that runs a sequence of
// puzzles one Context at a time, resetting between them.
package solver
