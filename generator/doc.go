// Package generator implements phase 1 of the solver: enumerating the
// weighted rectangle poset anchored at every possible top-left corner,
// with a chain-dominance pruning rule that discards rectangles which do
// not strictly improve on the previous rectangle in the same
// (row, col, right) prefix chain.
//
// The resulting candidate list is sorted ascending by weight-to-cost
// ratio so the greedy matcher (phase 2) can consume it from the back.
package generator
