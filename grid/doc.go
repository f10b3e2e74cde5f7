// Package grid holds the rectangular strawberry field one puzzle solves
// over: the 0/1 cell matrix, the set of strawberry coordinates, and a
// prefix-sum table that answers rectangle weight queries in O(1).
//
// A Grid is built once per puzzle and is immutable for the rest of the
// solve; it is discarded (or rebound via a fresh NewGrid) between
// puzzles, matching the single-threaded, no-shared-mutable-state
// discipline of the rest of the pipeline.
package grid
