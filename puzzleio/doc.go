// Package puzzleio parses the strawberry-fields input grammar into
// solver.Puzzle values and renders solved puzzles back into the output
// grammar. It depends one-directionally on solver for the
// Puzzle/SolvedPuzzle/RunSummary types; solver never imports puzzleio.
package puzzleio
