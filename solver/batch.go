package solver

import (
	"github.com/strawberryfields/greenhouse/grid"
	"github.com/strawberryfields/greenhouse/rect"
)

// Puzzle is one parsed input unit: a cardinality bound and a field of
// '.'/'@' rows. Its row and column counts are derived from Field and
// recorded in SolvedPuzzle.NumRows/NumCols.
type Puzzle struct {
	K     int
	Field [][]byte
}

// SolvedPuzzle is a Puzzle plus its labeled cover and total cost.
type SolvedPuzzle struct {
	Puzzle
	NumRows, NumCols int
	Cover            []*rect.Rectangle
	Cost             int
}

// RunSummary accumulates across a batch of puzzles.
type RunSummary struct {
	Count     int
	TotalCost int
}

// SolveAll solves every puzzle in order with one reused Context,
// resetting it between puzzles so no rectangle from one puzzle leaks into
// the next, and accumulates a RunSummary. Progress, if any, is reported
// through onProgress before each puzzle is solved; onProgress may be nil.
func SolveAll(puzzles []Puzzle, onProgress func(index int, total int)) ([]SolvedPuzzle, RunSummary, error) {
	var (
		results []SolvedPuzzle
		summary RunSummary
		ctx     *Context
	)

	for i, p := range puzzles {
		if onProgress != nil {
			onProgress(i, len(puzzles))
		}

		g, err := grid.NewGrid(p.Field)
		if err != nil {
			return nil, summary, &SolverError{Kind: MalformedInput, PuzzleIndex: i, Err: err}
		}

		if ctx == nil {
			ctx = NewContext(g, p.K)
		} else {
			ctx.Reset(g, p.K)
		}

		cover, err := Solve(ctx)
		if err != nil {
			if se, ok := err.(*SolverError); ok {
				se.PuzzleIndex = i
				return nil, summary, se
			}
			return nil, summary, &SolverError{Kind: Unsolvable, PuzzleIndex: i, Err: err}
		}

		cost := 0
		for _, r := range cover {
			cost += r.Cost()
		}

		results = append(results, SolvedPuzzle{
			Puzzle:  p,
			NumRows: g.NumRows(),
			NumCols: g.NumCols(),
			Cover:   cover,
			Cost:    cost,
		})
		summary.Count++
		summary.TotalCost += cost
	}

	return results, summary, nil
}
