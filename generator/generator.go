package generator

import (
	"sort"

	"github.com/strawberryfields/greenhouse/grid"
	"github.com/strawberryfields/greenhouse/rect"
)

// Generate enumerates every chain-dominant rectangle over g, allocating
// each from a, and returns them sorted ascending by weight-to-cost
// ratio.
//
// For every top-left corner (row, col) and every right >= col, it walks
// bottomRow from row to the grid's last row, emitting a rectangle iff
// its weight strictly exceeds the weight of the previous emission on
// that same (row, col, right) chain. Because the first step of every
// chain (bottomRow == row) always emits — there is no predecessor to
// dominate it — every single strawberry cell is guaranteed to appear as
// its own unit-area candidate; the greedy matcher (phase 2) relies on
// this to never exhaust its candidate list with strawberries still
// unmatched.
//
// Spans are not materialized here; Generate produces only the geometric
// and weight metadata needed to sort and greedily match.
//
// Complexity: O(numRows^2 * numCols^2) rectangle weight queries, each
// O(1) against Grid's prefix-sum table, plus an O(n log n) sort of the
// surviving candidates.
func Generate(a *rect.Arena, g *grid.Grid) []*rect.Rectangle {
	numRows, numCols := g.NumRows(), g.NumCols()
	candidates := make([]*rect.Rectangle, 0, numRows*numCols)

	for row := 0; row < numRows; row++ {
		for col := 0; col < numCols; col++ {
			for right := col; right < numCols; right++ {
				prevWeight := -1
				for down := row; down < numRows; down++ {
					w := g.Weight(row, col, down, right)
					if w <= prevWeight {
						continue
					}
					b := rect.Bounds{TopRow: row, TopCol: col, BottomRow: down, BottomCol: right}
					candidates = append(candidates, a.New(b, w))
					prevWeight = w
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return rect.Less(candidates[i], candidates[j])
	})
	return candidates
}
