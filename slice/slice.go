package slice

import "github.com/strawberryfields/greenhouse/rect"

// IntersectionKind classifies how a third rectangle R relates to a
// join-hull H. Values are ordered so that ascending sort groups the most
// favorable outcomes (Void, Decreasing) before the ones that cost the
// cover something (NonIncreasing) or forbid the join outright
// (Increasing).
type IntersectionKind int

const (
	// Void means R does not intersect H at all; R is unaffected by the join.
	Void IntersectionKind = -2
	// Decreasing means R is wholly contained in H; R would be absorbed
	// into the join's envelope.
	Decreasing IntersectionKind = -1
	// NonIncreasing means R \ H is itself a rectangle; R can shrink to
	// that residual without the cover growing.
	NonIncreasing IntersectionKind = 0
	// Increasing means R \ H is not a single rectangle; applying the
	// join would require splitting R into two or more pieces, which the
	// cardinality-non-increasing discipline forbids.
	Increasing IntersectionKind = 1
)

// Slice records the classification of one cover rectangle R against a
// join-hull. Residual is only meaningful when Kind == NonIncreasing.
type Slice struct {
	R        *rect.Rectangle
	Kind     IntersectionKind
	Residual rect.Bounds
}

// Classify determines how r relates to the join-hull h. numCols is the
// grid's column count, needed to translate flat Span bit indices back
// to (row, col) coordinates while scanning the residual.
//
// The residual's bottom-right coordinates are taken from the last bit
// visited while scanning r's leftover span (r.Span() AND NOT h.Span()),
// not from a separately tracked maximum — the two must agree for the
// residual to qualify as NonIncreasing, and disagreement is exactly what
// routes the slice to Increasing instead.
func Classify(h, r *rect.Rectangle, numCols int) Slice {
	if !r.Intersects(h) {
		return Slice{R: r, Kind: Void}
	}
	if r.IsSubsetOf(h) {
		return Slice{R: r, Kind: Decreasing}
	}

	leftOver := r.Span().AndNot(h.Span())

	var firstIdx, lastIdx int
	var minRow, maxRow, minCol, maxCol int
	haveFirst := false

	idx, ok := leftOver.FirstSet()
	for ok {
		row, col := idx/numCols, idx%numCols
		if !haveFirst {
			firstIdx = idx
			minRow, maxRow = row, row
			minCol, maxCol = col, col
			haveFirst = true
		} else {
			if row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
			if col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
		lastIdx = idx
		idx, ok = leftOver.NextSet(idx + 1)
	}

	topRow, topCol := firstIdx/numCols, firstIdx%numCols
	bottomRow, bottomCol := lastIdx/numCols, lastIdx%numCols

	rectangular := topRow == minRow && topCol == minCol &&
		bottomRow == maxRow && bottomCol == maxCol

	if rectangular {
		test := rect.NewSpan(leftOver.Len())
		for row := topRow; row <= bottomRow; row++ {
			base := row * numCols
			for col := topCol; col <= bottomCol; col++ {
				test.Set(base + col)
			}
		}
		rectangular = test.Equal(leftOver)
	}

	if !rectangular {
		return Slice{R: r, Kind: Increasing}
	}
	return Slice{
		R:    r,
		Kind: NonIncreasing,
		Residual: rect.Bounds{
			TopRow: topRow, TopCol: topCol,
			BottomRow: bottomRow, BottomCol: bottomCol,
		},
	}
}
