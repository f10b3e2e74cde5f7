package rect

// baseCost is the fixed per-rectangle cost charged regardless of area,
// per the covering problem's cost model: cost = baseCost + area.
const baseCost = 10

// Bounds is an inclusive axis-aligned box: both corners are part of the
// rectangle. TopRow <= BottomRow and TopCol <= BottomCol always hold for
// any Bounds handed to the Arena.
type Bounds struct {
	TopRow, TopCol, BottomRow, BottomCol int
}

// Rows reports the number of grid rows spanned.
func (b Bounds) Rows() int { return b.BottomRow - b.TopRow + 1 }

// Cols reports the number of grid columns spanned.
func (b Bounds) Cols() int { return b.BottomCol - b.TopCol + 1 }

// Area reports the inclusive cell count.
func (b Bounds) Area() int { return b.Rows() * b.Cols() }

// Contains reports whether (row, col) lies within b.
func (b Bounds) Contains(row, col int) bool {
	return row >= b.TopRow && row <= b.BottomRow && col >= b.TopCol && col <= b.BottomCol
}

// Union returns the smallest Bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		TopRow:    min(b.TopRow, other.TopRow),
		TopCol:    min(b.TopCol, other.TopCol),
		BottomRow: max(b.BottomRow, other.BottomRow),
		BottomCol: max(b.BottomCol, other.BottomCol),
	}
}

// Rectangle is an immutable candidate greenhouse: its Bounds, Weight, and
// derived Cost/Ratio are fixed at construction; its Span is lazily
// materialized on first use and never mutated afterward. Every Rectangle
// alive during a run is owned by exactly one Arena.
type Rectangle struct {
	Bounds
	Weight int

	// Label is post-hoc display metadata assigned by the labeler once a
	// puzzle's cover is final. No core algorithm step reads it; it only
	// exists to render the output grammar's per-cell labels.
	Label byte

	numRows, numCols int
	span             *Span
}

// Cost is the fixed charge for owning this rectangle: baseCost + area.
func (r *Rectangle) Cost() int {
	return baseCost + r.Area()
}

// Ratio is the greedy priority: weight per unit cost.
func (r *Rectangle) Ratio() float64 {
	return float64(r.Weight) / float64(r.Cost())
}

// GridNumCols reports the column count of the grid this rectangle was
// allocated against, needed to translate a flat Span bit index back to
// (row, col).
func (r *Rectangle) GridNumCols() int { return r.numCols }

// GridNumRows reports the row count of the grid this rectangle was
// allocated against.
func (r *Rectangle) GridNumRows() int { return r.numRows }

// Span lazily materializes and returns this rectangle's cell-membership
// bitset over the numRows*numCols grid it was built against. The first
// call allocates and fills the bitset; every later call returns the same
// pointer without recomputation.
func (r *Rectangle) Span() *Span {
	if r.span != nil {
		return r.span
	}
	s := NewSpan(r.numRows * r.numCols)
	for row := r.TopRow; row <= r.BottomRow; row++ {
		base := row * r.numCols
		for col := r.TopCol; col <= r.BottomCol; col++ {
			s.Set(base + col)
		}
	}
	r.span = s
	return s
}

// Intersects reports whether r and other share any cell. It always goes
// through Span, never Bounds arithmetic, so that it uses the same bit
// basis as the slice classifier.
func (r *Rectangle) Intersects(other *Rectangle) bool {
	return r.Span().Intersects(other.Span())
}

// IsSubsetOf reports whether every cell of r also belongs to other, via
// Span for the same reason as Intersects.
func (r *Rectangle) IsSubsetOf(other *Rectangle) bool {
	return r.Span().IsSubsetOf(other.Span())
}

// Less implements the rectangle ordering: ascending by weight-to-cost
// ratio. No further tie-break is defined at this level.
func Less(a, b *Rectangle) bool {
	return a.Ratio() < b.Ratio()
}
