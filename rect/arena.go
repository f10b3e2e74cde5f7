package rect

// chunkSize bounds how many Rectangles are preallocated per arena chunk.
// A 50x50 grid's generator enumerates O(R^2*C^2) rectangles before
// chain-pruning; a few thousand per chunk keeps chunk count low without
// over-allocating for small puzzles.
const chunkSize = 4096

// Weigher supplies a rectangle's strawberry count from its bounds. Grid
// satisfies this interface; Arena depends only on the interface so that
// rect never needs to import grid.
type Weigher interface {
	Weight(topRow, topCol, bottomRow, bottomCol int) int
}

// Arena is the bulk allocator for every Rectangle created during one
// solver run. It preallocates fixed-capacity chunks and writes new
// rectangles into the next free slot, so a *Rectangle handed out by New
// remains valid and at a stable address for the Arena's entire lifetime
// — no chunk is ever grown or moved after it is created. Reset purges
// every chunk at once between puzzles.
type Arena struct {
	numRows, numCols int
	chunks           [][]Rectangle
	next             int // next free index within the last chunk
}

// NewArena creates an Arena scoped to a numRows x numCols grid.
func NewArena(numRows, numCols int) *Arena {
	a := &Arena{}
	a.Reset(numRows, numCols)
	return a
}

// Reset purges all previously allocated rectangles and rebinds the arena
// to a (possibly different) grid shape, ready for the next puzzle.
func (a *Arena) Reset(numRows, numCols int) {
	a.numRows = numRows
	a.numCols = numCols
	a.chunks = nil
	a.next = chunkSize // forces allocation of a first chunk on next New
}

// New allocates a fresh Rectangle with the given bounds and weight.
func (a *Arena) New(b Bounds, weight int) *Rectangle {
	if a.next >= chunkSize {
		a.chunks = append(a.chunks, make([]Rectangle, chunkSize))
		a.next = 0
	}
	chunk := a.chunks[len(a.chunks)-1]
	r := &chunk[a.next]
	a.next++

	*r = Rectangle{
		Bounds:  b,
		Weight:  weight,
		numRows: a.numRows,
		numCols: a.numCols,
	}
	return r
}

// NewFromWeigher allocates a Rectangle whose weight is queried from w,
// mirroring the "weight taken from grid" constructor variant.
func (a *Arena) NewFromWeigher(w Weigher, b Bounds) *Rectangle {
	weight := w.Weight(b.TopRow, b.TopCol, b.BottomRow, b.BottomCol)
	return a.New(b, weight)
}
