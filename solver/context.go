package solver

import (
	"github.com/strawberryfields/greenhouse/grid"
	"github.com/strawberryfields/greenhouse/rect"
)

// Context bundles the grid, the rectangle arena, and the cardinality
// bound K for one puzzle, threaded explicitly through the pipeline
// instead of living behind package-level mutable state.
type Context struct {
	Arena *rect.Arena
	Grid  *grid.Grid
	K     int
}

// NewContext builds a Context scoped to g and bounded by k.
func NewContext(g *grid.Grid, k int) *Context {
	return &Context{
		Arena: rect.NewArena(g.NumRows(), g.NumCols()),
		Grid:  g,
		K:     k,
	}
}

// Reset purges the arena and rebinds this Context to the next puzzle's
// grid and K, so a single Context can be reused across a batch without
// leaking rectangles between puzzles.
func (c *Context) Reset(g *grid.Grid, k int) {
	c.Arena.Reset(g.NumRows(), g.NumCols())
	c.Grid = g
	c.K = k
}
