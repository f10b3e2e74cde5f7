package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strawberryfields/greenhouse/grid"
	"github.com/strawberryfields/greenhouse/rect"
	"github.com/strawberryfields/greenhouse/solver"
)

func mustGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	field := make([][]byte, len(rows))
	for i, row := range rows {
		field[i] = []byte(row)
	}
	g, err := grid.NewGrid(field)
	require.NoError(t, err)
	return g
}

func totalCost(cover []*rect.Rectangle) int {
	sum := 0
	for _, r := range cover {
		sum += r.Cost()
	}
	return sum
}

// K=1 takes the convex-hull shortcut over a single strawberry.
func TestSolve_K1SingleStrawberry(t *testing.T) {
	g := mustGrid(t, "@")
	ctx := solver.NewContext(g, 1)
	cover, err := solver.Solve(ctx)
	require.NoError(t, err)
	require.Len(t, cover, 1)
	require.Equal(t, 11, totalCost(cover))
	require.Equal(t, byte('A'), cover[0].Label)
}

// K=1 takes the convex-hull shortcut over corner strawberries in a 3x3 field.
func TestSolve_K1CornerStrawberries(t *testing.T) {
	g := mustGrid(t, "@..", "...", "..@")
	ctx := solver.NewContext(g, 1)
	cover, err := solver.Solve(ctx)
	require.NoError(t, err)
	require.Len(t, cover, 1)
	require.Equal(t, 19, totalCost(cover))
	require.Equal(t, rect.Bounds{TopRow: 0, TopCol: 0, BottomRow: 2, BottomCol: 2}, cover[0].Bounds)
}

// K=2 lets two separated strawberries on one row join into a single hull.
func TestSolve_K2SeparatedStrawberriesJoin(t *testing.T) {
	g := mustGrid(t, "@...@")
	ctx := solver.NewContext(g, 2)
	cover, err := solver.Solve(ctx)
	require.NoError(t, err)
	require.Len(t, cover, 1)
	require.Equal(t, 15, totalCost(cover))
}

// K=1 forces the single 1x3 hull over two strawberries one cell apart
// (cost 10+3 = 13).
func TestSolve_K1ForcesJoin(t *testing.T) {
	g := mustGrid(t, "@.@")
	ctx := solver.NewContext(g, 1)
	cover, err := solver.Solve(ctx)
	require.NoError(t, err)
	require.Len(t, cover, 1)
	require.Equal(t, 13, totalCost(cover))
}

// K=3 over four corner strawberries keeps the cover disjoint and covering
// after any join local search applies.
func TestSolve_DisjointAfterJoin(t *testing.T) {
	g := mustGrid(t, "@.@", "...", "@.@")
	ctx := solver.NewContext(g, 3)
	cover, err := solver.Solve(ctx)
	require.NoError(t, err)

	for i := range cover {
		for j := i + 1; j < len(cover); j++ {
			require.False(t, cover[i].Intersects(cover[j]))
		}
	}
	for _, sb := range g.Strawberries() {
		found := false
		for _, r := range cover {
			if r.Contains(sb.Row, sb.Col) {
				found = true
			}
		}
		require.True(t, found)
	}
}

func TestSolve_LabelsDescendingByRatio(t *testing.T) {
	g := mustGrid(t, "@.@", "...", "@.@")
	ctx := solver.NewContext(g, 4)
	cover, err := solver.Solve(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cover)

	seen := make(map[byte]bool)
	for i, r := range cover {
		require.NotZero(t, r.Label)
		require.False(t, seen[r.Label], "duplicate label %c", r.Label)
		seen[r.Label] = true
		if i > 0 {
			require.GreaterOrEqual(t, cover[i-1].Ratio(), r.Ratio())
		}
	}
}

func TestContext_ResetDoesNotLeakBetweenPuzzles(t *testing.T) {
	g1 := mustGrid(t, "@")
	ctx := solver.NewContext(g1, 1)
	_, err := solver.Solve(ctx)
	require.NoError(t, err)

	g2 := mustGrid(t, "@.@", "...", "@.@")
	ctx.Reset(g2, 3)
	cover, err := solver.Solve(ctx)
	require.NoError(t, err)

	for _, sb := range g2.Strawberries() {
		found := false
		for _, r := range cover {
			if r.Contains(sb.Row, sb.Col) {
				found = true
			}
		}
		require.True(t, found)
	}
	// Nothing from g1's single-cell puzzle should appear: every cover
	// member's bounds must lie within g2's 3x3 extent.
	for _, r := range cover {
		require.GreaterOrEqual(t, r.TopRow, 0)
		require.Less(t, r.BottomRow, 3)
		require.GreaterOrEqual(t, r.TopCol, 0)
		require.Less(t, r.BottomCol, 3)
	}
}

func TestSolveAll_MultiPuzzleSummary(t *testing.T) {
	puzzles := []solver.Puzzle{
		{K: 1, Field: [][]byte{[]byte("@")}},
		{K: 2, Field: [][]byte{[]byte("@...@")}},
	}
	results, summary, err := solver.SolveAll(puzzles, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, 2, summary.Count)
	require.Equal(t, 11+15, summary.TotalCost)
}
