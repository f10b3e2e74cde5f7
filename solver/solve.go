package solver

import (
	"github.com/strawberryfields/greenhouse/generator"
	"github.com/strawberryfields/greenhouse/localsearch"
	"github.com/strawberryfields/greenhouse/matcher"
	"github.com/strawberryfields/greenhouse/rect"
)

// Solve runs the covering pipeline for ctx and returns the labeled,
// descending-ratio-sorted cover. When ctx.K <= 1 it takes the
// convex-hull shortcut instead of running the generate/match/local-search
// phases.
func Solve(ctx *Context) ([]*rect.Rectangle, error) {
	if ctx.K <= 1 {
		return label(convexHull(ctx)), nil
	}

	candidates := generator.Generate(ctx.Arena, ctx.Grid)
	cover, err := matcher.Match(ctx.Grid, candidates)
	if err != nil {
		return nil, &SolverError{Kind: Unsolvable, PuzzleIndex: -1, Err: err}
	}

	cover = localsearch.Run(ctx.Arena, ctx.Grid, cover, ctx.K, ctx.Grid.NumCols())
	return label(cover), nil
}

// convexHull builds the single bounding rectangle of every strawberry in
// ctx.Grid. An empty strawberry set yields an empty cover.
func convexHull(ctx *Context) []*rect.Rectangle {
	sb := ctx.Grid.Strawberries()
	if len(sb) == 0 {
		return nil
	}

	b := rect.Bounds{TopRow: sb[0].Row, TopCol: sb[0].Col, BottomRow: sb[0].Row, BottomCol: sb[0].Col}
	for _, c := range sb[1:] {
		if c.Row < b.TopRow {
			b.TopRow = c.Row
		}
		if c.Row > b.BottomRow {
			b.BottomRow = c.Row
		}
		if c.Col < b.TopCol {
			b.TopCol = c.Col
		}
		if c.Col > b.BottomCol {
			b.BottomCol = c.Col
		}
	}

	return []*rect.Rectangle{ctx.Arena.NewFromWeigher(ctx.Grid, b)}
}
