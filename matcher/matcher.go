package matcher

import (
	"github.com/strawberryfields/greenhouse/grid"
	"github.com/strawberryfields/greenhouse/rect"
)

// Match builds a disjoint cover of every strawberry in g from candidates
// (expected sorted ascending by weight-to-cost ratio, as generator.Generate
// produces). It repeatedly takes the highest-ratio remaining candidate
// whose span does not intersect what is already covered, until every
// strawberry cell is covered.
//
// Post: the returned cover's members are pairwise disjoint and their
// union contains every strawberry in g.
func Match(g *grid.Grid, candidates []*rect.Rectangle) ([]*rect.Rectangle, error) {
	totalCells := g.NumRows() * g.NumCols()
	covering := rect.NewSpan(totalCells)
	unmatched := rect.NewSpan(totalCells)
	for _, sb := range g.Strawberries() {
		unmatched.Set(sb.Row*g.NumCols() + sb.Col)
	}

	var cover []*rect.Rectangle
	next := len(candidates) - 1
	for !unmatched.IsZero() {
		var accepted *rect.Rectangle
		for next >= 0 {
			cand := candidates[next]
			next--
			if cand.Span().Intersects(covering) {
				continue
			}
			accepted = cand
			break
		}
		if accepted == nil {
			return nil, ErrExhausted
		}

		covering.OrInto(accepted.Span())
		cover = append(cover, accepted)
		unmatched.AndNotInto(covering)
	}

	return cover, nil
}
