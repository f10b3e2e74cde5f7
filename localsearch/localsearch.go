package localsearch

import (
	"github.com/strawberryfields/greenhouse/rect"
	"github.com/strawberryfields/greenhouse/shade"
)

// Run drives phase 3 to completion and returns the resulting cover.
//
// While the cover has at least two members, it builds a Shade for every
// unordered pair, keeps the minimum by shade.Less among those that
// remain viable (no Increasing slice against any other member), and
// applies it iff its penalty is non-positive or the cover still exceeds
// k. It halts as soon as no viable Shade improves on that rule, or the
// cover drops below two members.
func Run(arena *rect.Arena, weigher rect.Weigher, cover []*rect.Rectangle, k int, numCols int) []*rect.Rectangle {
	for len(cover) >= 2 {
		best := bestShade(arena, weigher, cover, numCols)
		if best == nil {
			return cover
		}
		if !(best.Penalty <= 0 || len(cover) > k) {
			return cover
		}
		cover = apply(cover, best)
	}
	return cover
}

// bestShade enumerates every unordered pair in cover, builds its Shade,
// and returns the minimum by shade.Less among the viable ones (nil if
// none is viable).
func bestShade(arena *rect.Arena, weigher rect.Weigher, cover []*rect.Rectangle, numCols int) *shade.Shade {
	var best *shade.Shade
	for i := 0; i < len(cover); i++ {
		for j := i + 1; j < len(cover); j++ {
			sh, ok := shade.Build(arena, weigher, cover, i, j, numCols)
			if !ok {
				continue
			}
			if best == nil || shade.Less(sh, best) {
				best = sh
			}
		}
	}
	return best
}

// apply replaces r1, r2, and every envelope member with the join,
// substituting any penumbra original in place with its residual.
func apply(cover []*rect.Rectangle, sh *shade.Shade) []*rect.Rectangle {
	removed := make(map[*rect.Rectangle]bool, 2+len(sh.Envelope))
	removed[sh.R1] = true
	removed[sh.R2] = true
	for _, e := range sh.Envelope {
		removed[e] = true
	}

	next := make([]*rect.Rectangle, 0, len(cover))
	for _, r := range cover {
		if removed[r] {
			continue
		}
		if residual, ok := sh.Penumbra[r]; ok {
			next = append(next, residual)
			continue
		}
		next = append(next, r)
	}
	return append(next, sh.Join)
}
