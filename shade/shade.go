package shade

import (
	"github.com/strawberryfields/greenhouse/rect"
	"github.com/strawberryfields/greenhouse/slice"
)

// Shade bundles a candidate join between r1 and r2 with everything the
// local-search driver needs to decide whether applying it keeps the
// cover disjoint and does not grow its cardinality.
type Shade struct {
	R1, R2 *rect.Rectangle
	Join   *rect.Rectangle

	// Envelope holds every other cover member wholly absorbed by Join.
	Envelope []*rect.Rectangle

	// Penumbra maps an original cover member bisected by Join to its
	// shrunk rectangular residual.
	Penumbra map[*rect.Rectangle]*rect.Rectangle

	// Penalty is the net cost change of replacing {r1, r2, Envelope,
	// the Penumbra originals} with {Join, the Penumbra residuals}.
	// Negative means the join is a strict cost improvement.
	Penalty int
}

// Build evaluates the join of cover[i] and cover[j] against every other
// member of cover. It returns (shade, true) when the join is viable —
// every other member classifies as Void, Decreasing, or NonIncreasing —
// and (nil, false) as soon as any member classifies Increasing, which
// would force the cover to grow.
//
// weigher supplies strawberry counts for the join and for any residual
// rectangles allocated along the way; arena owns their storage.
func Build(arena *rect.Arena, weigher rect.Weigher, cover []*rect.Rectangle, i, j int, numCols int) (*Shade, bool) {
	r1, r2 := cover[i], cover[j]
	joinBounds := r1.Bounds.Union(r2.Bounds)
	join := arena.NewFromWeigher(weigher, joinBounds)

	var envelope []*rect.Rectangle
	penumbra := make(map[*rect.Rectangle]*rect.Rectangle)

	for k, r3 := range cover {
		if k == i || k == j {
			continue
		}
		s := slice.Classify(join, r3, numCols)
		switch s.Kind {
		case slice.Void:
			continue
		case slice.Decreasing:
			envelope = append(envelope, r3)
		case slice.NonIncreasing:
			residual := arena.NewFromWeigher(weigher, s.Residual)
			penumbra[r3] = residual
		case slice.Increasing:
			return nil, false
		}
	}

	saved := r1.Cost() + r2.Cost()
	for _, e := range envelope {
		saved += e.Cost()
	}
	for orig, residual := range penumbra {
		saved += orig.Area() - residual.Area()
	}

	sh := &Shade{
		R1:       r1,
		R2:       r2,
		Join:     join,
		Envelope: envelope,
		Penumbra: penumbra,
		Penalty:  join.Cost() - saved,
	}
	return sh, true
}

// Less orders Shades ascending by Penalty, tie-broken by ascending
// envelope size (smaller envelopes preferred because they leave more
// options open downstream).
func Less(a, b *Shade) bool {
	if a.Penalty != b.Penalty {
		return a.Penalty < b.Penalty
	}
	return len(a.Envelope) < len(b.Envelope)
}
