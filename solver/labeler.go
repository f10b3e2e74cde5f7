package solver

import (
	"sort"

	"github.com/strawberryfields/greenhouse/rect"
)

// labelAlphabet is the 52-character label set; any cover member beyond
// it receives the overflow label '0'.
const labelAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// overflowLabel is assigned to any cover member past the 52nd.
const overflowLabel = '0'

// label sorts cover descending by weight-to-cost ratio (largest first)
// and assigns each member a distinct letter from labelAlphabet, in that
// order, falling back to overflowLabel past the 52nd member. It returns
// the sorted slice.
func label(cover []*rect.Rectangle) []*rect.Rectangle {
	sort.SliceStable(cover, func(i, j int) bool {
		return rect.Less(cover[j], cover[i]) // descending
	})
	for i, r := range cover {
		if i < len(labelAlphabet) {
			r.Label = labelAlphabet[i]
		} else {
			r.Label = overflowLabel
		}
	}
	return cover
}
