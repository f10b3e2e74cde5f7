// Package slice classifies a join-hull's intersection with a third
// cover rectangle into one of four kinds, and — when the intersection's
// complement is itself rectangular — recovers its residual bounds. This
// is the question the local-search driver (phase 3) must answer for
// every other cover member before it can decide whether applying a
// given join preserves disjointness and does not grow the cover.
package slice
