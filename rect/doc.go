// Package rect defines the geometric core of the strawberry-fields solver:
// an immutable, arena-allocated Rectangle with a lazily materialized cell
// bitset ("span"), and the total ordering used to rank candidates by
// weight-to-cost ratio.
//
// What:
//
//   - Bounds is a plain inclusive axis-aligned box.
//   - Rectangle wraps Bounds with cached Weight/Cost/Ratio and a lazy Span.
//   - Span is a word-packed bitset over the grid's R*C cells.
//   - Arena owns the backing storage for every Rectangle created during one
//     solver run and is purged in one call between puzzles.
//
// Why:
//
//   - The slice classifier works on Spans, and Intersects/IsSubsetOf go
//     through Span as well, so every membership test in the pipeline uses
//     the same bit basis. A Span is always built from its Rectangle's
//     Bounds; local-search residuals are allocated only when they are
//     exact rectangles.
//   - Arena allocation keeps every Rectangle's address stable for the
//     lifetime of a run, which lets Shade and the penumbra map hold raw
//     *Rectangle pointers instead of indirected handles.
package rect
