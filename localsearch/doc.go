// Package localsearch implements phase 3 of the solver: repeatedly
// replacing two cover members with their rectangular join whenever
// doing so does not raise total cost, or, whatever the cost change,
// while the cover still has more than K members. Among
// all viable joins at each step, it applies the one with the most
// negative cost penalty, breaking ties toward the smaller envelope.
//
// The driver never produces a cover that is not pairwise disjoint: a
// join is only viable when every other cover member classifies as
// Void, Decreasing, or NonIncreasing against it (see package slice);
// any Increasing classification rules the join out entirely, because
// applying it would require splitting that member into two or more
// rectangles.
package localsearch
