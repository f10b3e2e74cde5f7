// Package matcher implements phase 2 of the solver: a greedy disjoint
// cover built by repeatedly taking the highest weight-to-cost-ratio
// candidate that does not intersect what has already been covered,
// until every strawberry is covered.
package matcher
