// Package greenhouse computes minimum-cost disjoint rectangular coverings
// of strawberry fields.
//
// Given a grid of empty and strawberry cells and a bound K on the number
// of axis-aligned rectangles ("greenhouses") permitted, it finds at most K
// pairwise-disjoint rectangles covering every strawberry, approximately
// minimizing total cost (10 + area per rectangle), via a three-phase
// pipeline: candidate generation with chain-dominance pruning, greedy
// disjoint selection, and local search over pairwise joins.
//
// Packages, leaves first:
//
//	rect        - immutable rectangle records, lazy bitset spans, the arena allocator
//	grid        - the field matrix and O(1) weight queries
//	generator   - phase 1: pruned candidate generation
//	matcher     - phase 2: greedy disjoint cover
//	slice       - intersection classification used by local search
//	shade       - a candidate join and its cost-penalty
//	localsearch - phase 3: iterative join improvement
//	solver      - orchestration, the K=1 shortcut, and labeling
//	puzzleio    - the input/output text codec
//	cmd/strawberryfields - the CLI front end
package greenhouse
