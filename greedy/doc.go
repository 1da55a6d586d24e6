// Package greedy implements the warm-start lower-bound heuristics used to
// seed the expanding-core DP: the break solution itself, and two
// single-swap improvements over it (backward: drop one break-prefix item
// to make room for the break item; forward: add one post-break item that
// still fits). Solve tries both swaps and keeps whichever wins; SolveNLogN
// is the O(n log n) variant that scans the sorted core instead of doing a
// single linear pass either side of the break item.
package greedy
