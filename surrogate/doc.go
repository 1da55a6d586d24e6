// Package surrogate computes the surrogate-relaxation upper bound: given a
// lower bound, it searches for a non-negative multiplier λ and a target
// cardinality k such that shifting every item's weight by λ and the
// capacity by λ·k yields a relaxed knapsack whose Dantzig bound is as
// tight as possible while still dominating the true optimum. The search
// couples a subgradient step on λ (driven by whether the relaxed break
// solution's cardinality overshoots or undershoots k) with a bisection
// on k itself, capped at a fixed iteration budget.
package surrogate
