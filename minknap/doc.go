// Package minknap implements the expanding-core dynamic-programming
// solver: given a core.Instance, it grows a Pareto-pruned list of
// reachable (weight, profit) states outward from the break item in both
// directions, pruning with the Dembo bound at each step, until the lower
// and upper bounds meet or the core is exhausted. When the partial-
// solution codec's tracked-item budget runs out first, the best state
// found is folded into reduced_sol and the solver recurses on the
// remaining, now-smaller window. Solve wraps this engine with the full
// warm-start/surrogate/reduction pipeline (C8).
package minknap
