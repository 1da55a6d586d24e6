package greedy

import "errors"

// ErrNotSorted indicates Solve was called on an Instance that has not even
// had sort_partially run (no break item available to swap around).
var ErrNotSorted = errors.New("greedy: instance has no break item")

// ErrNotFullySorted indicates SolveNLogN was called on an Instance that is
// not fully sorted; it needs prefix sums over the whole core.
var ErrNotFullySorted = errors.New("greedy: instance is not fully sorted")
