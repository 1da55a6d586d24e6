// Package reduce implements the two variable-fixing passes that shrink an
// Instance's active window before (and between) expanding-core DP runs:
// Reduce1, a single O(l-f) sweep using the Dantzig bound per candidate item,
// and Reduce2, a tighter O(n log n) pass over the fully sorted core that
// also tests items already inside the sorted region. Both take a lower
// bound lb and permanently fix any item whose best-case upper bound cannot
// beat it.
package reduce
