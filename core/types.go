// Package core: Item, Instance, and the sentinel errors shared by every
// solver package built on top of it (reduce, surrogate, minknap).
//
// This file declares the data model and nothing else;
// mutating operations live in sort.go, core_growth.go, bounds.go, fix.go,
// clone.go and partsol.go.
package core

import (
	"errors"
	"math/rand"
)

// Sentinel errors for Instance construction and validation.
var (
	// ErrNegativeWeight indicates an item (or the capacity) carries a
	// negative weight.
	ErrNegativeWeight = errors.New("core: negative weight")

	// ErrNegativeProfit indicates an item carries a negative profit.
	ErrNegativeProfit = errors.New("core: negative profit")

	// ErrDuplicateItemID indicates add_item was called with an original
	// index already present (programmatic construction only).
	ErrDuplicateItemID = errors.New("core: duplicate item id")

	// ErrItemIndexOutOfRange indicates a requested position lies outside
	// [0, total item count).
	ErrItemIndexOutOfRange = errors.New("core: item index out of range")

	// ErrNotSorted indicates an operation that requires a partial or full
	// sort (ub_dantzig, reduce2, prefix-sum lookups) was called on an
	// unsorted Instance.
	ErrNotSorted = errors.New("core: instance is not sorted")

	// ErrNotFullySorted indicates an operation that requires a *full* sort
	// (ub_dantzig, reduce2) was called on a merely partially sorted Instance.
	ErrNotFullySorted = errors.New("core: instance is not fully sorted")

	// ErrInstanceInconsistent names a violated window/core invariant. No
	// function in this repository returns it; no consistency check is
	// implemented.
	ErrInstanceInconsistent = errors.New("core: instance invariant violated")
)

// Profit, Weight, and ItemPos give the solver's integer arithmetic a name.
// All three are 64-bit signed: N*max(p) and C*max(p)/min(w) must fit in an
// int64, which callers must ensure.
type (
	Profit  = int64
	Weight  = int64
	ItemPos = int
)

// Item is one candidate for the knapsack. J is the item's stable original
// index (0 <= J < N); it never changes even though Instance permutes the
// backing slice during solving. W and P are its weight and profit.
type Item struct {
	J ItemPos
	W Weight
	P Profit
}

// efficiencyGreater reports whether a has strictly greater efficiency
// (p/w) than b, compared by cross-multiplication to avoid floating point:
// p_a/w_a > p_b/w_b  <=>  p_a*w_b > p_b*w_a  (both weights are positive).
func efficiencyGreater(a, b Item) bool {
	return a.P*b.W > b.P*a.W
}

// efficiencyLess is the strict converse of efficiencyGreater. Nothing in
// the package calls it; the sorts compare with efficiencyGreater.
func efficiencyLess(a, b Item) bool {
	return a.P*b.W < b.P*a.W
}

// sortType enumerates how much of the core has been efficiency-sorted.
type sortType int

const (
	sortNone    sortType = iota // items[f..l] not yet touched by sort/sort_partially
	sortPartial                 // sort_partially has run; break item is final, core may be narrow
	sortFull                    // sort has run; prefix sums are valid
)

// Interval is a closed range [Lo, Hi] of positions in Instance.items that
// have not yet been folded into the sorted core. Items in intLeft dominate
// (by efficiency) item(s); items in intRight are dominated by item(t).
type Interval struct {
	Lo, Hi ItemPos
}

// PartSol is the partial-solution codec's bit window (C4): bit i records
// whether the item tracked i steps before the newest one (bit 0 = newest)
// is currently IN the DP state's solution. Capped at 64 tracked items; see
// partsol.go.
type PartSol = uint64

// Instance owns one permuted item vector and the index bounds that carve it
// into fixed-IN / pending-left / sorted-core / pending-right / fixed-OUT
// regions. It is built once, optionally Cloned for a
// surrogate trial solve, and mutated in place by sort/reduce/DP.
type Instance struct {
	items        []Item
	capacityOrig Weight

	// origW/origP are immutable copies of each item's weight/profit, keyed
	// by original index J, so a Solution can be built from original
	// indices without a linear scan over the (constantly permuted) items
	// slice.
	origW []Weight
	origP []Profit

	// fixedWeight/fixedProfit is the running total of reduced_sol: items
	// proven to belong to every optimum. reduced_sol is tracked separately
	// from the f boundary (via reducedIn, keyed by original index J) because
	// sort_left/reduce1/reduce2 prove an item belongs to reduced_sol before
	// the f cursor physically catches up to its position — see fix.go.
	fixedWeight Weight
	fixedProfit Profit
	reducedIn   []bool

	// f, l bound the active window: items[0:f) are fixed IN, items(l:N)
	// are fixed OUT. 0 <= f <= l+1 <= N.
	f, l ItemPos

	// s, t bound the sorted core within [f, l]; items[s:t+1] are in
	// non-increasing efficiency order. b is the break item, s <= b <= t+1.
	s, t, b ItemPos

	sort sortType

	// intLeft holds unsorted intervals below s (high-efficiency
	// candidates); intRight holds unsorted intervals above t
	// (low-efficiency candidates). Both are consumed by sortLeft/sortRight.
	intLeft, intRight []Interval

	// isumW/isumP are prefix sums over items[f:f+k] for k in [0, l-f+1],
	// valid only when sort == sortFull. isumW[k] = sum of w over the
	// first k items of the current window.
	isumW []Weight
	isumP []Profit

	// sInit/tInit optionally remember an improved initial core (Martello's
	// init_combo_core). Unused unless InitialCore was requested; -1 when
	// not computed.
	sInit, tInit ItemPos

	// seed/pivotRNG drive sort_partially's pivot choice; see rng.go.
	seed     int64
	pivotRNG *rand.Rand

	// touched lists the positions of the items tracked by the
	// partial-solution codec, oldest first; see partsol.go.
	touched []ItemPos
}

// NewInstance allocates an empty Instance with capacity c and room for n
// items. Callers add items with AddItem/AddItems before solving.
func NewInstance(n int, c Weight) *Instance {
	ins := &Instance{
		items:        make([]Item, 0, n),
		capacityOrig: c,
		reducedIn:    make([]bool, 0, n),
		sInit:        -1,
		tInit:        -1,
	}
	return ins
}
