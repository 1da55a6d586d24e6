// File: api.go
// Role: thin, deterministic public facade — constructors and read-only
// getters. No algorithms live here; sort.go, bounds.go, core_growth.go and
// fix.go hold the mutating logic that the invariants in types.go describe.
package core

import "sort"

// AddItem appends one item with weight w and profit p, assigning it the
// next original index. Returns ErrNegativeWeight/ErrNegativeProfit if w < 0
// or p < 0. Complexity: O(1) amortized.
func (ins *Instance) AddItem(w Weight, p Profit) error {
	if w < 0 {
		return ErrNegativeWeight
	}
	if p < 0 {
		return ErrNegativeProfit
	}
	ins.items = append(ins.items, Item{J: len(ins.items), W: w, P: p})
	ins.reducedIn = append(ins.reducedIn, false)
	ins.origW = append(ins.origW, w)
	ins.origP = append(ins.origP, p)
	ins.l = len(ins.items) - 1
	ins.sort = sortNone

	return nil
}

// AddItems appends a batch of (weight, profit) pairs via AddItem, in order.
// Complexity: O(len(wp)).
func (ins *Instance) AddItems(wp [][2]int64) error {
	for _, it := range wp {
		if err := ins.AddItem(it[0], it[1]); err != nil {
			return err
		}
	}

	return nil
}

// SetCapacity overrides the instance's capacity. Only meaningful before
// solving starts; callers must not call this mid-solve.
func (ins *Instance) SetCapacity(c Weight) {
	ins.capacityOrig = c
}

// TotalItemNumber returns the number of items ever added, including those
// already fixed IN or OUT by reduction. Complexity: O(1).
func (ins *Instance) TotalItemNumber() int {
	return len(ins.items)
}

// ItemNumber returns the number of items still active in the window
// [FirstItem, LastItem]. Complexity: O(1).
func (ins *Instance) ItemNumber() int {
	if ins.l < ins.f {
		return 0
	}

	return ins.l - ins.f + 1
}

// TotalCapacity returns the original input capacity C. Complexity: O(1).
func (ins *Instance) TotalCapacity() Weight {
	return ins.capacityOrig
}

// Capacity returns the effective capacity remaining after items fixed IN
// by reduction have had their weight deducted: C minus reduced_sol's
// weight (which can include items not yet physically below f).
// Complexity: O(1).
func (ins *Instance) Capacity() Weight {
	return ins.capacityOrig - ins.fixedWeight
}

// Item returns the item currently at position pos in the permuted vector.
// pos is a *position*, not the stable original index; use Item(pos).J to
// recover the original index. Complexity: O(1).
func (ins *Instance) Item(pos ItemPos) Item {
	return ins.items[pos]
}

// FirstItem/LastItem return the active window bounds f and l.
func (ins *Instance) FirstItem() ItemPos { return ins.f }
func (ins *Instance) LastItem() ItemPos  { return ins.l }

// FirstSortedItem/LastSortedItem return the sorted-core bounds s and t.
func (ins *Instance) FirstSortedItem() ItemPos { return ins.s }
func (ins *Instance) LastSortedItem() ItemPos  { return ins.t }

// BreakItem returns the current break item b, or -1 if the instance has
// not been sorted (sort_type 0). Complexity: O(1).
func (ins *Instance) BreakItem() ItemPos {
	if ins.sort == sortNone {
		return -1
	}

	return ins.b
}

// SortType reports 0 (unsorted), 1 (partially sorted), or 2 (fully sorted).
func (ins *Instance) SortType() int {
	return int(ins.sort)
}

// IntLeftSize/IntRightSize report how many unsorted intervals remain on
// each side of the sorted core.
func (ins *Instance) IntLeftSize() int  { return len(ins.intLeft) }
func (ins *Instance) IntRightSize() int { return len(ins.intRight) }

// FixedWeight/FixedProfit return reduced_sol's running weight and profit
// totals (see fix.go — this can include items not yet physically below f).
func (ins *Instance) FixedWeight() Weight { return ins.fixedWeight }
func (ins *Instance) FixedProfit() Profit { return ins.fixedProfit }

// FirstInitialCoreItem/LastInitialCoreItem expose the optional improved
// initial core computed by InitialCore. Both are -1 until InitialCore has
// been called.
func (ins *Instance) FirstInitialCoreItem() ItemPos { return ins.sInit }
func (ins *Instance) LastInitialCoreItem() ItemPos  { return ins.tInit }

// MaxEfficiencyItem returns the position, within [f, l], of the item with
// the greatest p/w ratio. No solver package calls it. Complexity: O(n).
func (ins *Instance) MaxEfficiencyItem() ItemPos {
	best := ins.f
	for j := ins.f + 1; j <= ins.l; j++ {
		if efficiencyGreater(ins.items[j], ins.items[best]) {
			best = j
		}
	}

	return best
}

// sortedItemIndices returns position indices sorted by the given less
// function, restricted to [lo, hi]. Nothing in the package calls it;
// sort.go sorts items in place.
func (ins *Instance) sortedItemIndices(lo, hi ItemPos, less func(a, b Item) bool) []ItemPos {
	idx := make([]ItemPos, 0, hi-lo+1)
	for j := lo; j <= hi; j++ {
		idx = append(idx, j)
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return less(ins.items[idx[i]], ins.items[idx[j]])
	})

	return idx
}
