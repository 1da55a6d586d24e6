package reduce

import "github.com/dpknap/minknap/core"

// Reduce1 runs a single linear sweep over the active window using the
// Dantzig bound at the current break item: every item below the break item
// is tested for forced inclusion (excluding it and refilling with the
// break item's ratio cannot beat lb), every item above is tested for
// forced exclusion (including it and refilling likewise cannot beat lb).
// Fixed items are folded into reduced_sol in place. Returns true if, in the
// process, the remaining capacity went negative — no solution then beats
// lb, so the lower-bound solution is optimal and the caller should stop.
// Requires at least sort_partially to have run. Complexity: O(l-f).
func Reduce1(ins *core.Instance, lb core.Profit) (bool, error) {
	if ins.BreakItem() < 0 {
		return false, ErrNotPartiallySorted
	}
	b := ins.BreakItem()
	brk := ins.Item(b)

	// b stays fixed for the whole sweep: neither loop ever touches
	// position b itself, only positions strictly below or above it.
	for j := ins.FirstItem(); j < b; j++ {
		it := ins.Item(j)
		ub := ins.BreakProfit() - it.P +
			((ins.BreakCapacity()+it.W)*brk.P)/brk.W
		if ub <= lb {
			ins.FixInFront(j)
			if ins.Capacity() < 0 {
				return true, nil
			}
		}
	}

	for j := ins.LastItem(); j > b; j-- {
		it := ins.Item(j)
		ub := ins.BreakProfit() + it.P +
			((ins.BreakCapacity()-it.W)*brk.P)/brk.W
		if ub <= lb {
			ins.FixOutBack(j)
		}
	}

	ins.RemoveBigItems()
	ins.ComputeBreakItem()
	return false, nil
}

// Reduce2 runs the tighter variable-fixing pass over a fully sorted core:
// for every item up to and including the break item it asks whether
// excluding the item still lets the rest of the window reach lb (using a
// two-candidate Dantzig-style bound anchored at ub_item's split point
// instead of reduce1's single break-item ratio); for every item from the
// break item onward it asks the symmetric question about including it.
// Requires a full sort. Complexity: O(n log n), dominated by the ub_item
// binary search per candidate.
func Reduce2(ins *core.Instance, lb core.Profit) (bool, error) {
	if ins.SortType() != 2 {
		return false, ErrNotFullySorted
	}

	f, l, b := ins.FirstItem(), ins.LastItem(), ins.BreakItem()
	n := l - f + 1

	var fixedIn, fixedOut, unfixed []core.Item
	var extraFixedWeight core.Weight
	bLastFixedIn := false

	for j := f; j <= b; j++ {
		it := ins.Item(j)
		ub := reduce2BoundExcluding(ins, f, n, it)
		if ub <= lb {
			fixedIn = append(fixedIn, it)
			extraFixedWeight += it.W
			if ins.Capacity()-extraFixedWeight < 0 {
				return true, nil
			}
			if j == b {
				bLastFixedIn = true
			}
		} else if j != b {
			unfixed = append(unfixed, it)
		}
	}

	for j := b; j <= l; j++ {
		if j == b && bLastFixedIn {
			continue
		}
		it := ins.Item(j)
		ub := reduce2BoundIncluding(ins, f, n, it)
		if ub <= lb {
			fixedOut = append(fixedOut, it)
		} else {
			unfixed = append(unfixed, it)
		}
	}

	ins.RewriteWindow(fixedIn, unfixed, fixedOut)
	ins.RemoveBigItems()
	ins.ComputeBreakItem()
	ins.BuildPrefixSums()
	return false, nil
}

// reduce2BoundExcluding bounds the best achievable profit if it is left out
// of the window, given the extra capacity its weight frees up.
func reduce2BoundExcluding(ins *core.Instance, f, n int, it core.Item) core.Profit {
	cap := ins.Capacity() + it.W
	return reduce2Bound(ins, f, n, cap) - it.P
}

// reduce2BoundIncluding bounds the best achievable profit if it is forced
// into the window, given the capacity its weight consumes.
func reduce2BoundIncluding(ins *core.Instance, f, n int, it core.Item) core.Profit {
	cap := ins.Capacity() - it.W
	return reduce2Bound(ins, f, n, cap) + it.P
}

// reduce2Bound is the shared two-candidate Dantzig bound: find the split
// point bb via UBItem, then take the better of filling from bb's low side
// (floor) or bb's high side (ceiling, one unit short of a full item).
func reduce2Bound(ins *core.Instance, f, n int, cap core.Weight) core.Profit {
	bb, _ := ins.UBItem(cap)
	k := bb - f

	switch {
	case k == n-1:
		// Everything in the window fits under cap.
		return ins.ReducedSolProfit() + ins.PrefixProfit(n)
	case k < 0 || f+k-1 < 0:
		// Nothing in the window fits, or the low-side neighbour item would
		// fall outside the window entirely; fall back to a single-item
		// ratio bound anchored at the window's best-efficiency item, in
		// place of the original's absolute-position-0 special case.
		best := ins.Item(ins.FirstSortedItem())
		return ins.ReducedSolProfit() + (cap*best.P)/best.W
	default:
		hi := ins.Item(f + k + 1)
		lo := ins.Item(f + k - 1)
		ub1 := ins.ReducedSolProfit() + ins.PrefixProfit(k) +
			((cap-ins.PrefixWeight(k))*hi.P)/hi.W
		ub2 := ins.ReducedSolProfit() + ins.PrefixProfit(k+1) +
			((cap-ins.PrefixWeight(k+1))*lo.P+1)/lo.W - 1
		if ub1 > ub2 {
			return ub1
		}
		return ub2
	}
}
