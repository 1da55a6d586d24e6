// File: sort.go
// Role: C1's two sort entry points (full and partial), the break-item
// recompute they both end in, and remove_big_items.
package core

import "sort"

// leftRegionWeight sums the weights of items[f:s) — the pending int_left
// region, which by construction always fits (it was pushed there by
// sortPartially exactly because it fit). Complexity: O(s-f).
func (ins *Instance) leftRegionWeight() Weight {
	var w Weight
	for j := ins.f; j < ins.s; j++ {
		w += ins.items[j].W
	}
	return w
}

// computeBreakItem walks the sorted core [s..t] and sets b to the smallest
// index whose item does not fit in the capacity remaining after the fixed
// region and the int_left region, or t+1 if every core item fits. This is
// the chosen resolution of the "where does the scan start" ambiguity:
// uniformly from the reduced/effective capacity, never from the bare input
// capacity.
func (ins *Instance) computeBreakItem() {
	remaining := ins.Capacity() - ins.leftRegionWeight()
	b := ins.s
	for b <= ins.t {
		w := ins.items[b].W
		if w > remaining {
			break
		}
		remaining -= w
		b++
	}
	ins.b = b
}

// fullSort performs a full efficiency sort of items[f..l], sets sort_type FULL,
// recomputes the break item, and builds prefix sums. Complexity:
// O(n log n).
func (ins *Instance) fullSort() {
	sub := ins.items[ins.f : ins.l+1]
	sort.SliceStable(sub, func(i, j int) bool {
		return efficiencyGreater(sub[i], sub[j])
	})

	ins.s, ins.t = ins.f, ins.l
	ins.intLeft, ins.intRight = nil, nil
	ins.sort = sortFull
	ins.buildPrefixSums()
	ins.computeBreakItem()
}

// buildPrefixSums fills isumW/isumP over the current window [f..l]; valid
// only while sort_type == FULL. isumW[k]/isumP[k] is the sum over the first
// k items of the window, so isumW[0] == 0 and isumW[l-f+1] is the window
// total.
func (ins *Instance) buildPrefixSums() {
	n := ins.l - ins.f + 1
	ins.isumW = make([]Weight, n+1)
	ins.isumP = make([]Profit, n+1)
	for k := 0; k < n; k++ {
		ins.isumW[k+1] = ins.isumW[k] + ins.items[ins.f+k].W
		ins.isumP[k+1] = ins.isumP[k] + ins.items[ins.f+k].P
	}
}

// sortPartially runs the pivot-partition quicksort variant: it
// narrows toward the break item, pushing the untouched side of each
// partition onto int_left/int_right, until the remaining window shrinks to
// at most limit items, then fully sorts that small window in place. The
// break item it lands on is provably identical to fullSort()'s break item,
// since every item pushed to int_left dominates item(s) by efficiency and
// every item pushed to int_right is dominated by item(t). Complexity:
// expected O(n), worst case O(n^2) (same as standard quickselect).
func (ins *Instance) sortPartially(limit int) {
	ins.intLeft, ins.intRight = nil, nil
	f, l := ins.f, ins.l
	c := ins.Capacity()

	for l-f+1 > limit {
		pivot := f + 1 + ins.rng().Intn(l-f)
		j := ins.partition(f, l, pivot)

		var W Weight
		for _, it := range ins.items[j+1 : l+1] {
			W += it.W
		}

		switch {
		case W+ins.items[j].W <= c:
			// Break item lies strictly to the right of j: everything up to
			// and including j fits, push it to int_left and move f past it.
			ins.intLeft = append(ins.intLeft, Interval{Lo: f, Hi: j})
			c -= W + ins.items[j].W
			f = j + 1
		case W > c:
			// Break item lies at or left of j: everything above j is fixed
			// OUT of the break solution, push it to int_right and shrink l.
			ins.intRight = append(ins.intRight, Interval{Lo: j, Hi: l})
			l = j - 1
		default:
			// j is the break item itself: both remaining sides are pushed
			// and the narrowing stops.
			if j > f {
				ins.intLeft = append(ins.intLeft, Interval{Lo: f, Hi: j - 1})
			}
			if j < l {
				ins.intRight = append(ins.intRight, Interval{Lo: j + 1, Hi: l})
			}
			f, l = j, j
		}
	}

	sub := ins.items[f : l+1]
	sort.SliceStable(sub, func(i, k int) bool {
		return efficiencyGreater(sub[i], sub[k])
	})
	ins.s, ins.t = f, l
	ins.sort = sortPartial
	ins.computeBreakItem()
}

// partition reorders items[lo..hi] around the item initially at pivotPos
// (Lomuto scheme, descending efficiency) and returns the pivot's final
// position j: everything in [lo, j) has efficiency >= pivot's, everything
// in (j, hi] has efficiency <= pivot's.
func (ins *Instance) partition(lo, hi, pivotPos ItemPos) ItemPos {
	ins.items[pivotPos], ins.items[hi] = ins.items[hi], ins.items[pivotPos]
	pivot := ins.items[hi]

	j := lo
	for i := lo; i < hi; i++ {
		if efficiencyGreater(ins.items[i], pivot) {
			ins.items[i], ins.items[j] = ins.items[j], ins.items[i]
			j++
		}
	}
	ins.items[j], ins.items[hi] = ins.items[hi], ins.items[j]
	return j
}

// removeBigItems moves every item whose weight exceeds the effective
// capacity past l, matching invariant 7. It only inspects [f..l], so call
// it after fixing the window, not before. Complexity: O(l-f).
func (ins *Instance) removeBigItems() {
	limit := ins.Capacity()
	l := ins.l
	j := ins.f
	for j <= l {
		if ins.items[j].W > limit {
			ins.items[j], ins.items[l] = ins.items[l], ins.items[j]
			l--
			continue
		}
		j++
	}
	ins.l = l
}
