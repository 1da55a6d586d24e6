// File: fix.go
// Role: the reduced_sol bookkeeping shared by sort_left, reduce1 and
// reduce2 — fixing an item IN or OUT of the optimum permanently, tracked
// by original index so the f/l cursors can lag behind it (see types.go).
package core

// fixIn permanently marks the item currently at position pos as belonging
// to every optimum, folding its weight/profit into reduced_sol. Idempotent.
func (ins *Instance) fixIn(pos ItemPos) {
	j := ins.items[pos].J
	if ins.reducedIn[j] {
		return
	}
	ins.reducedIn[j] = true
	ins.fixedWeight += ins.items[pos].W
	ins.fixedProfit += ins.items[pos].P
}

// FixIn marks the item currently at position pos reduced_sol without
// moving it or touching f/l — used by the DP engine's partial-solution
// flush, which decides membership by original index across a range that no
// longer needs to stay contiguous once f/l are reset directly.
func (ins *Instance) FixIn(pos ItemPos) { ins.fixIn(pos) }

// IsFixedIn reports whether the item with original index j has been proven
// to belong to every optimum, regardless of whether the f cursor has
// caught up to its current position yet.
func (ins *Instance) IsFixedIn(j ItemPos) bool {
	return ins.reducedIn[j]
}

// ReducedSolWeight/ReducedSolProfit are FixedWeight/FixedProfit under the
// name the reduction literature uses for the same quantity.
func (ins *Instance) ReducedSolWeight() Weight { return ins.fixedWeight }
func (ins *Instance) ReducedSolProfit() Profit { return ins.fixedProfit }

// FixInFront marks the item at position pos reduced_sol and swaps it to
// the current front of the window, advancing f. Used by reduce1, which
// walks the window start-to-end in order so f never lags behind a swap.
func (ins *Instance) FixInFront(pos ItemPos) {
	ins.fixIn(pos)
	if pos != ins.f {
		ins.items[pos], ins.items[ins.f] = ins.items[ins.f], ins.items[pos]
	}
	ins.f++
}

// FixOutBack excludes the item at position pos by swapping it to the
// current back of the window and shrinking l. Used by reduce1's
// end-to-start scan over (b, l].
func (ins *Instance) FixOutBack(pos ItemPos) {
	if pos != ins.l {
		ins.items[pos], ins.items[ins.l] = ins.items[ins.l], ins.items[pos]
	}
	ins.l--
}

// RewriteWindow replaces the active window with three runs, in order:
// fixedIn (folded into reduced_sol and placed before the new f), unfixed
// (the new active window), and fixedOut (written past the new l, folded
// out of the window exactly like FixOutBack's targets). Used by reduce2's
// single-pass three-way partition.
func (ins *Instance) RewriteWindow(fixedIn, unfixed, fixedOut []Item) {
	pos := ins.f
	for _, it := range fixedIn {
		ins.items[pos] = it
		pos++
	}
	newF := pos
	for i := ins.f; i < newF; i++ {
		ins.fixIn(i)
	}

	for _, it := range unfixed {
		ins.items[pos] = it
		pos++
	}
	newL := pos - 1

	for _, it := range fixedOut {
		ins.items[pos] = it
		pos++
	}

	ins.f, ins.l = newF, newL
}

// RemoveBigItems/ComputeBreakItem/BuildPrefixSums are the exported faces
// of sort.go's internal routines, used by package reduce after a
// reduction pass changes the window or the capacity.
func (ins *Instance) RemoveBigItems()   { ins.removeBigItems() }
func (ins *Instance) ComputeBreakItem() { ins.computeBreakItem() }
func (ins *Instance) BuildPrefixSums()  { ins.buildPrefixSums() }

// Sort/SortPartially are the exported faces of sort.go's full and partial
// sort entry points, used by package surrogate (each trial multiplier
// needs its own re-sort) and package minknap (the initial sort before the
// DP starts).
func (ins *Instance) Sort()                   { ins.fullSort() }
func (ins *Instance) SortPartially(limit int) { ins.sortPartially(limit) }

// SetFirstItem/SetLastItem let the DP engine (minknap) advance the f/l
// cursors once it has independently confirmed every item in the skipped
// range is accounted for in reduced_sol — used when flushing a window of
// fully-decided partial-solution bits back into the instance .
func (ins *Instance) SetFirstItem(pos ItemPos) { ins.f = pos }
func (ins *Instance) SetLastItem(pos ItemPos)  { ins.l = pos }
