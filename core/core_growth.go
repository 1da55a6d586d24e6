// File: core_growth.go
// Role: sort_right/sort_left (C1's lazy core growth, invoked by the DP
// engine in minknap when a state needs to look past the current [s..t]),
// and the optional wide initial core (a Martello-style warm start
// #6).
package core

import "sort"

// SortRight pops the interval of int_right closest to t, grows the core
// rightward by keeping items whose Dembo-style forcing-IN bound still
// beats lb, and folds the rest into the dead space past t (which becomes
// fixed OUT once every int_right interval has been consumed). Grounded on
// instance.cpp's sort_right. Requires int_right to be non-empty.
func (ins *Instance) SortRight(lb Profit) {
	n := len(ins.intRight)
	in := ins.intRight[n-1]
	ins.intRight = ins.intRight[:n-1]

	breakProfit := ins.BreakProfit()
	breakCap := ins.BreakCapacity()
	bItem := ins.items[ins.b]
	eff := ins.Capacity()

	k := ins.t
	for j := in.Lo; j <= in.Hi; j++ {
		it := ins.items[j]
		ub := breakProfit + it.P + ((breakCap-it.W)*bItem.P)/bItem.W
		if (it.W <= eff && ub > lb) || (k == ins.t && j == in.Hi) {
			k++
			ins.items[k], ins.items[j] = ins.items[j], ins.items[k]
		}
	}

	sub := ins.items[ins.t+1 : k+1]
	sort.SliceStable(sub, func(i, jj int) bool {
		return efficiencyGreater(sub[i], sub[jj])
	})
	ins.t = k
	if len(ins.intRight) == 0 {
		ins.l = ins.t
	}
	ins.computeBreakItem()
}

// SortLeft is SortRight's mirror image: it pops the interval of int_left
// closest to s, grows the core leftward keeping items whose forcing-OUT
// bound still beats lb, and fixes each of the rest IN (added to
// reduced_sol) as soon as it is discarded; f moves up to s once every
// int_left interval has been consumed. Grounded on instance.cpp's
// sort_left. Requires int_left to be non-empty.
func (ins *Instance) SortLeft(lb Profit) {
	n := len(ins.intLeft)
	in := ins.intLeft[n-1]
	ins.intLeft = ins.intLeft[:n-1]

	breakProfit := ins.BreakProfit()
	breakCap := ins.BreakCapacity()
	bItem := ins.items[ins.b]
	eff := ins.Capacity()

	k := ins.s
	for j := in.Hi; j >= in.Lo; j-- {
		it := ins.items[j]
		ub := breakProfit - it.P + ((breakCap+it.W)*bItem.P)/bItem.W
		if (it.W <= eff && ub > lb) || (j == in.Lo && k == ins.s) {
			k--
			ins.items[k], ins.items[j] = ins.items[j], ins.items[k]
		} else {
			ins.fixIn(j)
		}
	}

	sub := ins.items[k:ins.s]
	sort.SliceStable(sub, func(i, jj int) bool {
		return efficiencyGreater(sub[i], sub[jj])
	})
	ins.s = k
	if len(ins.intLeft) == 0 {
		ins.f = ins.s
	}
	ins.computeBreakItem()
}

// InitialCore records an initial core of margin positions on each side of
// the break item, clamped to [f, l], in sInit/tInit (read back through
// FirstInitialCoreItem/LastInitialCoreItem), after Martello's
// init_combo_core (cited in instance.hpp, not itself part of the core
// sort/reduce contract). It moves no item and changes no cursor, so it
// never changes the result; no sort reads the recorded bounds.
// Controlled by minknap.Options.WideInitialCore; a no-op on an instance
// that has not been sorted (partially or fully) yet.
func (ins *Instance) InitialCore(margin int) {
	if ins.sort == sortNone {
		return
	}
	ins.sInit = ins.b - margin
	if ins.sInit < ins.f {
		ins.sInit = ins.f
	}
	ins.tInit = ins.b + margin
	if ins.tInit > ins.l {
		ins.tInit = ins.l
	}
}
