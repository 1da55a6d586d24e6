package greedy

import "github.com/dpknap/minknap/core"

// Solve returns the best of three candidates: the break solution itself, a
// backward swap (add the break item, drop one break-prefix item it
// displaces), and a forward swap (add one post-break item that still fits
// after the break item is excluded). It picks whichever single swap gains
// the most profit, matching the reference greedy exactly. Requires at
// least a partial sort. Complexity: O(l-f).
func Solve(ins *core.Instance) (*core.Solution, error) {
	if ins.BreakItem() < 0 {
		return nil, ErrNotSorted
	}
	b := ins.BreakItem()
	if b > ins.LastItem() {
		return ins.BreakSolution(), nil
	}
	bItem := ins.Item(b)

	var gain core.Profit
	j := -1

	rb := ins.BreakCapacity() - bItem.W
	for k := ins.FirstItem(); k <= b; k++ {
		it := ins.Item(k)
		if rb+it.W >= 0 && bItem.P-it.P > gain {
			gain = bItem.P - it.P
			j = k
		}
	}

	rf := ins.BreakCapacity()
	for k := b + 1; k <= ins.LastItem(); k++ {
		it := ins.Item(k)
		if it.W <= rf && it.P > gain {
			gain = it.P
			j = k
		}
	}

	sol := ins.BreakSolution()
	if j == -1 {
		return sol, nil
	}
	if j <= b {
		jItem := ins.Item(j)
		sol.Set(bItem.J, true, bItem.W, bItem.P)
		sol.Set(jItem.J, false, jItem.W, jItem.P)
	} else {
		jItem := ins.Item(j)
		sol.Set(jItem.J, true, jItem.W, jItem.P)
	}
	return sol, nil
}

// SolveNLogN tries every item in the active window as a single-swap
// candidate (force it IN if it currently isn't, or OUT if it is) and uses
// ub_item's binary search to find the exact new break-prefix boundary each
// swap produces, scoring every candidate from prefix sums alone before
// materializing only the winner. Requires a full sort. Complexity:
// O(n log n).
func SolveNLogN(ins *core.Instance) (*core.Solution, error) {
	if ins.SortType() != 2 {
		return nil, ErrNotFullySorted
	}
	f, l, b := ins.FirstItem(), ins.LastItem(), ins.BreakItem()

	bestProfit := ins.BreakProfit()
	bestBB, bestK := b-1, -1

	for k := f; k <= l; k++ {
		it := ins.Item(k)
		in := k < b

		var cap core.Weight
		var delta core.Profit
		if in {
			cap = ins.Capacity() + it.W
			delta = -it.P
		} else {
			cap = ins.Capacity() - it.W
			delta = it.P
		}
		if cap < 0 {
			continue
		}

		bb, err := ins.UBItem(cap)
		if err != nil {
			return nil, err
		}
		profit := ins.ReducedSolProfit() + ins.PrefixProfit(bb-f+1) + delta
		if profit > bestProfit {
			bestProfit, bestBB, bestK = profit, bb, k
		}
	}

	sol := ins.ReducedSolution()
	for pos := f; pos <= bestBB; pos++ {
		it := ins.Item(pos)
		sol.Set(it.J, true, it.W, it.P)
	}
	if bestK != -1 {
		kItem := ins.Item(bestK)
		sol.Set(kItem.J, bestK >= b, kItem.W, kItem.P)
	}
	return sol, nil
}
