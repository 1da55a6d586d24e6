// File: solve.go
// Role: the solver orchestrator (C8) and the recursive expanding-core
// driver (C7's "flush and re-enter" tail) that sits underneath it.
package minknap

import (
	"github.com/dpknap/minknap/core"
	"github.com/dpknap/minknap/greedy"
	"github.com/dpknap/minknap/reduce"
	"github.com/dpknap/minknap/surrogate"
)

// Solve runs the full pipeline: partial sort, warm-start lower bound,
// surrogate and Dantzig upper bounds, optional reduction, then the
// expanding-core DP. Returns the selected items and whether optimality was
// proven (false only when opts.ShouldStop cut the search short).
func Solve(ins *core.Instance, opts Options) (Result, error) {
	if opts.WideInitialCore {
		ins.SortPartially(core.PartSolCapacity)
		ins.InitialCore(opts.InitialCoreMargin)
	}
	ins.SortPartially(core.PartSolCapacity)

	if ins.ItemNumber() == 0 || ins.Capacity() == 0 {
		return Result{Solution: ins.ReducedSolution(), ProvenOptimal: true}, nil
	}
	if ins.BreakItem() > ins.LastItem() {
		return Result{Solution: ins.BreakSolution(), ProvenOptimal: true}, nil
	}

	lbSol, err := warmStart(ins, opts.WarmStart)
	if err != nil {
		return Result{}, err
	}
	lb := lbSol.Profit()

	if ins.ItemNumber() == 1 {
		return Result{Solution: lbSol, ProvenOptimal: true}, nil
	}

	var ub core.Profit
	haveUB := false
	if opts.Surrogate {
		res, err := surrogate.Search(ins, lb)
		if err == nil {
			ub, haveUB = res.UB, true
		}
	}

	// reduce2 needs a full sort regardless of which bound the caller asked
	// for; a trivial bound otherwise lets the solver skip it.
	if opts.UpperBound != UpperBoundTrivial || opts.Reduction == Reduce2Level {
		if ins.SortType() != 2 {
			ins.Sort()
		}
	}

	var boundUB core.Profit
	if opts.UpperBound == UpperBoundTrivial {
		boundUB = trivialUB(ins)
	} else {
		var err error
		boundUB, err = ins.UBDantzig()
		if err != nil {
			return Result{}, err
		}
	}
	if !haveUB || boundUB < ub {
		ub = boundUB
	}

	if lb == ub {
		return Result{Solution: lbSol, ProvenOptimal: true}, nil
	}

	switch opts.Reduction {
	case Reduce1Level:
		trivial, err := reduce.Reduce1(ins, lb)
		if err != nil {
			return Result{}, err
		}
		if trivial {
			return Result{Solution: lbSol, ProvenOptimal: true}, nil
		}
	case Reduce2Level:
		trivial, err := reduce.Reduce2(ins, lb)
		if err != nil {
			return Result{}, err
		}
		if trivial {
			return Result{Solution: lbSol, ProvenOptimal: true}, nil
		}
	}

	sol, optimal, err := solveDP(ins, lb, ub, lbSol, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Solution: sol, ProvenOptimal: optimal}, nil
}

// trivialUB bounds the optimum without needing a full sort or the break
// item's fractional efficiency term: the break solution plus the whole
// (uncapacitated) profit of the break item and everything after it. Looser
// than UBDantzig, but valid from nothing more than a partial sort.
func trivialUB(ins *core.Instance) core.Profit {
	ub := ins.BreakProfit()
	for pos := ins.BreakItem(); pos <= ins.LastItem(); pos++ {
		ub += ins.Item(pos).P
	}
	return ub
}

// warmStart dispatches to the chosen lower-bound heuristic. Greedy and
// greedynlogn both need at least a partial sort already in place;
// greedynlogn needs a full one, which it triggers itself.
func warmStart(ins *core.Instance, kind WarmStartKind) (*core.Solution, error) {
	switch kind {
	case WarmStartGreedy:
		return greedy.Solve(ins)
	case WarmStartGreedyNLogN:
		if ins.SortType() != 2 {
			ins.Sort()
		}
		return greedy.SolveNLogN(ins)
	default:
		return ins.BreakSolution(), nil
	}
}

// solveDP runs one expanding-core pass starting from the break solution,
// then — if the partial-solution codec's tracked-item budget is exhausted
// before the window is fully explored — folds the best state's decoded
// bits into reduced_sol, shrinks the active window to what remains
// undecided, and recurses. Base case: the window holds zero items or zero
// capacity, in which case reduced_sol alone (compared against the warm
// start) is the answer.
func solveDP(ins *core.Instance, lb, ub core.Profit, lbSol *core.Solution, opts Options) (*core.Solution, bool, error) {
	if ins.ItemNumber() == 0 || ins.Capacity() == 0 {
		cand := ins.ReducedSolution()
		if cand.Profit() > lbSol.Profit() {
			return cand, true, nil
		}
		return lbSol, true, nil
	}
	if ins.ItemNumber() == 1 {
		cand := ins.ReducedSolution()
		it := ins.Item(ins.FirstItem())
		if it.W <= ins.Capacity() {
			cand.Set(it.J, true, it.W, it.P)
		}
		if cand.Profit() > lbSol.Profit() {
			return cand, true, nil
		}
		return lbSol, true, nil
	}

	bSol := ins.BreakSolution()
	e := &engine{
		ins:  ins,
		cap:  ins.TotalCapacity(),
		lb:   lb,
		ub:   ub,
		list: []state{{w: bSol.Weight(), p: bSol.Profit(), bits: 0}},
	}
	e.s = ins.BreakItem() - 1
	e.t = ins.BreakItem()
	e.best = e.list[0]

	for len(e.list) > 0 {
		if opts.ShouldStop != nil && opts.ShouldStop() {
			return e.bestSolution(), false, nil
		}

		if ins.IntRightSize() > 0 && e.t+1 > ins.LastSortedItem() {
			ins.SortRight(e.lb)
		}
		if e.t <= ins.LastSortedItem() {
			e.addItem()
			e.t++
		}
		if e.lb == e.ub {
			break
		}

		if ins.IntLeftSize() > 0 && e.s-1 < ins.FirstSortedItem() {
			ins.SortLeft(e.lb)
		}
		if e.s >= ins.FirstSortedItem() {
			e.removeItem()
			e.s--
		}
		if e.lb == e.ub {
			break
		}

		if e.s < ins.FirstItem() && e.t > ins.LastItem() {
			break
		}
		if ins.TouchedCount() >= core.PartSolCapacity {
			break
		}
	}

	if e.best.p <= lbSol.Profit() {
		return lbSol, true, nil
	}

	bestSol := ins.MaterializeSolution(e.best.bits)
	fixPartialSolution(ins, e.s, e.t, e.best.bits)
	ins.SetFirstItem(e.s + 1)
	ins.SetLastItem(e.t - 1)
	ins.ResetTouched()

	nextLB := e.best.p - 1
	if lbSol.Profit() > nextLB {
		nextLB = lbSol.Profit()
	}
	return solveDP(ins, nextLB, ub, bestSol, opts)
}

// fixPartialSolution folds the decoded bits of a flushed DP state into
// reduced_sol across the range the window is about to drop: positions up
// to and including s default to IN (part of the break-solution baseline)
// unless explicitly decoded OUT; positions from t onward default to OUT
// and are folded in only when explicitly decoded IN.
func fixPartialSolution(ins *core.Instance, s, t core.ItemPos, bits core.PartSol) {
	diffs := ins.Decode(bits)

	for pos := ins.FirstItem(); pos <= s; pos++ {
		j := ins.Item(pos).J
		if in, tracked := diffs[j]; tracked && !in {
			continue
		}
		ins.FixIn(pos)
	}
	for pos := t; pos <= ins.LastItem(); pos++ {
		j := ins.Item(pos).J
		if in, tracked := diffs[j]; tracked && in {
			ins.FixIn(pos)
		}
	}
}
