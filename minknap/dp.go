// File: dp.go
// Role: the expanding-core DP engine itself (C7) — the state list, its
// two expansion directions, and the Dembo-bound reference-item rule that
// governs how far ahead each direction looks when pruning.
package minknap

import "github.com/dpknap/minknap/core"

// state is one entry of the DP's active list: a feasible-or-not weight/
// profit pair reached from the break solution by some subset of the items
// touched so far, plus its partial-solution bits.
type state struct {
	w    core.Weight
	p    core.Profit
	bits core.PartSol
}

// engine holds the mutable search state for one expanding-core pass: the
// Pareto-pruned list, the sorted-core cursors it is currently expanding
// between, and the running lb/ub pair.
type engine struct {
	ins  *core.Instance
	cap  core.Weight
	lb   core.Profit
	ub   core.Profit
	list []state
	s, t core.ItemPos
	best state
}

// bestSolution materializes the engine's current best state into a
// standalone Solution.
func (e *engine) bestSolution() *core.Solution {
	return e.ins.MaterializeSolution(e.best.bits)
}

// boundAt evaluates the Dembo bound (forward or reverse, by sign of cs)
// anchored at idx, or just returns ps unchanged when idx falls outside the
// instance's active window — the reference item ran out before the bound
// could tighten further, so no additional credit is assumed.
func boundAt(ins *core.Instance, idx core.ItemPos, ps core.Profit, cs core.Weight) core.Profit {
	if idx < ins.FirstItem() || idx > ins.LastItem() {
		return ps
	}
	if cs >= 0 {
		return core.UBDembo(ins, idx, ps, cs)
	}
	return core.UBDemboRev(ins, idx, ps, cs)
}

// addItem expands every state in e.list with item t (right expansion),
// merge-walking the untouched states and the t-extended states by weight
// to rebuild the Pareto frontier in one pass. The reference item for the
// Dembo bound is normally t+1 (the next item in efficiency order); if t is
// the last item sort_right has placed into the core and more unsorted
// items remain to its right, the reference jumps past the whole window
// (last_item+1, i.e. "unknown, assume no extra credit") since the true
// next-best item hasn't been located yet.
func (e *engine) addItem() {
	t := e.t
	e.ins.Track(t)
	e.best.bits = core.RemoveBit(e.ins.TrackItem(e.best.bits, t))

	it := e.ins.Item(t)
	tx := t + 1
	if e.ins.IntRightSize() > 0 && t == e.ins.LastSortedItem() {
		tx = e.ins.LastItem() + 1
	}

	next := make([]state, 0, len(e.list)*2)
	i, i1 := 0, 0
	for i < len(e.list) || i1 < len(e.list) {
		var cand state
		extended := false
		switch {
		case i >= len(e.list):
			old := e.list[i1]
			cand = state{w: old.w + it.W, p: old.p + it.P, bits: core.AddBit(e.ins.TrackItem(old.bits, t))}
			i1++
			extended = true
		case i1 >= len(e.list):
			cand = e.list[i]
			cand.bits = core.RemoveBit(e.ins.TrackItem(cand.bits, t))
			i++
		case e.list[i].w > e.list[i1].w+it.W:
			old := e.list[i1]
			cand = state{w: old.w + it.W, p: old.p + it.P, bits: core.AddBit(e.ins.TrackItem(old.bits, t))}
			i1++
			extended = true
		default:
			cand = e.list[i]
			cand.bits = core.RemoveBit(e.ins.TrackItem(cand.bits, t))
			i++
		}

		if len(next) > 0 && cand.p <= next[len(next)-1].p {
			continue
		}
		if extended && cand.w <= e.cap && cand.p > e.lb {
			e.lb = cand.p
			e.best = cand
			if e.lb == e.ub {
				return
			}
		}
		if len(next) > 0 && cand.w == next[len(next)-1].w {
			next[len(next)-1] = cand
			continue
		}
		if boundAt(e.ins, tx, cand.p, e.cap-cand.w) > e.lb {
			next = append(next, cand)
		}
	}
	e.list = next
}

// removeItem is addItem's mirror: it contracts every state in e.list by
// removing item s (left expansion). Items below s default to IN the break
// solution, so the "kept" branch here is the one that takes an explicit
// AddBit (the item stays in), symmetric to addItem's "kept" branch taking
// an explicit RemoveBit.
func (e *engine) removeItem() {
	s := e.s
	e.ins.Track(s)
	e.best.bits = core.AddBit(e.ins.TrackItem(e.best.bits, s))

	it := e.ins.Item(s)
	tx := e.t
	if e.ins.IntRightSize() > 0 && e.t == e.ins.LastSortedItem() {
		tx = e.ins.LastItem() + 1
	}

	next := make([]state, 0, len(e.list)*2)
	i, i1 := 0, 0
	for i < len(e.list) || i1 < len(e.list) {
		var cand state
		removed := false
		switch {
		case i1 >= len(e.list):
			cand = e.list[i]
			cand.bits = core.AddBit(e.ins.TrackItem(cand.bits, s))
			i++
		case i >= len(e.list):
			old := e.list[i1]
			cand = state{w: old.w - it.W, p: old.p - it.P, bits: core.RemoveBit(e.ins.TrackItem(old.bits, s))}
			i1++
			removed = true
		case e.list[i].w <= e.list[i1].w-it.W:
			cand = e.list[i]
			cand.bits = core.AddBit(e.ins.TrackItem(cand.bits, s))
			i++
		default:
			old := e.list[i1]
			cand = state{w: old.w - it.W, p: old.p - it.P, bits: core.RemoveBit(e.ins.TrackItem(old.bits, s))}
			i1++
			removed = true
		}

		if len(next) > 0 && cand.p <= next[len(next)-1].p {
			continue
		}
		if removed && cand.w <= e.cap && cand.p > e.lb {
			e.lb = cand.p
			e.best = cand
			if e.lb == e.ub {
				return
			}
		}
		if len(next) > 0 && cand.w == next[len(next)-1].w {
			next[len(next)-1] = cand
			continue
		}
		if boundAt(e.ins, tx, cand.p, e.cap-cand.w) > e.lb {
			next = append(next, cand)
		}
	}
	e.list = next
}
