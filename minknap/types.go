package minknap

import (
	"errors"
	"fmt"

	"github.com/dpknap/minknap/core"
)

// Sentinel errors for Solve's own control flow; package core's sentinels
// (ErrNotSorted, ErrNotFullySorted, ...) surface unchanged through errors.Is
// when a lower layer rejects a malformed call.
var (
	// ErrAlgorithmNotImplemented is returned for CLI-recognized algorithm
	// values that have no implementation in this repository (dp-bellman,
	// dp-balknap, bab-star): none of the three has a retrievable body in
	// the original source.
	ErrAlgorithmNotImplemented = errors.New("minknap: algorithm not implemented")
)

// InvariantError describes a violated window/core invariant (the
// f <= s <= b <= t+1 <= l+1 chain, or a DP state that isn't on the Pareto
// frontier) together with the Instance's cursor snapshot. Solve runs no
// consistency check, so nothing in this repository constructs one.
type InvariantError struct {
	Invariant  string
	F, L, S, T, B core.ItemPos
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("minknap: invariant violated: %s (f=%d l=%d s=%d t=%d b=%d)",
		e.Invariant, e.F, e.L, e.S, e.T, e.B)
}

// UpperBoundKind selects which per-instance upper bound gates the DP and
// the orchestrator's early-exit check.
type UpperBoundKind int

const (
	// UpperBoundDantzig requires a full sort but gives the tightest bound.
	UpperBoundDantzig UpperBoundKind = iota
	// UpperBoundTrivial uses the break profit plus the whole profit of the
	// break item and every item after it (no fractional term), avoiding the
	// cost of a full sort when the caller only wants a fast, looser bound.
	UpperBoundTrivial
)

// ReductionLevel selects which variable-reduction pass, if any, runs
// before the DP.
type ReductionLevel int

const (
	NoReduction     ReductionLevel = iota // skip reduction entirely
	Reduce1Level                          // reduce.Reduce1 (partial sort suffices)
	Reduce2Level                          // reduce.Reduce2 (requires full sort)
)

// WarmStartKind selects which lower-bound heuristic seeds the DP.
type WarmStartKind int

const (
	WarmStartBreak       WarmStartKind = iota // the break solution itself
	WarmStartGreedy                           // greedy.Solve (single swap)
	WarmStartGreedyNLogN                      // greedy.SolveNLogN (scanned swap)
)

// Options configures one Solve call. Mirrors tsp.Options: a flat struct of
// knobs with documented defaults, built via DefaultOptions and overridden
// field by field.
type Options struct {
	// UpperBound controls which bound gates the DP and the orchestrator's
	// LB==UB early exit.
	UpperBound UpperBoundKind

	// Reduction controls whether reduce.Reduce1/Reduce2 runs before the DP.
	Reduction ReductionLevel

	// Surrogate enables the surrogate-relaxation search for a tighter UB
	// before reduction and the DP run.
	Surrogate bool

	// WarmStart selects which heuristic seeds the initial lower bound.
	WarmStart WarmStartKind

	// WideInitialCore runs an extra sort_partially pass and then
	// core.Instance.InitialCore, which only records the initial-core bounds;
	// it never changes the result.
	WideInitialCore   bool
	InitialCoreMargin int

	// ShouldStop is polled at the top of every DP expand iteration; if it
	// returns true, Solve returns the best solution found so far with
	// ProvenOptimal false. Nil means never stop early.
	ShouldStop func() bool
}

// DefaultOptions returns the default pipeline: Dantzig UB, level-2
// reduction, surrogate search enabled, greedynlogn warm start, no initial
// core widening, no cancellation.
func DefaultOptions() Options {
	return Options{
		UpperBound:        UpperBoundDantzig,
		Reduction:         Reduce2Level,
		Surrogate:         true,
		WarmStart:         WarmStartGreedyNLogN,
		WideInitialCore:   false,
		InitialCoreMargin: 10,
	}
}

// Result is what Solve returns: the selected items and whether the search
// proved optimality before ShouldStop cut it short.
type Result struct {
	Solution     *core.Solution
	ProvenOptimal bool
}
