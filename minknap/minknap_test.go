package minknap_test

import (
	"testing"

	"github.com/dpknap/minknap/core"
	"github.com/dpknap/minknap/minknap"
)

func build(t *testing.T, c core.Weight, wp [][2]int64) *core.Instance {
	t.Helper()
	ins := core.NewInstance(len(wp), c)
	for _, pair := range wp {
		if err := ins.AddItem(pair[0], pair[1]); err != nil {
			t.Fatalf("AddItem(%d,%d): %v", pair[0], pair[1], err)
		}
	}
	return ins
}

// TestSolve_FourItems runs spec scenario 1: N=4, C=5, optimum 7 from items
// 0 and 1 (weights 2,3 and profits 3,4).
func TestSolve_FourItems(t *testing.T) {
	ins := build(t, 5, [][2]int64{{2, 3}, {3, 4}, {4, 5}, {5, 6}})
	res, err := minknap.Solve(ins, minknap.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.ProvenOptimal {
		t.Fatalf("expected proven optimal")
	}
	if res.Solution.Profit() != 7 {
		t.Fatalf("profit = %d, want 7", res.Solution.Profit())
	}
	if res.Solution.Weight() > 5 {
		t.Fatalf("weight = %d exceeds capacity 5", res.Solution.Weight())
	}
	if !res.Solution.Contains(0) || !res.Solution.Contains(1) {
		t.Fatalf("expected items 0,1 selected, got %v", res.Solution.Items())
	}
}

// TestSolve_ThreeItems runs spec scenario 2: N=3, C=10, optimum 70 from
// items 1 and 2.
func TestSolve_ThreeItems(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	res, err := minknap.Solve(ins, minknap.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Solution.Profit() != 70 {
		t.Fatalf("profit = %d, want 70", res.Solution.Profit())
	}
	if !res.Solution.Contains(1) || !res.Solution.Contains(2) {
		t.Fatalf("expected items 1,2 selected, got %v", res.Solution.Items())
	}
}

// TestSolve_SingleInfeasibleItem runs spec boundary: N=1, item too heavy
// for the capacity, optimum 0.
func TestSolve_SingleInfeasibleItem(t *testing.T) {
	ins := build(t, 1, [][2]int64{{2, 100}})
	res, err := minknap.Solve(ins, minknap.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Solution.Empty() {
		t.Fatalf("expected empty solution, got profit %d", res.Solution.Profit())
	}
}

// TestSolve_ZeroCapacity runs spec boundary: C=0 always yields the empty
// solution regardless of items.
func TestSolve_ZeroCapacity(t *testing.T) {
	ins := build(t, 0, [][2]int64{{1, 5}, {2, 9}})
	res, err := minknap.Solve(ins, minknap.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Solution.Empty() {
		t.Fatalf("expected empty solution at C=0, got profit %d", res.Solution.Profit())
	}
}

// TestSolve_IdenticalItems covers the boundary case of N identical items:
// profit = N * p when N*w <= C, else floor(C/w) * p.
func TestSolve_IdenticalItems(t *testing.T) {
	wp := make([][2]int64, 5)
	for i := range wp {
		wp[i] = [2]int64{3, 7}
	}
	ins := build(t, 10, wp) // floor(10/3)=3 items fit
	res, err := minknap.Solve(ins, minknap.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if want := core.Profit(3 * 7); res.Solution.Profit() != want {
		t.Fatalf("profit = %d, want %d", res.Solution.Profit(), want)
	}
}

// TestSolve_SubsetSum covers spec scenario 5: weights double as profits,
// N=4, C=7, items [3,3,4,5], optimum 7.
func TestSolve_SubsetSum(t *testing.T) {
	ins := build(t, 7, [][2]int64{{3, 3}, {3, 3}, {4, 4}, {5, 5}})
	res, err := minknap.Solve(ins, minknap.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Solution.Profit() != 7 {
		t.Fatalf("profit = %d, want 7", res.Solution.Profit())
	}
}

// TestSolve_MatchesEveryWarmStartAndReductionCombo checks that the
// scenario-2 instance (N=3, C=10, optimum 70) converges to the same
// optimum under three Options combinations of warm start, reduction level
// and surrogate search.
func TestSolve_MatchesEveryWarmStartAndReductionCombo(t *testing.T) {
	combos := []minknap.Options{
		{UpperBound: minknap.UpperBoundDantzig, Reduction: minknap.NoReduction, WarmStart: minknap.WarmStartBreak},
		{UpperBound: minknap.UpperBoundDantzig, Reduction: minknap.Reduce1Level, WarmStart: minknap.WarmStartGreedy, Surrogate: true},
		{UpperBound: minknap.UpperBoundDantzig, Reduction: minknap.Reduce2Level, WarmStart: minknap.WarmStartGreedyNLogN, Surrogate: true},
	}
	for i, opts := range combos {
		ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
		res, err := minknap.Solve(ins, opts)
		if err != nil {
			t.Fatalf("combo %d: Solve: %v", i, err)
		}
		if res.Solution.Profit() != 70 {
			t.Fatalf("combo %d: profit = %d, want 70", i, res.Solution.Profit())
		}
	}
}
