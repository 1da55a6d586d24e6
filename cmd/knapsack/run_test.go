package main

import (
	"testing"

	"github.com/dpknap/minknap/core"
	"github.com/dpknap/minknap/minknap"
)

// TestAllFlagsExist verifies every flag solveAction relies on is present in
// appFlagsMap, preventing flag-definition drift between flags.go and
// run.go.
func TestAllFlagsExist(t *testing.T) {
	expected := []string{"algorithm", "upper-bound", "reduction", "surrogate", "cert", "output", "verbose"}
	for _, name := range expected {
		if _, ok := appFlagsMap[name]; !ok {
			t.Errorf("expected flag %q not found in appFlagsMap", name)
		}
	}
}

func buildInstance(t *testing.T, c core.Weight, wp [][2]int64) *core.Instance {
	t.Helper()
	ins := core.NewInstance(len(wp), c)
	if err := ins.AddItems(wp); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	return ins
}

func TestIsInfeasible_NoItemFits(t *testing.T) {
	ins := buildInstance(t, 1, [][2]int64{{2, 100}, {3, 50}})
	if !isInfeasible(ins) {
		t.Fatalf("expected infeasible when every item exceeds capacity")
	}
}

func TestIsInfeasible_OneItemFits(t *testing.T) {
	ins := buildInstance(t, 5, [][2]int64{{2, 100}, {10, 50}})
	if isInfeasible(ins) {
		t.Fatalf("expected feasible when at least one item fits")
	}
}

func TestExitCodeFor_InfeasibleBeatsEmptyOptimum(t *testing.T) {
	ins := buildInstance(t, 1, [][2]int64{{2, 100}})
	res := minknap.Result{Solution: core.NewSolution(1), ProvenOptimal: true}
	if got := exitCodeFor(ins, res); got != exitInfeasible {
		t.Fatalf("exit code = %d, want %d (infeasible)", got, exitInfeasible)
	}
}

func TestExitCodeFor_EmptyButFeasibleIsOptimal(t *testing.T) {
	ins := buildInstance(t, 5, [][2]int64{{2, 0}})
	res := minknap.Result{Solution: core.NewSolution(1), ProvenOptimal: true}
	if got := exitCodeFor(ins, res); got != exitOptimal {
		t.Fatalf("exit code = %d, want %d (optimal, a zero-profit item fits so it is not infeasible)", got, exitOptimal)
	}
}

func TestExitCodeFor_NotProvenIsFeasible(t *testing.T) {
	ins := buildInstance(t, 5, [][2]int64{{2, 3}})
	sol := core.NewSolution(1)
	sol.Set(0, true, 2, 3)
	res := minknap.Result{Solution: sol, ProvenOptimal: false}
	if got := exitCodeFor(ins, res); got != exitFeasible {
		t.Fatalf("exit code = %d, want %d (feasible, not proven optimal)", got, exitFeasible)
	}
}

func TestContains(t *testing.T) {
	if !contains(validAlgorithms, "dp-minknap") {
		t.Fatalf("expected dp-minknap to be a valid algorithm")
	}
	if contains(validAlgorithms, "not-an-algorithm") {
		t.Fatalf("did not expect not-an-algorithm to be valid")
	}
}
