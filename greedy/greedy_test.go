package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpknap/minknap/core"
	"github.com/dpknap/minknap/greedy"
)

func build(t *testing.T, c core.Weight, wp [][2]int64) *core.Instance {
	t.Helper()
	ins := core.NewInstance(len(wp), c)
	require.NoError(t, ins.AddItems(wp))
	return ins
}

func TestSolve_RequiresSort(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	_, err := greedy.Solve(ins)
	require.ErrorIs(t, err, greedy.ErrNotSorted)
}

func TestSolve_NeverWorseThanBreakAndFits(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.SortPartially(core.PartSolCapacity)

	sol, err := greedy.Solve(ins)
	require.NoError(t, err)
	require.GreaterOrEqual(t, sol.Profit(), ins.BreakSolution().Profit())
	require.LessOrEqual(t, sol.Weight(), ins.Capacity())
}

func TestSolveNLogN_RequiresFullSort(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	_, err := greedy.SolveNLogN(ins)
	require.ErrorIs(t, err, greedy.ErrNotFullySorted)
}

func TestSolveNLogN_MatchesSolveOnSameInstance(t *testing.T) {
	wp := [][2]int64{{5, 10}, {4, 40}, {6, 30}}

	linear := build(t, 10, wp)
	linear.SortPartially(core.PartSolCapacity)
	linSol, err := greedy.Solve(linear)
	require.NoError(t, err)

	nlogn := build(t, 10, wp)
	nlogn.Sort()
	nSol, err := greedy.SolveNLogN(nlogn)
	require.NoError(t, err)

	require.Equal(t, linSol.Profit(), nSol.Profit())
}

func TestSolveNLogN_NeverExceedsCapacity(t *testing.T) {
	ins := build(t, 5, [][2]int64{{2, 3}, {3, 4}, {4, 5}, {5, 6}})
	ins.Sort()
	sol, err := greedy.SolveNLogN(ins)
	require.NoError(t, err)
	require.LessOrEqual(t, sol.Weight(), ins.Capacity())
}
