package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpknap/minknap/core"
)

func build(t *testing.T, c core.Weight, wp [][2]int64) *core.Instance {
	t.Helper()
	ins := core.NewInstance(len(wp), c)
	require.NoError(t, ins.AddItems(wp))
	return ins
}

func TestAddItem_RejectsNegativeWeightAndProfit(t *testing.T) {
	ins := core.NewInstance(0, 10)
	require.ErrorIs(t, ins.AddItem(-1, 5), core.ErrNegativeWeight)
	require.ErrorIs(t, ins.AddItem(5, -1), core.ErrNegativeProfit)
}

func TestSort_ComputesBreakItemAndCapacity(t *testing.T) {
	ins := build(t, 5, [][2]int64{{2, 3}, {3, 4}, {4, 5}, {5, 6}})
	require.Equal(t, -1, ins.BreakItem())

	ins.Sort()
	require.GreaterOrEqual(t, ins.BreakItem(), 0)
	require.LessOrEqual(t, ins.BreakWeight(), ins.Capacity())
}

// TestBreakSolution_MatchesGreedyPrefix checks that BreakSolution carries
// exactly the greedy prefix's weight and profit (BreakWeight/BreakProfit),
// that its weight never exceeds capacity, and that its profit never
// exceeds the Dantzig bound computed on the same sorted instance.
func TestBreakSolution_MatchesGreedyPrefix(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.Sort()

	sol := ins.BreakSolution()
	require.Equal(t, ins.BreakWeight(), sol.Weight())
	require.Equal(t, ins.BreakProfit(), sol.Profit())
	require.LessOrEqual(t, sol.Weight(), ins.Capacity())

	ub, err := ins.UBDantzig()
	require.NoError(t, err)
	require.LessOrEqual(t, sol.Profit(), ub)
}

func TestUBDantzig_RequiresFullSort(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	_, err := ins.UBDantzig()
	require.ErrorIs(t, err, core.ErrNotFullySorted)
}

func TestItemNumber_ShrinksAsWindowNarrows(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	require.Equal(t, 3, ins.ItemNumber())

	ins.SetFirstItem(1)
	require.Equal(t, 2, ins.ItemNumber())

	ins.SetLastItem(0)
	require.Equal(t, 0, ins.ItemNumber())
}

func TestFixIn_AddsToReducedSolWithoutMovingWindow(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.Sort()

	before := ins.FixedProfit()
	f, l := ins.FirstItem(), ins.LastItem()
	ins.FixIn(0)
	require.Equal(t, before+ins.Item(0).P, ins.FixedProfit())
	require.Equal(t, f, ins.FirstItem())
	require.Equal(t, l, ins.LastItem())
}

func TestReducedSolution_OnlyContainsFixedInItems(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.Sort()
	ins.FixIn(1)

	sol := ins.ReducedSolution()
	require.True(t, sol.Contains(ins.Item(1).J))
	require.Equal(t, ins.Item(1).P, sol.Profit())
}

func TestUBDembo_ForwardAndReverseAgreeAtZeroRemaining(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.Sort()

	fwd := core.UBDembo(ins, 1, 100, 0)
	rev := core.UBDemboRev(ins, 1, 100, 0)
	require.Equal(t, fwd, rev)
}
