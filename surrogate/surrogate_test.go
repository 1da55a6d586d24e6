package surrogate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpknap/minknap/core"
	"github.com/dpknap/minknap/surrogate"
)

func build(t *testing.T, c core.Weight, wp [][2]int64) *core.Instance {
	t.Helper()
	ins := core.NewInstance(len(wp), c)
	require.NoError(t, ins.AddItems(wp))
	return ins
}

func TestSearch_RequiresSort(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	_, err := surrogate.Search(ins, 0)
	require.ErrorIs(t, err, surrogate.ErrNotSorted)
}

// TestSearch_BetweenOptimumAndDantzig covers spec scenario 6: the
// surrogate bound is the smallest Dantzig bound over the multipliers tried,
// the first of which (lambda 0) is the plain Dantzig bound, so it never
// exceeds that bound; being an upper bound, it never falls below the
// optimum of 70.
func TestSearch_BetweenOptimumAndDantzig(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.SortPartially(core.PartSolCapacity)

	res, err := surrogate.Search(ins, 0)
	require.NoError(t, err)

	dantzig := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	dantzig.Sort()
	dantzigUB, err := dantzig.UBDantzig()
	require.NoError(t, err)

	require.LessOrEqual(t, res.UB, dantzigUB)
	require.GreaterOrEqual(t, res.UB, core.Profit(70))
}

func TestSearch_StopsEarlyWhenBoundReachesLB(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.SortPartially(core.PartSolCapacity)

	res, err := surrogate.Search(ins, 70)
	require.NoError(t, err)
	require.LessOrEqual(t, res.UB, core.Profit(70))
}

func TestSearch_DoesNotMutateInstance(t *testing.T) {
	ins := build(t, 10, [][2]int64{{5, 10}, {4, 40}, {6, 30}})
	ins.SortPartially(core.PartSolCapacity)

	before := ins.FirstItem()
	beforeLast := ins.LastItem()

	_, err := surrogate.Search(ins, 0)
	require.NoError(t, err)

	require.Equal(t, before, ins.FirstItem())
	require.Equal(t, beforeLast, ins.LastItem())
}
