package surrogate

import "github.com/dpknap/minknap/core"

// maxIterations returns the subgradient step budget for a capacity of c:
// 2*ceil(log2(c+1)), the resolution settled on for the open question of
// how long to let the multiplier search run before giving up on
// convergence and returning the best bound seen.
func maxIterations(c core.Weight) int {
	n := 0
	v := core.Weight(1)
	for v < c+1 {
		v <<= 1
		n++
	}
	return 2 * n
}

// Search finds a multiplier λ and cardinality k whose surrogate-relaxed
// instance has the tightest Dantzig bound still guaranteed to dominate
// ins's true optimum, returning early the moment that bound reaches lb.
// ins itself is never mutated; every candidate (λ, k) is tried on a fresh
// Clone. Requires ins to have been at least partially sorted.
func Search(ins *core.Instance, lb core.Profit) (Result, error) {
	if ins.BreakItem() < 0 {
		return Result{}, ErrNotSorted
	}

	n := ins.ItemNumber()
	loK, hiK := 0, n
	var lambda core.Weight

	best := Result{UB: maxProfit}

	for iter, budget := 0, maxIterations(ins.TotalCapacity()); iter < budget && loK <= hiK; iter++ {
		k := (loK + hiK) / 2

		trial := ins.Clone()
		trial.ApplySurrogateMultiplier(lambda, k)
		trial.Sort()

		ub, err := trial.UBDantzig()
		if err != nil {
			return Result{}, err
		}
		if ub < best.UB {
			best = Result{UB: ub, Lambda: lambda, K: k}
		}
		if best.UB <= lb {
			return best, nil
		}

		card := trial.BreakItem() - trial.FirstItem()
		switch {
		case card > k:
			lambda++
			loK = k + 1
		case card < k:
			if lambda > 0 {
				lambda--
			}
			hiK = k - 1
		default:
			return best, nil
		}
	}

	return best, nil
}

// maxProfit seeds best.UB before any candidate has been tried; any real
// Dantzig bound is smaller, since profits and weights are bounded well
// below the full int64 range by the caller's own size constraints.
const maxProfit = core.Profit(1) << 62
