// Package localsearch - simulated annealing over the swap neighborhood.
//
// SimulatedAnnealing is a single-trajectory Metropolis search:
//   - candidate = current with two uniformly random positions swapped,
//   - Δ = cost(candidate) − cost(current),
//   - Δ < 0 accepts unconditionally; otherwise accept with exp(−Δ/T),
//   - after IterationsPerTemp trials the temperature decays T ← Cooling·T,
//   - the loop stops once T ≤ FinalTemp.
//
// The best tour ever visited is tracked separately from the trajectory, so
// the reported cost is non-increasing over the run even though the current
// tour may worsen.
//
// Numeric guard: the acceptance exponent −Δ/T is clamped — once it drops
// below metropolisMinExp the move is rejected outright instead of feeding an
// extreme argument to math.Exp near the stopping threshold.
//
// Contracts:
//   - dist is n×n with non-negative finite weights (+Inf = missing edge).
//   - opts validated before any search work; a supplied start tour must be a
//     permutation of 0..n-1.
//
// Complexity: O(levels·IterationsPerTemp·n) time, O(n²) space (prefetch),
// where levels = ceil(log(FinalTemp/InitialTemp)/log(Cooling)).
package localsearch

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlath/matrix"
)

// metropolisMinExp bounds the acceptance exponent −Δ/T from below. Beyond it
// exp underflows to an acceptance probability of numerically exact zero, so
// the trial is rejected without calling math.Exp.
const metropolisMinExp = -700.0

// SimulatedAnnealing runs the annealing trajectory and returns the best tour
// seen together with its cost. The result's Iterations carries the analytic
// schedule length (EstimatedIterations), matching how the trial budget is
// configured rather than counted.
func SimulatedAnnealing(dist matrix.Matrix, opts AnnealOptions) (SearchResult, error) {
	if err := opts.validate(); err != nil {
		return SearchResult{}, err
	}
	n, w, err := prefetchWeights(dist)
	if err != nil {
		return SearchResult{}, err
	}
	if n < 2 {
		return SearchResult{}, ErrDimensionMismatch
	}

	rng := rngFromSeed(opts.Seed)

	// Initial trajectory state: supplied start (validated, copied) or random.
	var cur []int
	if opts.Start != nil {
		if err = ValidatePermutation(opts.Start, n); err != nil {
			return SearchResult{}, err
		}
		cur = CopyTour(opts.Start)
	} else {
		if cur, err = RandomTour(n, rng); err != nil {
			return SearchResult{}, err
		}
	}

	var (
		curCost  = tourCostBuf(w, n, cur)
		best     = CopyTour(cur)
		bestCost = curCost
	)

	var (
		temperature = opts.InitialTemp
		trial       int
		i, j        int
		candCost    float64
		delta       float64
		accept      bool
	)
	for temperature > opts.FinalTemp {
		for trial = 0; trial < opts.IterationsPerTemp; trial++ {
			i, j = randomSwapPair(n, rng)

			// Evaluate the candidate in place: swap, cost, decide, maybe revert.
			cur[i], cur[j] = cur[j], cur[i]
			candCost = tourCostBuf(w, n, cur)
			delta = candCost - curCost

			if delta < 0 {
				accept = true
			} else {
				accept = metropolisAccept(delta, temperature, rng)
			}

			if accept {
				curCost = candCost
			} else {
				cur[i], cur[j] = cur[j], cur[i] // revert the trial swap
			}

			if curCost < bestCost {
				bestCost = curCost
				copy(best, cur)
			}
		}

		// Geometric cooling.
		temperature *= opts.Cooling
	}

	return SearchResult{
		Tour:       best,
		Cost:       round1e9(bestCost),
		Iterations: opts.EstimatedIterations(),
	}, nil
}

// randomSwapPair draws two distinct uniform positions in [0,n).
// The pair is unordered for swap purposes; order of draws is fixed for
// reproducibility.
func randomSwapPair(n int, rng *rand.Rand) (int, int) {
	var (
		i = rng.Intn(n)
		j = rng.Intn(n - 1)
	)
	if j >= i {
		j++
	}

	return i, j
}

// metropolisAccept decides a worsening trial (delta >= 0) at the given
// temperature. The uniform draw is consumed unconditionally so the RNG
// stream advances identically whether or not the exponent clamps.
func metropolisAccept(delta, temperature float64, rng *rand.Rand) bool {
	var (
		u   = rng.Float64()
		arg = -delta / temperature
	)
	if arg < metropolisMinExp {
		// Probability underflows to zero; never accept.
		return false
	}

	return u < math.Exp(arg)
}
