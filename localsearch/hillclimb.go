// Package localsearch - steepest-descent hill climbing and multistart.
//
// HillClimb performs deterministic steepest descent over the swap
// neighborhood: each iteration scans every position pair (i<j), takes the
// single best strictly-improving neighbor, and stops at the first iteration
// with no strict improvement (a local optimum). Ties break on the first pair
// encountered in scan order, so a fixed start reproduces a fixed trajectory.
//
// Multistart runs independent hill climbs from uniformly random tours and
// reduces to the cheapest outcome. Restarts share only the read-only weight
// buffer; each owns an RNG stream derived from (Seed, restart index), so a
// bounded worker pool may execute them in any order with a deterministic
// result (lowest cost wins, lowest restart index on equal cost).
//
// Contracts:
//   - dist is n×n with non-negative finite weights (+Inf = missing edge).
//   - start tours supplied by callers are validated as permutations.
//
// Complexity:
//   - One neighborhood scan: O(n³) (n²/2 candidates, O(n) cost evaluation).
//   - HillClimb: O(iter·n³); the cost sequence is strictly decreasing and
//     bounded below, so termination is guaranteed on finite neighborhoods.
//   - Multistart: NumStarts independent climbs, reduced in O(NumStarts).
package localsearch

import (
	"runtime"

	"github.com/katalvlaran/lvlath/matrix"
	"golang.org/x/sync/errgroup"
)

// BestImprovingNeighbor evaluates the full swap neighborhood of tour and
// returns the best neighbor together with its cost. When no neighbor is
// strictly cheaper, the returned tour is an unchanged copy of the input and
// the returned cost is the input's own cost; callers detect "no improvement"
// by comparing lengths, there is no distinguished signal.
//
// Complexity: O(n³) time, O(n²) space (weight prefetch).
func BestImprovingNeighbor(dist matrix.Matrix, tour []int) ([]int, float64, error) {
	n, w, err := prefetchWeights(dist)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidatePermutation(tour, n); err != nil {
		return nil, 0, err
	}

	var (
		cur      = CopyTour(tour)
		curCost  = tourCostBuf(w, n, cur)
		i, j, ok = bestSwapOf(w, n, cur, curCost)
	)
	if !ok {
		return cur, round1e9(curCost), nil
	}
	cur[i], cur[j] = cur[j], cur[i]

	return cur, round1e9(tourCostBuf(w, n, cur)), nil
}

// bestSwapOf scans all swap pairs (i<j) of cur against the prefetched buffer
// and reports the pair of the strictly cheapest neighbor. ok==false means no
// neighbor beats curCost. The scan mutates cur transiently (swap, evaluate,
// swap back) to keep the hot loop allocation-free; cur is unchanged on return.
//
// Complexity: O(n³) time, zero allocations.
func bestSwapOf(w []float64, n int, cur []int, curCost float64) (int, int, bool) {
	var (
		bestI    = -1
		bestJ    = -1
		bestCost = curCost
		i, j     int
		c        float64
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			cur[i], cur[j] = cur[j], cur[i]
			c = tourCostBuf(w, n, cur)
			cur[i], cur[j] = cur[j], cur[i]

			// Strict improvement only; first-encountered pair wins ties.
			if c < bestCost {
				bestCost = c
				bestI, bestJ = i, j
			}
		}
	}

	return bestI, bestJ, bestI >= 0
}

// HillClimb runs steepest descent from start until no strictly improving
// swap neighbor exists. Deterministic for a fixed start. The result's
// Iterations counts accepted moves.
//
// Complexity: O(iter·n³) time, O(n²) space.
func HillClimb(dist matrix.Matrix, start []int) (SearchResult, error) {
	n, w, err := prefetchWeights(dist)
	if err != nil {
		return SearchResult{}, err
	}
	if err = ValidatePermutation(start, n); err != nil {
		return SearchResult{}, err
	}

	res := hillClimbBuf(w, n, CopyTour(start))

	return res, nil
}

// hillClimbBuf is the shared descent core over a prefetched buffer.
// It owns cur and mutates it in place; accepted swaps are O(1).
func hillClimbBuf(w []float64, n int, cur []int) SearchResult {
	var (
		curCost  = tourCostBuf(w, n, cur)
		steps    = 0
		i, j     int
		improved bool
	)
	for {
		i, j, improved = bestSwapOf(w, n, cur, curCost)
		if !improved {
			// Local optimum under the swap neighborhood.
			break
		}
		cur[i], cur[j] = cur[j], cur[i]
		curCost = tourCostBuf(w, n, cur)
		steps++
	}

	return SearchResult{Tour: cur, Cost: round1e9(curCost), Iterations: steps}
}

// Multistart runs opts.NumStarts independent hill climbs from random tours
// and returns the cheapest outcome. The result's Iterations reports the
// number of restarts performed. Validation failures surface before any
// search work begins.
//
// Determinism: restart r always starts from the tour generated by the RNG
// stream deriveSeed(Seed, r), regardless of worker count or scheduling, and
// the reduction prefers the lowest restart index on equal cost.
//
// Complexity: O(NumStarts·iter·n³) total work across the worker pool.
func Multistart(dist matrix.Matrix, opts MultistartOptions) (SearchResult, error) {
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

	var (
		workers = opts.Workers
		outs    = make([]SearchResult, opts.NumStarts)
	)
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	var r int
	for r = 0; r < opts.NumStarts; r++ {
		restart := r // capture per-iteration index for the closure
		g.Go(func() error {
			rng := rngFromSeed(deriveSeed(opts.Seed, uint64(restart)))
			start, terr := RandomTour(n, rng)
			if terr != nil {
				return terr
			}
			outs[restart] = hillClimbBuf(w, n, start)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return SearchResult{}, err
	}

	// Deterministic reduction: minimum cost, lowest restart index on ties.
	best := outs[0]
	for r = 1; r < opts.NumStarts; r++ {
		if outs[r].Cost < best.Cost {
			best = outs[r]
		}
	}
	best.Iterations = opts.NumStarts

	return best, nil
}
