// Package localsearch - tabu search with tenure-based memory and aspiration.
//
// TabuSearch walks a single trajectory over a configurable neighborhood.
// Per iteration:
//  1. purge memory entries whose expiry has passed (expiry ≤ iteration),
//  2. generate candidate moves (exhaustive scan order or seeded sampling),
//  3. evaluate each candidate against the current tour; a candidate is tabu
//     while its Move key maps to an expiry strictly above the iteration,
//     unless aspiration applies: a tabu move that strictly beats the best
//     cost ever seen is admissible anyway, so tabu status never blocks a
//     genuinely new global best,
//  4. take the strictly cheapest admissible candidate (first encountered wins
//     ties), record its Move with expiry iteration+Tenure, and update the
//     best/stagnation bookkeeping.
//
// Termination: the iteration cap, the optional stagnation cap, or an
// iteration with no admissible candidate. None of these is an error — tabu
// exhaustion is a normal stopping state, distinguished from validation
// failures which surface before any work.
//
// The memory is a plain map[Move]int owned by one run; sweep-and-insert all
// happen within the sequential iteration, never shared across goroutines.
//
// Contracts:
//   - dist is n×n with non-negative finite weights (+Inf = missing edge).
//   - opts validated up front; a supplied start tour must be a permutation.
//
// Complexity: O(MaxIters·C·n) time where C is the per-iteration candidate
// count (n² exhaustive, MaxCandidates sampled); O(n² + MaxIters) space.
package localsearch

import "github.com/katalvlaran/lvlath/matrix"

// tabuMemory maps a Move to the first iteration at which it is usable again.
// An entry forbids its move for all iterations strictly below the expiry.
type tabuMemory map[Move]int

// purge removes entries whose expiry has been reached or passed.
func (t tabuMemory) purge(iteration int) {
	var (
		m   Move
		exp int
	)
	for m, exp = range t {
		if exp <= iteration {
			delete(t, m)
		}
	}
}

// TabuSearch runs the trajectory and returns the best tour seen, its cost,
// and the number of iterations actually performed.
func TabuSearch(dist matrix.Matrix, opts TabuOptions) (SearchResult, error) {
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
		memory   = make(tabuMemory)
		stagnant = 0
		iters    = 0
	)

	// Exhaustive candidate lists are identical every iteration; build once.
	// Sampled lists are redrawn per iteration from the run's RNG stream.
	var exhaustive []Move
	if opts.MaxCandidates == 0 {
		exhaustive = enumerateMoves(opts.Neighborhood, n)
	}

	var (
		scratch   = make([]int, n) // neighbor evaluation buffer, reused
		iteration int
	)
	for iteration = 0; iteration < opts.MaxIters; iteration++ {
		iters = iteration + 1

		memory.purge(iteration)

		candidates := exhaustive
		if opts.MaxCandidates != 0 {
			candidates = sampleMoves(opts.Neighborhood, n, opts.MaxCandidates, rng)
		}

		pickMove, pickCost, found := bestAdmissible(w, n, cur, scratch, candidates, memory, iteration, bestCost)
		if !found {
			// Tabu exhaustion: no admissible candidate from this state.
			break
		}

		// Commit the move and forbid its key for Tenure iterations.
		pickMove.applyInto(cur, scratch)
		cur, scratch = scratch, cur
		curCost = pickCost
		memory[pickMove] = iteration + opts.Tenure

		if curCost < bestCost {
			bestCost = curCost
			copy(best, cur)
			stagnant = 0
		} else {
			stagnant++
			if opts.MaxStagnantIters != 0 && stagnant >= opts.MaxStagnantIters {
				break
			}
		}
	}

	return SearchResult{
		Tour:       best,
		Cost:       round1e9(bestCost),
		Iterations: iters,
	}, nil
}

// bestAdmissible scans candidates against cur and returns the strictly
// cheapest admissible one (first encountered wins ties). A candidate whose
// Move key is tabu (expiry strictly above iteration) is skipped unless its
// cost strictly improves on bestCost — the aspiration override. ok==false
// means no candidate was admissible. scratch must be an n-length buffer; it
// is clobbered.
//
// Complexity: O(len(candidates)·n) time, zero allocations.
func bestAdmissible(
	w []float64,
	n int,
	cur []int,
	scratch []int,
	candidates []Move,
	memory tabuMemory,
	iteration int,
	bestCost float64,
) (Move, float64, bool) {
	var (
		found    bool
		pickMove Move
		pickCost float64
		m        Move
		c        float64
		exp      int
		isTabu   bool
		tracked  bool
		idx      int
	)
	for idx = 0; idx < len(candidates); idx++ {
		m = candidates[idx]

		exp, tracked = memory[m]
		isTabu = tracked && exp > iteration

		m.applyInto(cur, scratch)
		c = tourCostBuf(w, n, scratch)

		// Tabu unless aspiration triggers (strict global-best improvement).
		if isTabu && c >= bestCost {
			continue
		}

		if !found || c < pickCost {
			found = true
			pickCost = c
			pickMove = m
		}
	}

	return pickMove, pickCost, found
}
