// Package localsearch - cost utilities shared by all solvers.
//
// This file provides small, allocation-conscious helpers to compute the
// closed-cycle length of an open tour over a distance matrix.
//
// Design:
//   - Fast path for *matrix.Dense and generic path for any matrix.Matrix.
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive checks (NaN/negative/missing) even when the caller validated.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//   - Solvers prefetch weights once into a flat buffer (prefetchWeights) and
//     evaluate candidates via tourCostBuf, keeping interface indirection out
//     of hot loops.
//
// Complexity:
//   - TourCost: O(n) time, O(1) extra space.
//   - prefetchWeights: O(n²) time and space, once per solver call.
package localsearch

import (
	"math"

	"github.com/katalvlaran/lvlath/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// TourCost returns the closed-cycle length of an open tour: the sum of
// dist[tour[k]][tour[(k+1) mod n]] over all n positions, including the
// return edge from the last city back to the first.
//
// Contract:
//   - tour must be a permutation of 0..n-1 (indices checked, bijection is the
//     caller's responsibility per the cost-model contract).
//   - dist must be square (n×n) and at least as large as the tour.
//   - Returns ErrNonSquare, ErrDimensionMismatch, ErrIncompleteGraph, or
//     ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	if d, ok := dist.(*matrix.Dense); ok {
		return tourCostDense(d, tour)
	}

	return tourCostGeneric(dist, tour)
}

// tourCostDense sums cycle edges tour[k]→tour[(k+1) mod n] using *matrix.Dense.
//
// Checks performed per edge:
//   - indices in range,
//   - weight finite (no NaN), not ±Inf (⇒ ErrIncompleteGraph),
//   - non-negative (⇒ ErrNegativeWeight).
//
// Complexity: O(n).
func tourCostDense(d *matrix.Dense, tour []int) (float64, error) {
	// Shape guard.
	var (
		nr = d.Rows()
		nc = d.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	// Main accumulation over the n cycle edges, closing edge included.
	var (
		sum float64
		k   int
		u   int
		v   int
		w   float64
		err error
		dim = nr
		n   = len(tour)
	)

	for k = 0; k < n; k++ {
		u = tour[k]
		v = tour[(k+1)%n]

		// Index range checks.
		if u < 0 || u >= dim || v < 0 || v >= dim {
			return 0, ErrDimensionMismatch
		}

		// Fetch weight and validate.
		w, err = d.At(u, v)
		if err != nil {
			// Dense.At should only fail on OOB; map to shape sentinel.
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}

// tourCostGeneric sums cycle edges using the matrix.Matrix interface.
//
// Same checks as tourCostDense; slightly higher call overhead.
//
// Complexity: O(n).
func tourCostGeneric(m matrix.Matrix, tour []int) (float64, error) {
	// Shape guard.
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}

	var (
		sum float64
		k   int
		u   int
		v   int
		w   float64
		err error
		dim = nr
		n   = len(tour)
	)

	for k = 0; k < n; k++ {
		u = tour[k]
		v = tour[(k+1)%n]

		if u < 0 || u >= dim || v < 0 || v >= dim {
			return 0, ErrDimensionMismatch
		}

		w, err = m.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}

// prefetchWeights copies an n×n distance matrix into a flat row-major buffer
// w[u*n+v] so hot loops read weights without interface indirection. Sentinel
// semantics enforced during the copy:
//   - non-square shape → ErrNonSquare,
//   - NaN              → ErrDimensionMismatch (ill-posed input),
//   - negative         → ErrNegativeWeight (forbidden),
//   - +Inf allowed     → candidates relying on missing edges never win.
//
// Complexity: O(n²) time and space.
func prefetchWeights(dist matrix.Matrix) (int, []float64, error) {
	if dist == nil {
		return 0, nil, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, nil, ErrNonSquare
	}

	var (
		n = nr
		w = make([]float64, n*n)
	)
	{
		var (
			i, j int     // matrix indices; declared outside loops to avoid rebinds
			x    float64 // temporary holder for At(i,j)
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				x, err = dist.At(i, j)
				if err != nil {
					return 0, nil, ErrDimensionMismatch
				}
				if math.IsNaN(x) {
					return 0, nil, ErrDimensionMismatch
				}
				if x < 0 {
					return 0, nil, ErrNegativeWeight
				}
				w[i*n+j] = x
			}
		}
	}

	return n, w, nil
}

// tourCostBuf computes the closed-cycle length of tour from a prefetched
// weight buffer. No validation: the caller guarantees a permutation over a
// buffer of matching dimension.
//
// Complexity: O(n) time, zero allocations.
func tourCostBuf(w []float64, n int, tour []int) float64 {
	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += w[tour[k]*n+tour[k+1]]
	}
	// Closing edge back to the first city.
	sum += w[tour[n-1]*n+tour[0]]

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting algorithmic
// correctness. Non-finite values pass through unchanged.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
