// Package localsearch - tour utilities shared by all solvers.
//
// Tours here are open permutations: len(tour)==n, every city 0..n-1 exactly
// once, and the closing edge tour[n-1]→tour[0] is implicit. Helpers in this
// file operate purely on tour structure, without distance matrices.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper; copies are explicit, never aliased.
package localsearch

// ValidatePermutation checks that tour is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// RotateTour returns a fresh copy of tour cyclically shifted so that position
// pivot becomes position 0. The cycle it represents is unchanged, so the
// closed-cycle cost is invariant under this operation.
//
// Complexity: O(n) time, O(n) space.
func RotateTour(tour []int, pivot int) ([]int, error) {
	var n = len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	if pivot < 0 || pivot >= n {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// EqualToursModuloRotation checks whether two open tours describe the same
// directed cycle, allowing a cyclic shift between them.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	var (
		n = len(a)
		j int
		p = -1
	)
	// Find a[0] inside b.
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	// Compare by rotation.
	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}
