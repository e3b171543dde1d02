// Package localsearch - the move/neighborhood abstraction.
//
// A Move is a tagged (kind, i, j) value over tour positions. The three kinds
// form a closed enum, selected once per search configuration:
//
//   - MoveSwap     — exchange cities at positions i and j (i < j).
//   - MoveRelocate — remove the city at position i, reinsert it at position j
//     of the shortened sequence (ordered pair, i ≠ j).
//   - MoveReverse  — reverse the inclusive segment [i..j] (i < j); the 2-opt
//     edge exchange on a cycle.
//
// Degenerate pairs (relocate i==j, reverse i>=j) are defined as no-op copies
// rather than errors: enumeration never emits them, and direct Apply callers
// always receive a tour back. This is a deliberate contract, see Apply.
//
// Candidate generation has two modes:
//   - exhaustive — every valid pair for the kind, in a fixed scan order;
//   - sampled    — up to MaxCandidates unique pairs drawn without replacement
//     from a seeded stream, with a bounded number of draws (50·target+100) to
//     stay finite when collision rates are high at small n. Sampling is a
//     runtime-control knob for large instances; it trades neighborhood
//     completeness for speed and is reproducible under a fixed seed.
package localsearch

import "math/rand"

// MoveKind enumerates the supported neighborhood kinds.
type MoveKind uint8

const (
	// MoveSwap exchanges the cities at two positions.
	MoveSwap MoveKind = iota

	// MoveRelocate removes one city and reinserts it elsewhere.
	MoveRelocate

	// MoveReverse reverses a contiguous segment (2-opt).
	MoveReverse
)

// String returns the canonical lowercase name of the kind.
func (k MoveKind) String() string {
	switch k {
	case MoveSwap:
		return "swap"
	case MoveRelocate:
		return "relocate"
	case MoveReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// valid reports whether k is a member of the closed enum.
func (k MoveKind) valid() bool {
	return k == MoveSwap || k == MoveRelocate || k == MoveReverse
}

// ParseMoveKind maps a textual neighborhood name onto the enum.
// Accepted: "swap", "relocate", "reverse".
func ParseMoveKind(s string) (MoveKind, error) {
	switch s {
	case "swap":
		return MoveSwap, nil
	case "relocate":
		return MoveRelocate, nil
	case "reverse":
		return MoveReverse, nil
	default:
		return 0, ErrUnknownMoveKind
	}
}

// Move is an immutable (kind, i, j) value over tour positions. It is the key
// into the tabu memory, so it must stay comparable.
type Move struct {
	Kind MoveKind
	I    int
	J    int
}

// Apply derives the neighbor tour produced by m. The input is never mutated;
// the result is always a fresh slice, even for degenerate pairs (relocate
// i==j, reverse i>=j), which yield an unchanged copy by contract.
//
// Contract: positions must lie in [0, len(tour)); Apply does not re-validate
// the tour itself.
//
// Complexity: O(n) time, O(n) space.
func (m Move) Apply(tour []int) []int {
	out := make([]int, len(tour))
	m.applyInto(tour, out)

	return out
}

// applyInto writes the neighbor produced by m into dst (len(dst)==len(src)).
// This is the zero-allocation path used by candidate scans.
//
// Complexity: O(n) time.
func (m Move) applyInto(src, dst []int) {
	switch m.Kind {
	case MoveSwap:
		copy(dst, src)
		dst[m.I], dst[m.J] = dst[m.J], dst[m.I]

	case MoveRelocate:
		if m.I == m.J {
			copy(dst, src)
			return
		}
		// Remove src[i], then insert it at position j of the shortened
		// sequence. Equivalent to a cyclic shift of the span between i and j.
		var (
			city = src[m.I]
			k    int
		)
		if m.I < m.J {
			copy(dst[:m.I], src[:m.I])
			for k = m.I; k < m.J; k++ {
				dst[k] = src[k+1]
			}
			dst[m.J] = city
			copy(dst[m.J+1:], src[m.J+1:])
		} else {
			copy(dst[:m.J], src[:m.J])
			dst[m.J] = city
			for k = m.J; k < m.I; k++ {
				dst[k+1] = src[k]
			}
			copy(dst[m.I+1:], src[m.I+1:])
		}

	case MoveReverse:
		copy(dst, src)
		if m.I >= m.J {
			return
		}
		var (
			i = m.I
			j = m.J
		)
		for i < j {
			dst[i], dst[j] = dst[j], dst[i]
			i++
			j--
		}
	}
}

// CandidateSpaceSize returns the number of distinct non-degenerate moves of
// the given kind on a tour of n cities: n(n-1)/2 for swap and reverse
// (unordered pairs), n(n-1) for relocate (ordered pairs).
func CandidateSpaceSize(kind MoveKind, n int) int {
	if n < 2 {
		return 0
	}
	switch kind {
	case MoveSwap, MoveReverse:
		return n * (n - 1) / 2
	case MoveRelocate:
		return n * (n - 1)
	default:
		return 0
	}
}

// enumerateMoves lists every valid move of the kind in a fixed scan order
// (i ascending, then j ascending). The order is the tie-break order for
// candidate selection, so it must stay deterministic.
//
// Complexity: O(n²) time and space.
func enumerateMoves(kind MoveKind, n int) []Move {
	out := make([]Move, 0, CandidateSpaceSize(kind, n))

	var i, j int
	switch kind {
	case MoveSwap, MoveReverse:
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				out = append(out, Move{Kind: kind, I: i, J: j})
			}
		}
	case MoveRelocate:
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i != j {
					out = append(out, Move{Kind: kind, I: i, J: j})
				}
			}
		}
	}

	return out
}

// sampleMoves draws up to maxCandidates unique moves without replacement from
// rng, preserving draw order (the tie-break order under sampling). The target
// is capped at the true candidate-space size, and the number of draws is
// bounded by 50·target+100 so pathological collision rates at small n cannot
// stall the generator; whatever unique candidates were found are returned.
//
// Complexity: O(target) expected time, O(target) space.
func sampleMoves(kind MoveKind, n, maxCandidates int, rng *rand.Rand) []Move {
	if n < 2 {
		return nil
	}

	var (
		target = maxCandidates
		space  = CandidateSpaceSize(kind, n)
	)
	if target > space {
		target = space
	}

	var (
		out        = make([]Move, 0, target)
		seen       = make(map[Move]struct{}, target)
		attempts   = 0
		attemptCap = target*50 + 100
		m          Move
		i, j       int
		ok         bool
	)

	for len(out) < target && attempts < attemptCap {
		attempts++
		switch kind {
		case MoveSwap, MoveReverse:
			i = rng.Intn(n - 1)
			j = i + 1 + rng.Intn(n-1-i)
		case MoveRelocate:
			i = rng.Intn(n)
			j = rng.Intn(n)
			if i == j {
				continue
			}
		}
		m = Move{Kind: kind, I: i, J: j}
		if _, ok = seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	return out
}

// generateMoves routes between exhaustive and sampled candidate generation:
// maxCandidates==0 selects the exhaustive scan.
func generateMoves(kind MoveKind, n, maxCandidates int, rng *rand.Rand) []Move {
	if maxCandidates == 0 {
		return enumerateMoves(kind, n)
	}

	return sampleMoves(kind, n, maxCandidates, rng)
}
