// Package localsearch - shared result type and strict sentinel errors.
//
// Every solver in this package reports failures exclusively through the
// sentinels below; no fmt.Errorf in hot paths, no logging, no panics on
// user input. Option sentinels are returned before any search work begins
// (fail fast); matrix/tour sentinels may also surface from defensive
// checks inside the solvers.
package localsearch

import "errors"

// Sentinel errors for matrix and tour shape violations.
var (
	// ErrNonSquare indicates a distance matrix whose row and column counts differ.
	ErrNonSquare = errors.New("localsearch: distance matrix must be square")

	// ErrDimensionMismatch indicates an ill-shaped input: nil matrix, a tour
	// that is not a permutation of 0..n-1, indices out of range, or NaN weights.
	ErrDimensionMismatch = errors.New("localsearch: dimension mismatch or malformed input")

	// ErrNegativeWeight indicates a negative entry in the distance matrix.
	ErrNegativeWeight = errors.New("localsearch: negative edge weight encountered")

	// ErrIncompleteGraph indicates that a tour traverses a missing (+Inf) edge.
	ErrIncompleteGraph = errors.New("localsearch: tour uses a missing edge")
)

// Sentinel errors for solver option validation.
var (
	// ErrBadNumStarts indicates Multistart was configured with NumStarts <= 0.
	ErrBadNumStarts = errors.New("localsearch: NumStarts must be positive")

	// ErrBadWorkers indicates Multistart was configured with Workers < 0.
	ErrBadWorkers = errors.New("localsearch: Workers must be non-negative")

	// ErrBadTemperature indicates a non-positive temperature, or an initial
	// temperature not strictly above the final one.
	ErrBadTemperature = errors.New("localsearch: temperatures must satisfy InitialTemp > FinalTemp > 0")

	// ErrBadCooling indicates a cooling factor outside the open interval (0,1).
	ErrBadCooling = errors.New("localsearch: Cooling must be in (0,1)")

	// ErrBadItersPerTemp indicates IterationsPerTemp < 1.
	ErrBadItersPerTemp = errors.New("localsearch: IterationsPerTemp must be at least 1")

	// ErrBadMaxIters indicates TabuSearch was configured with MaxIters <= 0.
	ErrBadMaxIters = errors.New("localsearch: MaxIters must be positive")

	// ErrBadTenure indicates TabuSearch was configured with Tenure <= 0.
	ErrBadTenure = errors.New("localsearch: Tenure must be positive")

	// ErrBadStagnation indicates MaxStagnantIters < 0 (0 disables the limit).
	ErrBadStagnation = errors.New("localsearch: MaxStagnantIters must be positive or 0 to disable")

	// ErrBadMaxCandidates indicates MaxCandidates < 0 (0 selects exhaustive scans).
	ErrBadMaxCandidates = errors.New("localsearch: MaxCandidates must be positive or 0 for exhaustive")

	// ErrUnknownMoveKind indicates a MoveKind outside the declared enum.
	ErrUnknownMoveKind = errors.New("localsearch: unknown move kind")
)

// SearchResult is the outcome of one solver invocation.
type SearchResult struct {
	// Tour is the best permutation of 0..n-1 found; the edge from Tour[n-1]
	// back to Tour[0] is implicit.
	Tour []int

	// Cost is the closed-cycle length of Tour, stabilized to 1e-9.
	Cost float64

	// Iterations reports the work actually performed: restarts for
	// Multistart, accepted moves for HillClimb, the analytic schedule length
	// for SimulatedAnnealing, and iterations executed for TabuSearch.
	Iterations int
}
