// Package localsearch provides approximate TSP solvers built on a common
// tour / distance-matrix / move abstraction.
//
// It includes three interchangeable metaheuristics over a distance matrix
// (lvlath matrix.Matrix, possibly asymmetric):
//
//   - Multistart — independent hill-climbing restarts, reduced to the best.
//
//   - Per restart: steepest descent over the swap neighborhood, O(iter·n³).
//
//   - Restarts run on parallel workers with derived RNG streams.
//
//   - SimulatedAnnealing — single-trajectory Metropolis search.
//
//   - Geometric cooling T ← α·T, configurable trials per temperature level.
//
//   - TabuSearch — trajectory search with short-term move memory.
//
//   - Neighborhoods: swap / relocate / reverse; exhaustive or sampled.
//
//   - Tenure-based expiry, aspiration override, stagnation cut-off.
//
// All solvers accept a complete non-negative distance matrix:
//   - A distance of math.Inf(1) signals “no direct edge”; candidate moves
//     that rely on such edges simply never win the selection.
//   - Tours are open permutations of 0..n-1; the closing edge back to the
//     first city is implicit and always included in reported costs.
//
// Determinism: every randomized solver takes an explicit seed (seed==0 maps
// to a fixed default stream), so identical parameters reproduce identical
// tours, costs, and iteration counts.
//
// Use this package when you need good tours fast on small-to-medium
// instances; it never certifies optimality.
package localsearch
