// Package localsearch - solver option structs, defaults, and validation.
//
// Each solver owns a dedicated options struct with a Default* constructor,
// mirroring the per-algorithm parameter surface:
//
//   - MultistartOptions — restart count, worker pool size, RNG seed.
//   - AnnealOptions     — temperature schedule, trials per level, seed, start.
//   - TabuOptions       — neighborhood, iteration/stagnation caps, tenure,
//     candidate sampling, seed, start.
//
// Validation policy:
//   - Absent limits are explicit zero values with a documented "0 ⇒ disabled"
//     or "0 ⇒ default" contract; negatives are always rejected.
//   - validate() runs before any search work; sentinels only (types.go).
package localsearch

import "math"

// MultistartOptions configures Multistart hill climbing.
//
// NumStarts – number of independent random restarts (must be > 0).
// Workers   – parallel restart workers; 0 ⇒ one worker per available CPU.
// Seed      – RNG seed for the restart tours; 0 ⇒ fixed default stream.
type MultistartOptions struct {
	NumStarts int
	Workers   int
	Seed      int64
}

// DefaultMultistartOptions returns the conventional multistart setup:
// 50 restarts, sequential-equivalent deterministic seeding, CPU-bound workers.
func DefaultMultistartOptions() MultistartOptions {
	return MultistartOptions{
		NumStarts: 50,
		Workers:   0,
		Seed:      0,
	}
}

// validate checks option consistency without touching matrices or tours.
func (o MultistartOptions) validate() error {
	if o.NumStarts <= 0 {
		return ErrBadNumStarts
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

// AnnealOptions configures SimulatedAnnealing.
//
// InitialTemp       – starting temperature (must exceed FinalTemp).
// FinalTemp         – stopping threshold; the loop runs while T > FinalTemp.
// Cooling           – geometric decay factor in (0,1); T ← Cooling·T per level.
// IterationsPerTemp – Metropolis trials per temperature level (≥ 1).
// Seed              – RNG seed; 0 ⇒ fixed default stream.
// Start             – optional starting permutation; nil ⇒ random tour.
type AnnealOptions struct {
	InitialTemp       float64
	FinalTemp         float64
	Cooling           float64
	IterationsPerTemp int
	Seed              int64
	Start             []int
}

// DefaultAnnealOptions returns the conventional annealing schedule:
// T: 1000 → 1e-3, α = 0.995, 100 trials per level.
func DefaultAnnealOptions() AnnealOptions {
	return AnnealOptions{
		InitialTemp:       1000.0,
		FinalTemp:         1e-3,
		Cooling:           0.995,
		IterationsPerTemp: 100,
		Seed:              0,
	}
}

// EstimatedIterations returns the analytic trial count of the schedule:
// ceil(log(FinalTemp/InitialTemp)/log(Cooling)) · IterationsPerTemp.
// The value is meaningful only for a valid option set.
func (o AnnealOptions) EstimatedIterations() int {
	if o.InitialTemp <= 0 || o.FinalTemp <= 0 || o.Cooling <= 0 || o.Cooling >= 1 {
		return 0
	}
	levels := math.Ceil(math.Log(o.FinalTemp/o.InitialTemp) / math.Log(o.Cooling))

	return int(levels) * o.IterationsPerTemp
}

// validate checks option consistency; Start (if any) is validated separately
// against the instance size by the solver.
func (o AnnealOptions) validate() error {
	if o.InitialTemp <= 0 || o.FinalTemp <= 0 || o.InitialTemp <= o.FinalTemp {
		return ErrBadTemperature
	}
	if o.Cooling <= 0 || o.Cooling >= 1 {
		return ErrBadCooling
	}
	if o.IterationsPerTemp < 1 {
		return ErrBadItersPerTemp
	}

	return nil
}

// TabuOptions configures TabuSearch.
//
// Neighborhood     – move kind scanned each iteration (swap/relocate/reverse).
// MaxIters         – hard iteration cap (must be > 0).
// MaxStagnantIters – stop after this many consecutive iterations without a
// global-best improvement; 0 ⇒ no stagnation limit.
// Tenure           – iterations a used move stays forbidden (must be > 0).
// MaxCandidates    – sample at most this many moves per iteration;
// 0 ⇒ exhaustive neighborhood scan.
// Seed             – RNG seed for sampling and the random start; 0 ⇒ default.
// Start            – optional starting permutation; nil ⇒ random tour.
type TabuOptions struct {
	Neighborhood     MoveKind
	MaxIters         int
	MaxStagnantIters int
	Tenure           int
	MaxCandidates    int
	Seed             int64
	Start            []int
}

// DefaultTabuOptions returns the conventional tabu setup: reverse (2-opt)
// neighborhood, 2000 iterations, 400-iteration stagnation cut-off, tenure 20,
// exhaustive scans.
func DefaultTabuOptions() TabuOptions {
	return TabuOptions{
		Neighborhood:     MoveReverse,
		MaxIters:         2000,
		MaxStagnantIters: 400,
		Tenure:           20,
		MaxCandidates:    0,
		Seed:             0,
	}
}

// validate checks option consistency without touching matrices or tours.
func (o TabuOptions) validate() error {
	if !o.Neighborhood.valid() {
		return ErrUnknownMoveKind
	}
	if o.MaxIters <= 0 {
		return ErrBadMaxIters
	}
	if o.MaxStagnantIters < 0 {
		return ErrBadStagnation
	}
	if o.Tenure <= 0 {
		return ErrBadTenure
	}
	if o.MaxCandidates < 0 {
		return ErrBadMaxCandidates
	}

	return nil
}
