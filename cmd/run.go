package cmd

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath/matrix"
	log "github.com/sirupsen/logrus"

	"github.com/wjaskula/metatsp/dataset"
	"github.com/wjaskula/metatsp/localsearch"
	"github.com/wjaskula/metatsp/results"
)

// loadInstance resolves an instance name and loads its matrix from dataDir.
func loadInstance(name string) (dataset.Instance, *matrix.Dense, error) {
	inst, err := dataset.ParseInstance(name)
	if err != nil {
		return 0, nil, err
	}
	dist, err := inst.Load(dataDir)
	if err != nil {
		return 0, nil, err
	}
	log.Debugf("loaded %s (%d cities) from %s", inst.DisplayName(), inst.Cities(), dataDir)

	return inst, dist, nil
}

// persist saves the finished record and reports the outcome.
func persist(rec *results.Record) error {
	name, err := results.NewMonitor(resultsDir).Save(rec)
	if err != nil {
		return err
	}
	log.Infof("saved result to %s", name)
	log.Infof("best route length: %.2f", rec.RouteLength)
	log.Infof("execution time: %d ms", rec.ExecutionTimeMS)

	return nil
}

// runMultistart executes multistart hill climbing on one instance and
// persists the record.
func runMultistart(instance string, opts localsearch.MultistartOptions) error {
	inst, dist, err := loadInstance(instance)
	if err != nil {
		return err
	}

	rec := results.NewRecord("ihc").
		WithDataset(inst.DisplayName(), inst.Cities()).
		WithParameter("num_starts", strconv.Itoa(opts.NumStarts)).
		WithParameter("workers", strconv.Itoa(opts.Workers)).
		WithParameter("seed", strconv.FormatInt(opts.Seed, 10))

	log.Info("running multistart hill climbing...")
	var runErr error
	res, dur := results.Timed(func() localsearch.SearchResult {
		r, e := localsearch.Multistart(dist, opts)
		runErr = e

		return r
	})
	if runErr != nil {
		return fmt.Errorf("multistart: %w", runErr)
	}

	rec.SetResult(res.Cost, res.Tour).
		SetExecutionTime(dur).
		SetIterations(res.Iterations)

	return persist(rec)
}

// runAnneal executes simulated annealing on one instance and persists the
// record.
func runAnneal(instance string, opts localsearch.AnnealOptions) error {
	inst, dist, err := loadInstance(instance)
	if err != nil {
		return err
	}

	rec := results.NewRecord("sa").
		WithDataset(inst.DisplayName(), inst.Cities()).
		WithParameter("t_start", strconv.FormatFloat(opts.InitialTemp, 'g', -1, 64)).
		WithParameter("t_end", strconv.FormatFloat(opts.FinalTemp, 'g', -1, 64)).
		WithParameter("alpha", strconv.FormatFloat(opts.Cooling, 'g', -1, 64)).
		WithParameter("iters_per_temp", strconv.Itoa(opts.IterationsPerTemp)).
		WithParameter("seed", strconv.FormatInt(opts.Seed, 10))

	log.Infof("running simulated annealing: t_start=%g t_end=%g alpha=%g iters_per_temp=%d",
		opts.InitialTemp, opts.FinalTemp, opts.Cooling, opts.IterationsPerTemp)
	var runErr error
	res, dur := results.Timed(func() localsearch.SearchResult {
		r, e := localsearch.SimulatedAnnealing(dist, opts)
		runErr = e

		return r
	})
	if runErr != nil {
		return fmt.Errorf("anneal: %w", runErr)
	}

	rec.SetResult(res.Cost, res.Tour).
		SetExecutionTime(dur).
		SetIterations(res.Iterations)

	return persist(rec)
}

// runTabu executes tabu search on one instance and persists the record.
func runTabu(instance string, opts localsearch.TabuOptions) error {
	inst, dist, err := loadInstance(instance)
	if err != nil {
		return err
	}

	rec := results.NewRecord("tabu").
		WithDataset(inst.DisplayName(), inst.Cities()).
		WithParameter("neighborhood", opts.Neighborhood.String()).
		WithParameter("max_iters", strconv.Itoa(opts.MaxIters)).
		WithParameter("tabu_tenure", strconv.Itoa(opts.Tenure)).
		WithParameter("max_stagnant", strconv.Itoa(opts.MaxStagnantIters)).
		WithParameter("max_candidates", strconv.Itoa(opts.MaxCandidates)).
		WithParameter("seed", strconv.FormatInt(opts.Seed, 10))

	log.Infof("running tabu search: neighborhood=%s max_iters=%d tenure=%d",
		opts.Neighborhood, opts.MaxIters, opts.Tenure)
	var runErr error
	res, dur := results.Timed(func() localsearch.SearchResult {
		r, e := localsearch.TabuSearch(dist, opts)
		runErr = e

		return r
	})
	if runErr != nil {
		return fmt.Errorf("tabu: %w", runErr)
	}

	rec.SetResult(res.Cost, res.Tour).
		SetExecutionTime(dur).
		SetIterations(res.Iterations).
		WithMetric("iterations_performed", float64(res.Iterations))

	return persist(rec)
}
