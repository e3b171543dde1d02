package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wjaskula/metatsp/localsearch"
)

// sweepConfig is the YAML schema for batch runs: a flat list of configured
// runs, executed in order. Omitted fields fall back to the algorithm's
// defaults, so a run entry only needs the knobs it overrides.
type sweepConfig struct {
	Runs []sweepRun `yaml:"runs"`
}

type sweepRun struct {
	Algorithm string `yaml:"algorithm"` // hillclimb | anneal | tabu
	Instance  string `yaml:"instance"`
	Seed      int64  `yaml:"seed"`

	// hillclimb
	Starts  int `yaml:"starts"`
	Workers int `yaml:"workers"`

	// anneal
	TStart       float64 `yaml:"t_start"`
	TEnd         float64 `yaml:"t_end"`
	Alpha        float64 `yaml:"alpha"`
	ItersPerTemp int     `yaml:"iters_per_temp"`

	// tabu
	Neighborhood  string `yaml:"neighborhood"`
	MaxIters      int    `yaml:"max_iters"`
	MaxStagnant   int    `yaml:"max_stagnant"`
	Tenure        int    `yaml:"tenure"`
	MaxCandidates int    `yaml:"max_candidates"`
}

func newSweepCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a YAML-defined batch of configured runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("sweep: read config: %w", err)
			}
			var cfg sweepConfig
			if err = yaml.Unmarshal(raw, &cfg); err != nil {
				return fmt.Errorf("sweep: parse config: %w", err)
			}
			if len(cfg.Runs) == 0 {
				return fmt.Errorf("sweep: config %s defines no runs", configPath)
			}

			for i, run := range cfg.Runs {
				log.Infof("sweep run %d/%d: %s on %s", i+1, len(cfg.Runs), run.Algorithm, run.Instance)
				if err = executeSweepRun(run); err != nil {
					return fmt.Errorf("sweep run %d (%s): %w", i+1, run.Algorithm, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "sweep.yaml", "path to the sweep configuration file")

	return cmd
}

// executeSweepRun maps one YAML entry onto the matching runner, filling
// defaults for omitted knobs.
func executeSweepRun(run sweepRun) error {
	switch run.Algorithm {
	case "hillclimb":
		opts := localsearch.DefaultMultistartOptions()
		opts.Seed = run.Seed
		if run.Starts != 0 {
			opts.NumStarts = run.Starts
		}
		if run.Workers != 0 {
			opts.Workers = run.Workers
		}

		return runMultistart(run.Instance, opts)

	case "anneal":
		opts := localsearch.DefaultAnnealOptions()
		opts.Seed = run.Seed
		if run.TStart != 0 {
			opts.InitialTemp = run.TStart
		}
		if run.TEnd != 0 {
			opts.FinalTemp = run.TEnd
		}
		if run.Alpha != 0 {
			opts.Cooling = run.Alpha
		}
		if run.ItersPerTemp != 0 {
			opts.IterationsPerTemp = run.ItersPerTemp
		}

		return runAnneal(run.Instance, opts)

	case "tabu":
		opts := localsearch.DefaultTabuOptions()
		opts.Seed = run.Seed
		if run.Neighborhood != "" {
			kind, err := localsearch.ParseMoveKind(run.Neighborhood)
			if err != nil {
				return err
			}
			opts.Neighborhood = kind
		}
		if run.MaxIters != 0 {
			opts.MaxIters = run.MaxIters
		}
		if run.MaxStagnant != 0 {
			opts.MaxStagnantIters = run.MaxStagnant
		}
		if run.Tenure != 0 {
			opts.Tenure = run.Tenure
		}
		if run.MaxCandidates != 0 {
			opts.MaxCandidates = run.MaxCandidates
		}

		return runTabu(run.Instance, opts)

	default:
		return fmt.Errorf("unknown algorithm %q (want hillclimb, anneal, or tabu)", run.Algorithm)
	}
}
