package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wjaskula/metatsp/localsearch"
)

func newTabuCmd() *cobra.Command {
	var (
		instance     string
		neighborhood string
		opts         = localsearch.DefaultTabuOptions()
	)

	cmd := &cobra.Command{
		Use:   "tabu",
		Short: "Tabu search with tenure-based memory and aspiration",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := localsearch.ParseMoveKind(neighborhood)
			if err != nil {
				return err
			}
			opts.Neighborhood = kind

			return runTabu(instance, opts)
		},
	}

	cmd.Flags().StringVarP(&instance, "instance", "i", "tsp48", "predefined instance (tsp48|tsp76|tsp127)")
	cmd.Flags().StringVar(&neighborhood, "neighborhood", opts.Neighborhood.String(), "move kind: swap|relocate|reverse")
	cmd.Flags().IntVar(&opts.MaxIters, "max-iters", opts.MaxIters, "iteration cap")
	cmd.Flags().IntVar(&opts.MaxStagnantIters, "max-stagnant", opts.MaxStagnantIters, "stagnation cap (0 = disabled)")
	cmd.Flags().IntVar(&opts.Tenure, "tenure", opts.Tenure, "iterations a used move stays tabu")
	cmd.Flags().IntVar(&opts.MaxCandidates, "max-candidates", opts.MaxCandidates, "sampled candidates per iteration (0 = exhaustive)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "RNG seed (0 = fixed default stream)")

	return cmd
}
