package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wjaskula/metatsp/localsearch"
)

func newAnnealCmd() *cobra.Command {
	var (
		instance string
		opts     = localsearch.DefaultAnnealOptions()
	)

	cmd := &cobra.Command{
		Use:   "anneal",
		Short: "Simulated annealing with geometric cooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnneal(instance, opts)
		},
	}

	cmd.Flags().StringVarP(&instance, "instance", "i", "tsp48", "predefined instance (tsp48|tsp76|tsp127)")
	cmd.Flags().Float64Var(&opts.InitialTemp, "t-start", opts.InitialTemp, "initial temperature")
	cmd.Flags().Float64Var(&opts.FinalTemp, "t-end", opts.FinalTemp, "final temperature (stop threshold)")
	cmd.Flags().Float64Var(&opts.Cooling, "alpha", opts.Cooling, "geometric cooling factor in (0,1)")
	cmd.Flags().IntVar(&opts.IterationsPerTemp, "iters-per-temp", opts.IterationsPerTemp, "Metropolis trials per temperature level")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "RNG seed (0 = fixed default stream)")

	return cmd
}
