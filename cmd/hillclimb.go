package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wjaskula/metatsp/localsearch"
)

func newHillclimbCmd() *cobra.Command {
	var (
		instance string
		opts     = localsearch.DefaultMultistartOptions()
	)

	cmd := &cobra.Command{
		Use:   "hillclimb",
		Short: "Multistart hill climbing over the swap neighborhood",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMultistart(instance, opts)
		},
	}

	cmd.Flags().StringVarP(&instance, "instance", "i", "tsp48", "predefined instance (tsp48|tsp76|tsp127)")
	cmd.Flags().IntVar(&opts.NumStarts, "starts", opts.NumStarts, "number of independent random restarts")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "parallel restart workers (0 = all CPUs)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "RNG seed (0 = fixed default stream)")

	return cmd
}
