package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjaskula/metatsp/results"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored result records",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := results.NewMonitor(resultsDir).List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("no results stored yet")

				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}

			return nil
		},
	}
}
