// Package cmd wires the metatsp command-line interface: per-algorithm
// subcommands over the localsearch engine, plus batch sweeps and result
// listing. All I/O, logging, and configuration lives here; the engine
// packages stay silent.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dataDir    string
	resultsDir string
)

// Execute is the entry point to running the CLI.
func Execute(version string) {
	// Optional .env next to the binary; absence is fine.
	_ = godotenv.Load()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp: true,
	})

	rootCmd := &cobra.Command{
		Use:          "metatsp",
		Short:        "Approximate TSP solvers: multistart hill climbing, simulated annealing, tabu search.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", envOr("METATSP_DATA_DIR", "data"), "directory with instance files")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", envOr("METATSP_RESULTS_DIR", "results"), "directory for result records")

	rootCmd.AddCommand(
		newHillclimbCmd(),
		newAnnealCmd(),
		newTabuCmd(),
		newSweepCmd(),
		newListCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// envOr returns the environment value for key, or def when unset/empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
