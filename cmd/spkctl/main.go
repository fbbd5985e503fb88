package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-spk/internal/config"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "spkctl",
		Short: "Rank and cluster student assessment sheets",
		Long: `spkctl runs the SAW ranking and k-means profiling pipeline locally.

Examples:
  # Rank a sheet with equal weights
  spkctl rank nilai.csv --w-modul 1 --w-utp 1 --w-uap 1 --w-keaktifan 1

  # Same, as the JSON envelope the HTTP service returns
  spkctl rank nilai.xlsx --w-modul 0.4 --w-utp 0.2 --w-uap 0.3 --w-keaktifan 0.1 --json

  # Show the most recent runs recorded by spkd
  spkctl runs --limit 20
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg, err := config.Load()
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	rootCmd.AddCommand(newRankCmd(cfg), newRunsCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func fmtScore(v float64) string { return fmt.Sprintf("%.4f", v) }
