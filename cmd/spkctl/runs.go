package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-spk/internal/config"
	"github.com/mind-engage/mindengage-spk/internal/db"
	"github.com/mind-engage/mindengage-spk/internal/runlog"
)

func newRunsCmd(cfg config.Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent ranking runs from the run log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("open run log: %w", err)
			}
			defer dbh.Close()
			runs, err := runlog.NewRepo(dbh).List(ctx, limit)
			if err != nil {
				return err
			}
			renderRuns(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	return cmd
}

func renderRuns(out io.Writer, runs []runlog.Run) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Run", "Time", "Students", "Modules", "Weights", "Cluster sizes"})
	for _, r := range runs {
		sizes := make([]string, len(r.ClusterSizes))
		for i, s := range r.ClusterSizes {
			sizes[i] = strconv.Itoa(s)
		}
		table.Append([]string{
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			strconv.Itoa(r.Students),
			strconv.Itoa(len(r.ModuleColumns)),
			fmt.Sprintf("%g/%g/%g/%g", r.Weights.Modul, r.Weights.UTP, r.Weights.UAP, r.Weights.Keaktifan),
			strings.Join(sizes, "/"),
		})
	}
	table.Render()
}
