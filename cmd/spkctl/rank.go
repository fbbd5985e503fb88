package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-spk/internal/config"
	"github.com/mind-engage/mindengage-spk/internal/ingest"
	"github.com/mind-engage/mindengage-spk/internal/spk"
)

func newRankCmd(cfg config.Config) *cobra.Command {
	var (
		w        spk.Weights
		seed     int64
		restarts int
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "rank FILE",
		Short: "Rank a CSV or XLSX sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"w-modul", "w-utp", "w-uap", "w-keaktifan"} {
				if !cmd.Flags().Changed(name) {
					return fmt.Errorf("--%s is required", name)
				}
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			table, err := ingest.Read(args[0], data)
			if err != nil {
				return err
			}
			eng := spk.NewEngine(
				spk.WithSeed(seed),
				spk.WithRestarts(restarts),
				spk.WithMaxIterations(cfg.Cluster.MaxIter),
				spk.WithTolerance(cfg.Cluster.Tolerance),
			)
			res, err := eng.Compute(cmd.Context(), table, w)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			renderResult(out, res)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&w.Modul, "w-modul", 0, "weight of the module average")
	f.Float64Var(&w.UTP, "w-utp", 0, "weight of UTP")
	f.Float64Var(&w.UAP, "w-uap", 0, "weight of UAP")
	f.Float64Var(&w.Keaktifan, "w-keaktifan", 0, "weight of Keaktifan")
	f.Int64Var(&seed, "seed", cfg.Cluster.Seed, "k-means seed")
	f.IntVar(&restarts, "restarts", cfg.Cluster.Restarts, "k-means restarts")
	f.BoolVar(&asJSON, "json", false, "print the JSON envelope")
	return cmd
}

func renderResult(out io.Writer, res spk.Result) {
	fmt.Fprintln(out, color.CyanString(res.Insight))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "NIM", "Nama", "Rata_Modul", "UTP", "UAP", "Keaktifan", "Skor_Akhir", "Cluster"})
	for i, r := range res.Data {
		table.Append([]string{
			strconv.Itoa(i + 1),
			r.NIM,
			r.Nama,
			fmtScore(r.RataModul),
			fmtScore(r.UTP),
			fmtScore(r.UAP),
			fmtScore(r.Keaktifan),
			fmtScore(r.SkorAkhir),
			strconv.Itoa(r.Cluster),
		})
	}
	table.Render()

	fmt.Fprintln(out, color.YellowString("\nCluster profiles"))
	prof := tablewriter.NewWriter(out)
	prof.SetHeader([]string{"Cluster", "Size", "Rata_Modul", "UTP", "UAP", "Keaktifan"})
	for _, c := range res.Clusters {
		prof.Append([]string{
			strconv.Itoa(c.Cluster),
			strconv.Itoa(c.Size),
			fmtScore(c.Centroid.RataModul),
			fmtScore(c.Centroid.UTP),
			fmtScore(c.Centroid.UAP),
			fmtScore(c.Centroid.Keaktifan),
		})
	}
	prof.Render()
}
