package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/scholarsim/charts"
)

var (
	chartInput string
	chartDir   string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render charts from a dataset",
	Long: `Render the chart set for a dataset: citation distribution histogram,
researcher productivity scatter, citations vs co-authors scatter,
publication trend, and journal distribution bars.

Input defaults to stdin.

Examples:
  scholarsim chart -i data/researchers.csv
  scholarsim chart -i data/researchers.csv -d results/plots`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartInput, "input", "i", "", "Input file (default: stdin)")
	chartCmd.Flags().StringVarP(&chartDir, "dir", "d", "results/plots", "Output directory for charts")
}

func runChart(cmd *cobra.Command, args []string) error {
	table, err := readTable(chartInput)
	if err != nil {
		return err
	}

	if err := charts.RenderAll(table, chartDir); err != nil {
		return err
	}

	slog.Info("charts rendered", "dir", chartDir, "papers", table.Len())
	return nil
}
