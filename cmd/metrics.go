package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/scholarsim/analysis"
)

var (
	metricsInput        string
	metricsOutput       string
	metricsDistribution bool
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute basic per-researcher citation metrics",
	Long: `Compute count/sum/mean/max/min citation metrics for each researcher
in a dataset and write them as CSV.

Input defaults to stdin, output defaults to stdout.

Examples:
  scholarsim metrics -i data/researchers.csv
  scholarsim generate | scholarsim metrics
  scholarsim metrics -i data/researchers.csv --distribution`,
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().StringVarP(&metricsInput, "input", "i", "", "Input file (default: stdin)")
	metricsCmd.Flags().StringVarP(&metricsOutput, "output", "o", "", "Output file (default: stdout)")
	metricsCmd.Flags().BoolVar(&metricsDistribution, "distribution", false, "Emit the citation-count distribution instead of per-researcher metrics")
}

func runMetrics(cmd *cobra.Command, args []string) (err error) {
	table, err := readTable(metricsInput)
	if err != nil {
		return err
	}

	var output io.Writer
	if metricsOutput != "" {
		f, err := os.Create(metricsOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	if metricsDistribution {
		dist, err := analysis.ComputeCitationDistribution(table)
		if err != nil {
			return err
		}
		writeDistribution(output, dist)
		slog.Info("computed citation distribution", "unique_values", len(dist))
		return nil
	}

	metrics, err := analysis.ComputeBasicMetrics(table)
	if err != nil {
		return err
	}
	if err := analysis.WriteMetricsCSV(output, metrics); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	slog.Info("computed basic metrics", "researchers", len(metrics), "papers", table.Len())
	return nil
}

func writeDistribution(w io.Writer, dist map[int]int) {
	citations := make([]int, 0, len(dist))
	for c := range dist {
		citations = append(citations, c)
	}
	sort.Ints(citations)

	fmt.Fprintln(w, "citations,papers")
	for _, c := range citations {
		fmt.Fprintf(w, "%d,%d\n", c, dist[c])
	}
}
