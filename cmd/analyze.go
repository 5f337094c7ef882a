package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/scholarsim/analysis"
)

var (
	analyzeInput  string
	analyzeReport string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a dataset and write the text report",
	Long: `Compute per-researcher analyses (h-index, citation totals, year range,
journal count) and dataset-wide statistics, print the overall statistics,
and write the full analysis report.

Input defaults to stdin.

Examples:
  scholarsim analyze -i data/researchers.csv
  scholarsim analyze -i data/researchers.csv -o results/reports/analysis_report.txt`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Input file (default: stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeReport, "output", "o", "results/reports/analysis_report.txt", "Report output path")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	table, err := readTable(analyzeInput)
	if err != nil {
		return err
	}

	stats, err := analysis.CalculateOverallStatistics(table)
	if err != nil {
		return err
	}

	fmt.Printf("total_researchers: %d\n", stats.TotalResearchers)
	fmt.Printf("total_papers: %d\n", stats.TotalPapers)
	fmt.Printf("total_citations: %d\n", stats.TotalCitations)
	fmt.Printf("avg_citations_per_paper: %.2f\n", stats.AvgCitationsPerPaper)
	fmt.Printf("avg_papers_per_researcher: %.2f\n", stats.AvgPapersPerResearcher)
	fmt.Printf("publication_year_range: %s\n", stats.PublicationYearRange)
	fmt.Printf("unique_journals: %d\n", stats.UniqueJournals)

	if err := analysis.GenerateAnalysisReport(table, analyzeReport); err != nil {
		return err
	}

	slog.Info("analysis report written", "path", analyzeReport)
	return nil
}
