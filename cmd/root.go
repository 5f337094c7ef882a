// Package cmd provides CLI commands for scholarsim.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "scholarsim",
	Short: "Generate and analyze synthetic publication datasets",
	Long: `Scholarsim synthesizes a fake academic-publication dataset, computes
per-researcher bibliometric indicators (h-index, citation totals,
productivity), and renders a text report and charts from the results.

Examples:
  scholarsim generate -o data/researchers.csv
  scholarsim metrics -i data/researchers.csv
  scholarsim analyze -i data/researchers.csv -o results/reports/analysis_report.txt
  scholarsim chart -i data/researchers.csv -d results/plots
  scholarsim pipeline -d results`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(profilesCmd)
}
