package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

// GenerateAnalysisReport renders the four-section analysis report for the
// table and writes it to path, creating parent directories as needed. The
// document is built fully in memory and written in one call, so a failure
// partway through formatting never leaves a truncated file behind.
func GenerateAnalysisReport(t *dataset.Table, path string) error {
	report, err := FormatAnalysisReport(t)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// FormatAnalysisReport builds the report document. Output is deterministic
// for a given table: no timestamps, and every ordering has a stable
// tie-break (first appearance in the input).
func FormatAnalysisReport(t *dataset.Table) (string, error) {
	analyses, err := AnalyzeResearcherMetrics(t)
	if err != nil {
		return "", err
	}
	stats, err := CalculateOverallStatistics(t)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("RESEARCHER METRICS ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	b.WriteString("Overall Statistics:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	writeOverallStatistics(&b, stats)

	b.WriteString("\nTop Researchers by H-index:\n")
	b.WriteString(strings.Repeat("-", 25) + "\n")
	for _, a := range TopResearchersByHIndex(analyses, 10) {
		fmt.Fprintf(&b, "Researcher %d (%s): H-index = %d, Papers = %d, Total Citations = %d, Years: %s\n",
			a.ResearcherID, a.AuthorName, a.HIndex, a.NumPapers, a.TotalCitations, a.PublicationYears)
	}

	b.WriteString("\nPublication Year Distribution:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, yc := range publicationsPerYear(t) {
		fmt.Fprintf(&b, "%d: %d papers\n", yc.year, yc.count)
	}

	b.WriteString("\nTop Journals by Publication Count:\n")
	b.WriteString(strings.Repeat("-", 35) + "\n")
	for _, jc := range topJournals(t, 10) {
		fmt.Fprintf(&b, "%s: %d papers\n", jc.journal, jc.count)
	}

	return b.String(), nil
}

func writeOverallStatistics(b *strings.Builder, stats *OverallStatistics) {
	fmt.Fprintf(b, "total_researchers: %d\n", stats.TotalResearchers)
	fmt.Fprintf(b, "total_papers: %d\n", stats.TotalPapers)
	fmt.Fprintf(b, "total_citations: %d\n", stats.TotalCitations)
	fmt.Fprintf(b, "avg_citations_per_paper: %s\n", formatFloat(stats.AvgCitationsPerPaper))
	fmt.Fprintf(b, "avg_papers_per_researcher: %s\n", formatFloat(stats.AvgPapersPerResearcher))
	fmt.Fprintf(b, "max_citations: %d\n", stats.MaxCitations)
	fmt.Fprintf(b, "min_citations: %d\n", stats.MinCitations)
	fmt.Fprintf(b, "publication_year_range: %s\n", stats.PublicationYearRange)
	fmt.Fprintf(b, "unique_journals: %d\n", stats.UniqueJournals)
	fmt.Fprintf(b, "avg_co_authors: %s\n", formatFloat(stats.AvgCoAuthors))
}

// TopResearchersByHIndex returns the n highest-ranked analyses by h-index.
// Ties keep the order of the input slice, which AnalyzeResearcherMetrics
// produces in first-appearance order.
func TopResearchersByHIndex(analyses []ResearcherAnalysis, n int) []ResearcherAnalysis {
	ranked := make([]ResearcherAnalysis, len(analyses))
	copy(ranked, analyses)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HIndex > ranked[j].HIndex
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

type yearCount struct {
	year  int
	count int
}

func publicationsPerYear(t *dataset.Table) []yearCount {
	counts := make(map[int]int)
	for _, r := range t.Records {
		counts[r.Year]++
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]yearCount, 0, len(years))
	for _, y := range years {
		out = append(out, yearCount{year: y, count: counts[y]})
	}
	return out
}

type journalCount struct {
	journal string
	count   int
}

func topJournals(t *dataset.Table, n int) []journalCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range t.Records {
		if _, seen := counts[r.Journal]; !seen {
			order = append(order, r.Journal)
		}
		counts[r.Journal]++
	}

	ranked := make([]journalCount, 0, len(order))
	for _, j := range order {
		ranked = append(ranked, journalCount{journal: j, count: counts[j]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
