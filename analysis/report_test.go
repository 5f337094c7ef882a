package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

func reportTable() *dataset.Table {
	records := []dataset.PaperRecord{
		{ResearcherID: 1, AuthorName: "Jane Doe", PaperID: "R1_P1", Citations: dataset.Int(50), Year: 1999, Journal: "Acme Journal", CoAuthorsCount: 2},
		{ResearcherID: 1, AuthorName: "Jane Doe", PaperID: "R1_P2", Citations: dataset.Int(100), Year: 2003, Journal: "Acme Journal", CoAuthorsCount: 3},
		{ResearcherID: 2, AuthorName: "Bob Roe", PaperID: "R2_P1", Citations: dataset.Int(150), Year: 2010, Journal: "Beta Journal", CoAuthorsCount: 1},
		{ResearcherID: 2, AuthorName: "Bob Roe", PaperID: "R2_P2", Citations: dataset.Int(200), Year: 1999, Journal: "Acme Journal", CoAuthorsCount: 2},
		{ResearcherID: 3, AuthorName: "Eve Poe", PaperID: "R3_P1", Citations: dataset.Int(5), Year: 2010, Journal: "Gamma Journal", CoAuthorsCount: 4},
	}
	return dataset.NewTable(records, dataset.Columns())
}

func TestGenerateAnalysisReport(t *testing.T) {
	table := reportTable()
	path := filepath.Join(t.TempDir(), "reports", "analysis_report.txt")

	if err := GenerateAnalysisReport(table, path); err != nil {
		t.Fatalf("GenerateAnalysisReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	report := string(data)

	sections := []string{
		"RESEARCHER METRICS ANALYSIS REPORT",
		"Overall Statistics:",
		"Top Researchers by H-index:",
		"Publication Year Distribution:",
		"Top Journals by Publication Count:",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(report, section)
		if idx < 0 {
			t.Fatalf("section %q missing from report", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}

	for _, line := range []string{
		"total_researchers: 3",
		"total_papers: 5",
		"total_citations: 505",
		"publication_year_range: 1999-2010",
		"unique_journals: 3",
		"1999: 2 papers",
		"2003: 1 papers",
		"2010: 2 papers",
		"Acme Journal: 3 papers",
	} {
		if !strings.Contains(report, line) {
			t.Errorf("report missing line %q", line)
		}
	}
}

func TestGenerateAnalysisReportIdempotent(t *testing.T) {
	table := reportTable()
	dir := t.TempDir()

	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	if err := GenerateAnalysisReport(table, first); err != nil {
		t.Fatalf("first report: %v", err)
	}
	if err := GenerateAnalysisReport(table, second); err != nil {
		t.Fatalf("second report: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("reports for the same table differ between runs")
	}
}

func TestReportTopResearchersRoundTrip(t *testing.T) {
	table := reportTable()

	report, err := FormatAnalysisReport(table)
	if err != nil {
		t.Fatalf("FormatAnalysisReport() error = %v", err)
	}

	analyses, err := AnalyzeResearcherMetrics(table)
	if err != nil {
		t.Fatalf("AnalyzeResearcherMetrics() error = %v", err)
	}

	// Every top-10 entry must appear in the report exactly as ranked.
	lines := strings.Split(report, "\n")
	var got []string
	for _, line := range lines {
		if strings.HasPrefix(line, "Researcher ") {
			got = append(got, line)
		}
	}

	want := TopResearchersByHIndex(analyses, 10)
	if len(got) != len(want) {
		t.Fatalf("report researcher lines = %d, want %d", len(got), len(want))
	}
	for i, a := range want {
		line := fmt.Sprintf("Researcher %d (%s): H-index = %d, Papers = %d, Total Citations = %d, Years: %s",
			a.ResearcherID, a.AuthorName, a.HIndex, a.NumPapers, a.TotalCitations, a.PublicationYears)
		if got[i] != line {
			t.Errorf("line %d = %q, want %q", i, got[i], line)
		}
	}
}

func TestTopResearchersByHIndexStableTieBreak(t *testing.T) {
	analyses := []ResearcherAnalysis{
		{ResearcherID: 5, HIndex: 2},
		{ResearcherID: 1, HIndex: 3},
		{ResearcherID: 9, HIndex: 2},
		{ResearcherID: 4, HIndex: 2},
	}

	top := TopResearchersByHIndex(analyses, 10)
	wantOrder := []int{1, 5, 9, 4}
	for i, want := range wantOrder {
		if top[i].ResearcherID != want {
			t.Fatalf("rank %d = researcher %d, want %d", i, top[i].ResearcherID, want)
		}
	}

	// The input slice keeps its original order.
	if analyses[0].ResearcherID != 5 {
		t.Error("TopResearchersByHIndex mutated its input")
	}
}
