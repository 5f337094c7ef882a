package analysis

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

func sampleTable() *dataset.Table {
	records := []dataset.PaperRecord{
		{ResearcherID: 1, AuthorName: "Jane Doe", PaperID: "R1_P1", Citations: dataset.Int(50), Year: 1999, Journal: "Acme Journal", CoAuthorsCount: 2},
		{ResearcherID: 1, AuthorName: "Jane Doe", PaperID: "R1_P2", Citations: dataset.Int(100), Year: 2003, Journal: "Beta Journal", CoAuthorsCount: 3},
		{ResearcherID: 2, AuthorName: "Bob Roe", PaperID: "R2_P1", Citations: dataset.Int(150), Year: 2010, Journal: "Acme Journal", CoAuthorsCount: 1},
		{ResearcherID: 2, AuthorName: "Bob Roe", PaperID: "R2_P2", Citations: dataset.Int(200), Year: 2012, Journal: "Acme Journal", CoAuthorsCount: 2},
	}
	return dataset.NewTable(records, dataset.Columns())
}

func TestComputeBasicMetrics(t *testing.T) {
	metrics, err := ComputeBasicMetrics(sampleTable())
	if err != nil {
		t.Fatalf("ComputeBasicMetrics() error = %v", err)
	}

	if len(metrics) != 2 {
		t.Fatalf("len(metrics) = %d, want 2", len(metrics))
	}

	r1 := metrics[0]
	if r1.ResearcherID != 1 {
		t.Fatalf("first researcher = %d, want 1 (first-appearance order)", r1.ResearcherID)
	}
	if r1.TotalPapers != 2 || r1.TotalCitations != 150 || r1.AvgCitations != 75.0 ||
		r1.MaxCitations != 100 || r1.MinCitations != 50 {
		t.Errorf("researcher 1 metrics = %+v", r1)
	}

	r2 := metrics[1]
	if r2.TotalCitations != 350 || r2.AvgCitations != 175.0 {
		t.Errorf("researcher 2 metrics = %+v", r2)
	}
}

func TestComputeBasicMetricsPaperTotal(t *testing.T) {
	table := sampleTable()
	metrics, err := ComputeBasicMetrics(table)
	if err != nil {
		t.Fatalf("ComputeBasicMetrics() error = %v", err)
	}

	total := 0
	for _, m := range metrics {
		total += m.TotalPapers
	}
	if total != table.Len() {
		t.Errorf("sum of TotalPapers = %d, want %d", total, table.Len())
	}
}

func TestComputeBasicMetricsEmptyTable(t *testing.T) {
	table := dataset.NewTable(nil, dataset.Columns())
	metrics, err := ComputeBasicMetrics(table)
	if err != nil {
		t.Fatalf("ComputeBasicMetrics() error = %v", err)
	}
	if len(metrics) != 0 {
		t.Errorf("len(metrics) = %d, want 0", len(metrics))
	}
}

func TestComputeBasicMetricsMissingColumn(t *testing.T) {
	table := dataset.NewTable(nil, []string{dataset.ColResearcherID, dataset.ColPaperID})
	_, err := ComputeBasicMetrics(table)

	var missing dataset.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if missing.Field != dataset.ColCitations {
		t.Errorf("missing field = %q, want %q", missing.Field, dataset.ColCitations)
	}
}

func TestComputeBasicMetricsMissingCitations(t *testing.T) {
	records := []dataset.PaperRecord{
		{ResearcherID: 1, PaperID: "R1_P1", Citations: nil},
		{ResearcherID: 1, PaperID: "R1_P2", Citations: dataset.Int(100)},
		{ResearcherID: 2, PaperID: "R2_P1", Citations: dataset.Int(150)},
		{ResearcherID: 3, PaperID: "R3_P1", Citations: nil},
	}
	table := dataset.NewTable(records, dataset.Columns())

	metrics, err := ComputeBasicMetrics(table)
	if err != nil {
		t.Fatalf("ComputeBasicMetrics() error = %v", err)
	}
	if len(metrics) != 3 {
		t.Fatalf("len(metrics) = %d, want 3", len(metrics))
	}

	// Missing value excluded from sum/mean but the row still counts.
	r1 := metrics[0]
	if r1.TotalPapers != 2 || r1.TotalCitations != 100 || r1.AvgCitations != 100.0 {
		t.Errorf("researcher 1 metrics = %+v", r1)
	}

	// A group with no citation values aggregates to zeros.
	r3 := metrics[2]
	if r3.TotalPapers != 1 || r3.TotalCitations != 0 || r3.AvgCitations != 0 {
		t.Errorf("researcher 3 metrics = %+v", r3)
	}
}

func TestComputeBasicMetricsNegativeCitations(t *testing.T) {
	records := []dataset.PaperRecord{
		{ResearcherID: 1, PaperID: "R1_P1", Citations: dataset.Int(-10)},
		{ResearcherID: 1, PaperID: "R1_P2", Citations: dataset.Int(100)},
	}
	table := dataset.NewTable(records, dataset.Columns())

	metrics, err := ComputeBasicMetrics(table)
	if err != nil {
		t.Fatalf("ComputeBasicMetrics() error = %v", err)
	}

	r1 := metrics[0]
	if r1.MinCitations != -10 {
		t.Errorf("MinCitations = %d, want -10", r1.MinCitations)
	}
	if r1.TotalCitations != 90 {
		t.Errorf("TotalCitations = %d, want 90", r1.TotalCitations)
	}
	if r1.AvgCitations != 45.0 {
		t.Errorf("AvgCitations = %f, want 45.0", r1.AvgCitations)
	}
}

func TestComputeCitationDistribution(t *testing.T) {
	records := []dataset.PaperRecord{
		{ResearcherID: 1, PaperID: "R1_P1", Citations: dataset.Int(50)},
		{ResearcherID: 1, PaperID: "R1_P2", Citations: dataset.Int(50)},
		{ResearcherID: 2, PaperID: "R2_P1", Citations: dataset.Int(150)},
		{ResearcherID: 2, PaperID: "R2_P2", Citations: nil},
	}
	table := dataset.NewTable(records, dataset.Columns())

	dist, err := ComputeCitationDistribution(table)
	if err != nil {
		t.Fatalf("ComputeCitationDistribution() error = %v", err)
	}

	if dist[50] != 2 {
		t.Errorf("dist[50] = %d, want 2", dist[50])
	}
	if dist[150] != 1 {
		t.Errorf("dist[150] = %d, want 1", dist[150])
	}
	if len(dist) != 2 {
		t.Errorf("len(dist) = %d, want 2", len(dist))
	}
}

func TestWriteMetricsCSV(t *testing.T) {
	metrics := []ResearcherMetrics{
		{ResearcherID: 1, TotalPapers: 2, TotalCitations: 150, AvgCitations: 75, MaxCitations: 100, MinCitations: 50},
	}

	var buf bytes.Buffer
	if err := WriteMetricsCSV(&buf, metrics); err != nil {
		t.Fatalf("WriteMetricsCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("output lines = %d, want 2", len(lines))
	}
	if lines[0] != "researcher_id,total_papers,total_citations,avg_citations,max_citations,min_citations" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,2,150,75.00,100,50" {
		t.Errorf("row = %q", lines[1])
	}
}
