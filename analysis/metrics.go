package analysis

import (
	"encoding/csv"
	"io"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

// ResearcherMetrics holds the basic per-researcher citation aggregates.
type ResearcherMetrics struct {
	ResearcherID   int
	TotalPapers    int
	TotalCitations int
	AvgCitations   float64
	MaxCitations   int
	MinCitations   int
}

// Missing-value policy, applied consistently across this package: a row
// with no citation value still counts toward paper totals, but is excluded
// from citation sums, means, and extremes. Negative citation values are
// treated as ordinary data and flow through arithmetic unchanged.

// ComputeBasicMetrics computes count/sum/mean/max/min citation aggregates
// for each distinct researcher id, in first-appearance order. An empty
// table yields an empty slice. A table missing one of the researcher_id,
// paper_id, or citations columns yields a dataset.MissingFieldError.
func ComputeBasicMetrics(t *dataset.Table) ([]ResearcherMetrics, error) {
	if err := t.RequireColumns(dataset.ColResearcherID, dataset.ColPaperID, dataset.ColCitations); err != nil {
		return nil, err
	}

	ids, groups := t.GroupByResearcher()
	metrics := make([]ResearcherMetrics, 0, len(ids))
	for _, id := range ids {
		group := groups[id]
		m := ResearcherMetrics{
			ResearcherID: id,
			TotalPapers:  len(group),
		}

		cited := citedValues(group)
		if len(cited) > 0 {
			m.MaxCitations = cited[0]
			m.MinCitations = cited[0]
			for _, c := range cited {
				m.TotalCitations += c
				if c > m.MaxCitations {
					m.MaxCitations = c
				}
				if c < m.MinCitations {
					m.MinCitations = c
				}
			}
			m.AvgCitations = stat.Mean(toFloats(cited), nil)
		}

		metrics = append(metrics, m)
	}

	return metrics, nil
}

// ComputeCitationDistribution returns the frequency of each citation count
// across all rows that carry a citation value.
func ComputeCitationDistribution(t *dataset.Table) (map[int]int, error) {
	if err := t.RequireColumns(dataset.ColCitations); err != nil {
		return nil, err
	}

	dist := make(map[int]int)
	for _, r := range t.Records {
		if r.Citations != nil {
			dist[*r.Citations]++
		}
	}
	return dist, nil
}

// WriteMetricsCSV serializes per-researcher metrics as CSV.
func WriteMetricsCSV(w io.Writer, metrics []ResearcherMetrics) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"researcher_id", "total_papers", "total_citations", "avg_citations", "max_citations", "min_citations"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, m := range metrics {
		row := []string{
			strconv.Itoa(m.ResearcherID),
			strconv.Itoa(m.TotalPapers),
			strconv.Itoa(m.TotalCitations),
			formatFloat(m.AvgCitations),
			strconv.Itoa(m.MaxCitations),
			strconv.Itoa(m.MinCitations),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

func citedValues(records []dataset.PaperRecord) []int {
	values := make([]int, 0, len(records))
	for _, r := range records {
		if r.Citations != nil {
			values = append(values, *r.Citations)
		}
	}
	return values
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
