package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

// ResearcherAnalysis combines the h-index with descriptive metadata for
// one researcher.
type ResearcherAnalysis struct {
	ResearcherID   int
	AuthorName     string
	HIndex         int
	TotalCitations int
	NumPapers      int
	AvgCitations   float64
	MaxCitations   int
	// PublicationYears is the "min-max" year range, or "N/A" without records.
	PublicationYears string
	UniqueJournals   int
}

// OverallStatistics summarizes the whole dataset.
type OverallStatistics struct {
	TotalResearchers       int
	TotalPapers            int
	TotalCitations         int
	AvgCitationsPerPaper   float64
	AvgPapersPerResearcher float64
	MaxCitations           int
	MinCitations           int
	PublicationYearRange   string
	UniqueJournals         int
	AvgCoAuthors           float64
}

// AnalyzeResearcherMetrics computes a ResearcherAnalysis for each distinct
// researcher id, in first-appearance order. The h-index is computed over
// the rows that carry a citation value, per the package missing-value
// policy.
func AnalyzeResearcherMetrics(t *dataset.Table) ([]ResearcherAnalysis, error) {
	err := t.RequireColumns(
		dataset.ColResearcherID,
		dataset.ColAuthorName,
		dataset.ColCitations,
		dataset.ColYear,
		dataset.ColJournal,
	)
	if err != nil {
		return nil, err
	}

	ids, groups := t.GroupByResearcher()
	analyses := make([]ResearcherAnalysis, 0, len(ids))
	for _, id := range ids {
		group := groups[id]
		cited := citedValues(group)

		a := ResearcherAnalysis{
			ResearcherID:     id,
			AuthorName:       group[0].AuthorName,
			HIndex:           HIndex(cited),
			NumPapers:        len(group),
			PublicationYears: yearRange(group),
			UniqueJournals:   distinctJournals(group),
		}
		if len(cited) > 0 {
			a.MaxCitations = cited[0]
			for _, c := range cited {
				a.TotalCitations += c
				if c > a.MaxCitations {
					a.MaxCitations = c
				}
			}
			a.AvgCitations = stat.Mean(toFloats(cited), nil)
		}

		analyses = append(analyses, a)
	}

	return analyses, nil
}

// CalculateOverallStatistics computes dataset-wide summary figures. A table
// with zero researchers yields a DegenerateAggregationError instead of a
// silent NaN in the per-researcher average.
func CalculateOverallStatistics(t *dataset.Table) (*OverallStatistics, error) {
	err := t.RequireColumns(
		dataset.ColResearcherID,
		dataset.ColCitations,
		dataset.ColYear,
		dataset.ColJournal,
		dataset.ColCoAuthorsCount,
	)
	if err != nil {
		return nil, err
	}

	ids, _ := t.GroupByResearcher()
	if len(ids) == 0 {
		return nil, DegenerateAggregationError{Quantity: "avg_papers_per_researcher"}
	}

	stats := &OverallStatistics{
		TotalResearchers:       len(ids),
		TotalPapers:            t.Len(),
		PublicationYearRange:   yearRange(t.Records),
		UniqueJournals:         distinctJournals(t.Records),
		AvgPapersPerResearcher: float64(t.Len()) / float64(len(ids)),
	}

	cited := citedValues(t.Records)
	if len(cited) > 0 {
		stats.MaxCitations = cited[0]
		stats.MinCitations = cited[0]
		for _, c := range cited {
			stats.TotalCitations += c
			if c > stats.MaxCitations {
				stats.MaxCitations = c
			}
			if c < stats.MinCitations {
				stats.MinCitations = c
			}
		}
		stats.AvgCitationsPerPaper = stat.Mean(toFloats(cited), nil)
	}

	coAuthors := make([]float64, 0, t.Len())
	for _, r := range t.Records {
		coAuthors = append(coAuthors, float64(r.CoAuthorsCount))
	}
	if len(coAuthors) > 0 {
		stats.AvgCoAuthors = stat.Mean(coAuthors, nil)
	}

	return stats, nil
}

func yearRange(records []dataset.PaperRecord) string {
	if len(records) == 0 {
		return "N/A"
	}
	minYear, maxYear := records[0].Year, records[0].Year
	for _, r := range records {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	return fmt.Sprintf("%d-%d", minYear, maxYear)
}

func distinctJournals(records []dataset.PaperRecord) int {
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		seen[r.Journal] = true
	}
	return len(seen)
}
