// Package synth generates the synthetic publication dataset.
package synth

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

// Params controls dataset generation. All randomness is drawn from a
// single source seeded with Seed, so equal params produce byte-identical
// datasets.
type Params struct {
	// Researchers is the number of distinct researchers to generate.
	Researchers int `yaml:"researchers"`

	// MinPapers and MaxPapers bound the papers per researcher (inclusive).
	MinPapers int `yaml:"min_papers"`
	MaxPapers int `yaml:"max_papers"`

	// MaxCitations is the upper bound on citations per paper (inclusive).
	MaxCitations int `yaml:"max_citations"`

	// StartYear and EndYear bound publication years (inclusive).
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`

	// Seed initializes the random source.
	Seed uint64 `yaml:"seed"`
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		Researchers:  20,
		MinPapers:    5,
		MaxPapers:    50,
		MaxCitations: 500,
		StartYear:    1980,
		EndYear:      2023,
		Seed:         42,
	}
}

// Validate reports the first invalid parameter, if any.
func (p Params) Validate() error {
	if p.Researchers < 0 {
		return fmt.Errorf("researchers must be non-negative, got %d", p.Researchers)
	}
	if p.MinPapers < 1 || p.MaxPapers < p.MinPapers {
		return fmt.Errorf("paper bounds %d..%d invalid", p.MinPapers, p.MaxPapers)
	}
	if p.MaxCitations < 0 {
		return fmt.Errorf("max citations must be non-negative, got %d", p.MaxCitations)
	}
	if p.EndYear < p.StartYear {
		return fmt.Errorf("year bounds %d..%d invalid", p.StartYear, p.EndYear)
	}
	return nil
}

// Generate builds a dataset table from p. The random source is local to
// the call; no global state is seeded or consumed.
func Generate(p Params) (*dataset.Table, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation params: %w", err)
	}

	faker := gofakeit.New(p.Seed)

	var records []dataset.PaperRecord
	for researcherID := 1; researcherID <= p.Researchers; researcherID++ {
		authorName := faker.Name()
		numPapers := faker.Number(p.MinPapers, p.MaxPapers)

		for paperID := 1; paperID <= numPapers; paperID++ {
			coAuthors := faker.Number(1, 9)
			authors := make([]string, 0, coAuthors+1)
			authors = append(authors, authorName)
			for i := 0; i < coAuthors; i++ {
				authors = append(authors, faker.Name())
			}

			records = append(records, dataset.PaperRecord{
				ResearcherID:   researcherID,
				AuthorName:     authorName,
				PaperID:        fmt.Sprintf("R%d_P%d", researcherID, paperID),
				Title:          strings.TrimSuffix(faker.Sentence(6), "."),
				Authors:        strings.Join(authors, "; "),
				CoAuthorsCount: coAuthors,
				Citations:      dataset.Int(faker.Number(0, p.MaxCitations)),
				Year:           faker.Number(p.StartYear, p.EndYear),
				Journal:        faker.Company() + " Journal",
			})
		}
	}

	return dataset.NewTable(records, dataset.Columns()), nil
}
