// Package dataset provides the in-memory table of synthetic paper records
// and its CSV encoding.
package dataset

// Column names as they appear in the CSV header.
const (
	ColResearcherID   = "researcher_id"
	ColAuthorName     = "author_name"
	ColPaperID        = "paper_id"
	ColTitle          = "title"
	ColAuthors        = "authors"
	ColCoAuthorsCount = "co_authors_count"
	ColCitations      = "citations"
	ColYear           = "year"
	ColJournal        = "journal"
)

// Columns returns the full column set in serialization order.
func Columns() []string {
	return []string{
		ColResearcherID,
		ColAuthorName,
		ColPaperID,
		ColTitle,
		ColAuthors,
		ColCoAuthorsCount,
		ColCitations,
		ColYear,
		ColJournal,
	}
}

// PaperRecord is one row of the publication dataset. Records are treated as
// immutable once created.
type PaperRecord struct {
	ResearcherID   int
	AuthorName     string
	PaperID        string
	Title          string
	Authors        string
	CoAuthorsCount int
	// Citations is nil when the source row carried no citation value.
	Citations *int
	Year      int
	Journal   string
}

// Table is an ordered collection of paper records plus the set of columns
// that were present in the source it was built from.
type Table struct {
	Records []PaperRecord

	columns map[string]bool
}

// NewTable builds a table over records, declaring which columns the source
// provided.
func NewTable(records []PaperRecord, columns []string) *Table {
	t := &Table{
		Records: records,
		columns: make(map[string]bool, len(columns)),
	}
	for _, c := range columns {
		t.columns[c] = true
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether the source provided the named column.
func (t *Table) HasColumn(name string) bool {
	return t.columns[name]
}

// RequireColumns returns a MissingFieldError naming the first column in
// names that the source did not provide.
func (t *Table) RequireColumns(names ...string) error {
	for _, name := range names {
		if !t.columns[name] {
			return MissingFieldError{Field: name}
		}
	}
	return nil
}

// GroupByResearcher partitions the rows by researcher id in one linear
// pass. The returned ids preserve first-appearance order, so downstream
// aggregation and tie-breaking stay deterministic for a given input.
func (t *Table) GroupByResearcher() ([]int, map[int][]PaperRecord) {
	ids := make([]int, 0)
	groups := make(map[int][]PaperRecord)
	for _, r := range t.Records {
		if _, seen := groups[r.ResearcherID]; !seen {
			ids = append(ids, r.ResearcherID)
		}
		groups[r.ResearcherID] = append(groups[r.ResearcherID], r)
	}
	return ids, groups
}

// Int returns a pointer to v, for populating optional citation values.
func Int(v int) *int {
	return &v
}
