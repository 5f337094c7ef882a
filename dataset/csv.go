package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads CSV and returns the dataset table. The first row is the
// header; unknown columns are ignored. A blank or unparseable citations
// cell becomes a missing value rather than an error, so one bad cell
// cannot abort a whole analysis run.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	if len(rows) == 0 {
		return NewTable(nil, nil), nil
	}

	header := rows[0]
	columns := make([]string, 0, len(header))
	index := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		columns = append(columns, col)
		index[col] = i
	}

	records := make([]PaperRecord, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		record, err := rowToRecord(rows[i], index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, record)
	}

	return NewTable(records, columns), nil
}

func rowToRecord(row []string, index map[string]int) (PaperRecord, error) {
	var record PaperRecord

	cell := func(col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	if v, ok := cell(ColResearcherID); ok && v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return record, fmt.Errorf("parsing %s %q: %w", ColResearcherID, v, err)
		}
		record.ResearcherID = id
	}
	if v, ok := cell(ColAuthorName); ok {
		record.AuthorName = v
	}
	if v, ok := cell(ColPaperID); ok {
		record.PaperID = v
	}
	if v, ok := cell(ColTitle); ok {
		record.Title = v
	}
	if v, ok := cell(ColAuthors); ok {
		record.Authors = v
	}
	if v, ok := cell(ColCoAuthorsCount); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return record, fmt.Errorf("parsing %s %q: %w", ColCoAuthorsCount, v, err)
		}
		record.CoAuthorsCount = n
	}
	if v, ok := cell(ColCitations); ok && v != "" {
		// Tolerate malformed values as missing.
		if n, err := strconv.Atoi(v); err == nil {
			record.Citations = Int(n)
		}
	}
	if v, ok := cell(ColYear); ok && v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return record, fmt.Errorf("parsing %s %q: %w", ColYear, v, err)
		}
		record.Year = y
	}
	if v, ok := cell(ColJournal); ok {
		record.Journal = v
	}

	return record, nil
}

// Serialize writes the table as CSV with the standard column set.
func Serialize(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	columns := Columns()
	if err := writer.Write(columns); err != nil {
		return err
	}

	for _, record := range t.Records {
		row := recordToRow(record, columns)
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

func recordToRow(record PaperRecord, columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = columnValue(record, col)
	}
	return row
}

func columnValue(record PaperRecord, column string) string {
	switch column {
	case ColResearcherID:
		return strconv.Itoa(record.ResearcherID)

	case ColAuthorName:
		return record.AuthorName

	case ColPaperID:
		return record.PaperID

	case ColTitle:
		return record.Title

	case ColAuthors:
		return record.Authors

	case ColCoAuthorsCount:
		return strconv.Itoa(record.CoAuthorsCount)

	case ColCitations:
		if record.Citations == nil {
			return ""
		}
		return strconv.Itoa(*record.Citations)

	case ColYear:
		return strconv.Itoa(record.Year)

	case ColJournal:
		return record.Journal

	default:
		return ""
	}
}
