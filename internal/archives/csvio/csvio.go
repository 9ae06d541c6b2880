// Package csvio converts between CSV payloads and domain tables.
// Every archive binding requests CSV output, so this is the one codec
// the module needs; VOTable and JSON variants stay with the archives.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// Read decodes a CSV document into a table. The first record is the
// header; lines starting with '#' are comments (SkyServer prefixes its
// CSV output with them).
func Read(r io.Reader) (*domain.Table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return &domain.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	table := &domain.Table{Columns: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", table.NumRows()+1, err)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// Write encodes a table as CSV with a header record.
func Write(w io.Writer, t *domain.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
