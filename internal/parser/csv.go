package parser

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
)

// parseCSV reads the first row as the header and turns every following
// row into a Document keyed by header name. The whole document is an
// Array of row-Documents, even for a single row, so single-row and
// multi-row CSVs flatten uniformly with index paths.
func parseCSV(text string) (models.Value, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, csvParseError(err)
	}
	if len(records) == 0 {
		return nil, errors.NewParseError(models.FormatCSV, "missing header row", nil)
	}

	header := make([]string, len(records[0]))
	seen := make(map[string]bool, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		if seen[name] {
			return nil, errors.NewParseErrorAt(models.FormatCSV, fmt.Sprintf("duplicate column name %q", name), 1, 0, nil)
		}
		seen[name] = true
		header[i] = name
	}

	rows := models.Array{}
	for _, record := range records[1:] {
		row := models.Document{}
		for i, cell := range record {
			row = append(row, models.Entry{Key: header[i], Value: strings.TrimSpace(cell)})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func csvParseError(err error) *errors.ParseError {
	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		return errors.NewParseErrorAt(models.FormatCSV, parseErr.Err.Error(), parseErr.Line, parseErr.Column, err)
	}
	return errors.NewParseError(models.FormatCSV, err.Error(), err)
}
