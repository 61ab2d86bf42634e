// Package parser converts raw text in any supported format into the
// canonical tree shape defined in internal/models. One file per format;
// Parse dispatches on the format tag. There is no automatic fallback to
// another format on failure: the caller owns that decision.
package parser

import (
	"fmt"
	"strings"

	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
)

// Parse converts text into a canonical tree using the parser for format.
// Failures are reported as *errors.ParseError carrying the format tag
// and a best-effort location.
func Parse(text string, format models.Format) (models.Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewInputError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	switch format {
	case models.FormatJSON:
		return parseJSON(text)
	case models.FormatXML:
		return parseXML(text)
	case models.FormatCSV:
		return parseCSV(text)
	case models.FormatYAML:
		return parseYAML(text)
	default:
		return nil, errors.NewInputError(fmt.Sprintf("unsupported format %q", format), errors.ErrUnknownFormat)
	}
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	line = 1
	col = 1
	for _, b := range []byte(text[:offset]) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
