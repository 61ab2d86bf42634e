// Package comparator composes the pipeline: detect, parse and flatten
// each side independently, then diff the two flat documents.
package comparator

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcncl/docdiff/internal/detector"
	"github.com/mcncl/docdiff/internal/differ"
	"github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/flattener"
	"github.com/mcncl/docdiff/internal/models"
	"github.com/mcncl/docdiff/internal/parser"
)

// Options carries optional per-side format hints. An empty Format means
// auto-detect from the content.
type Options struct {
	LeftFormat  models.Format
	RightFormat models.Format
}

// CompareStrings runs detect→parse→flatten for each side and diffs the
// results. A blank side contributes an empty flat document rather than a
// parse error, so two blank inputs yield the zero report and one blank
// input marks every field of the other side as missing.
func CompareStrings(leftText, rightText string, opts Options) (*models.ComparisonReport, error) {
	left, err := flattenSide(leftText, opts.LeftFormat)
	if err != nil {
		return nil, err
	}
	right, err := flattenSide(rightText, opts.RightFormat)
	if err != nil {
		return nil, err
	}
	return differ.Compare(left, right), nil
}

// CompareFiles reads both documents from disk and compares them.
func CompareFiles(leftPath, rightPath string, opts Options) (*models.ComparisonReport, error) {
	leftText, err := readDocumentFile(leftPath)
	if err != nil {
		return nil, err
	}
	rightText, err := readDocumentFile(rightPath)
	if err != nil {
		return nil, err
	}
	return CompareStrings(leftText, rightText, opts)
}

func flattenSide(text string, hint models.Format) (*models.FlatDocument, error) {
	if strings.TrimSpace(text) == "" {
		return models.NewFlatDocument(nil), nil
	}

	format := hint
	if format == "" {
		format = detector.Detect(text)
	}

	value, err := parser.Parse(text, format)
	if err != nil {
		return nil, err
	}
	return flattener.Flatten(value), nil
}

func readDocumentFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", path), errors.ErrFileNotFound)
		}
		return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError(fmt.Sprintf("input file '%s' is empty", path), errors.ErrFileEmpty)
	}
	return string(data), nil
}
