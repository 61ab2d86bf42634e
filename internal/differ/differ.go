// Package differ classifies the fields of two flattened documents. The
// comparison is a pure function of its inputs: no hidden state, stable
// order for identical inputs.
package differ

import (
	"strconv"
	"strings"

	"github.com/mcncl/docdiff/internal/models"
)

// Compare builds a report over the ordered union of both documents'
// paths: every left path in left order, then paths only the right
// document has, in right order. Paths present on both sides keep their
// left-side position.
func Compare(left, right *models.FlatDocument) *models.ComparisonReport {
	fields := make([]models.FieldComparison, 0, left.Len()+right.Len())
	seen := make(map[string]bool, left.Len()+right.Len())
	matching := 0

	classify := func(path string) {
		leftVal, leftOK := left.Lookup(path)
		rightVal, rightOK := right.Lookup(path)

		fc := models.FieldComparison{Path: path}
		if leftOK {
			s := models.DisplayScalar(leftVal)
			fc.Left = &s
		}
		if rightOK {
			s := models.DisplayScalar(rightVal)
			fc.Right = &s
		}

		switch {
		case leftOK && rightOK:
			if ScalarsEqual(leftVal, rightVal) {
				fc.Status = models.StatusMatch
				matching++
			} else {
				fc.Status = models.StatusDifferent
			}
		case leftOK:
			fc.Status = models.StatusMissingRight
		default:
			fc.Status = models.StatusMissingLeft
		}
		fields = append(fields, fc)
	}

	for _, entry := range left.Entries() {
		if seen[entry.Path] {
			continue
		}
		seen[entry.Path] = true
		classify(entry.Path)
	}
	for _, entry := range right.Entries() {
		if seen[entry.Path] {
			continue
		}
		seen[entry.Path] = true
		classify(entry.Path)
	}

	return &models.ComparisonReport{
		Fields: fields,
		Stats:  models.NewStats(len(fields), matching),
	}
}

// ScalarsEqual implements the type-tolerant equality rule: a Number and
// a string are equal when their normalized texts are identical, which
// lets 28 match "28" across formats that stringify numbers. All other
// kinds require the same kind and the same value.
func ScalarsEqual(a, b models.Value) bool {
	aText, aTextual := scalarText(a)
	bText, bTextual := scalarText(b)
	if aTextual && bTextual {
		return aText == bText
	}

	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case models.Empty:
		_, ok := b.(models.Empty)
		return ok
	}
	return false
}

func scalarText(v models.Value) (string, bool) {
	switch t := v.(type) {
	case models.Number:
		return NormalizeText(string(t)), true
	case string:
		return NormalizeText(t), true
	}
	return "", false
}

// NormalizeText trims surrounding whitespace and, for numeric text,
// drops a single leading "+" and insignificant trailing zeros after the
// decimal point, so "+28.50" and "28.5" compare equal. Non-numeric text
// is only trimmed.
func NormalizeText(s string) string {
	s = strings.TrimSpace(s)
	t := strings.TrimPrefix(s, "+")
	if _, err := strconv.ParseFloat(t, 64); err != nil {
		return s
	}
	if strings.Contains(t, ".") && !strings.ContainsAny(t, "eE") {
		t = strings.TrimRight(t, "0")
		t = strings.TrimSuffix(t, ".")
		if t == "" {
			t = "0"
		} else if t == "-" {
			t = "-0"
		}
	}
	return t
}
