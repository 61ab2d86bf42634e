// Package detector guesses which format a raw text blob is written in.
// The guess is a hint, not a promise: the chosen parser may still reject
// the text, and the caller decides what to do about that.
package detector

import (
	"regexp"
	"strings"

	"github.com/mcncl/docdiff/internal/models"
)

// yamlKeyLine matches a plain "key: value" line, the strongest signal of
// YAML that is not also valid bare JSON.
var yamlKeyLine = regexp.MustCompile(`^\s*[^\s:{\[][^:]*:(\s|$)`)

// Detect inspects text and returns the most likely format. It never
// fails: malformed or empty input falls through to JSON, the strictest
// and most common API format.
func Detect(text string) models.Format {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "<") {
		return models.FormatXML
	}
	if looksLikeYAML(trimmed) {
		return models.FormatYAML
	}
	if looksLikeCSV(trimmed) {
		return models.FormatCSV
	}
	return models.FormatJSON
}

// looksLikeYAML reports whether any line has the shape "key: value" or
// "- item" while the document as a whole is not brace/bracket delimited.
func looksLikeYAML(trimmed string) bool {
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return false
	}
	for _, line := range strings.Split(trimmed, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.HasPrefix(stripped, "- ") || stripped == "-" {
			return true
		}
		if yamlKeyLine.MatchString(line) {
			return true
		}
	}
	return false
}

// looksLikeCSV reports whether the text has a tabular shape: a first
// line with at least one comma and every following non-empty line with
// the same comma count. A single comma-bearing line counts as a header
// with no rows.
func looksLikeCSV(trimmed string) bool {
	lines := strings.Split(trimmed, "\n")
	want := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := strings.Count(line, ",")
		if want == -1 {
			if n == 0 {
				return false
			}
			want = n
			continue
		}
		if n != want {
			return false
		}
	}
	return want > 0
}
