package models

// Value is a generic type to represent any parsed document value.
// This can be nil, a bool, a Number, a string, a Document, or an Array,
// regardless of which source format produced it.
type Value = any

// Number holds the source text of a numeric scalar. Keeping the original
// text (rather than converting to float64) lets the differ decide how
// "1.0" relates to "1" instead of the decoder deciding for it.
type Number string

func (n Number) String() string { return string(n) }

// Entry represents a single key-value pair in a Document.
type Entry struct {
	Key   string
	Value Value
}

// Document represents a mapping as an ordered collection of key-value
// pairs. A slice is used instead of a map so key order survives parsing;
// keys are unique within a single Document.
type Document []Entry

// Array represents a sequence of values in source order.
type Array []Value

// Empty is the sentinel emitted for a Document or Array with no children.
// It is distinct from nil so "field present but empty" and "field absent"
// remain distinguishable after flattening.
type Empty struct{}

// Format identifies one of the supported input formats.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatXML, FormatCSV, FormatYAML}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, bool) {
	switch Format(name) {
	case FormatJSON, FormatXML, FormatCSV, FormatYAML:
		return Format(name), true
	}
	return "", false
}
