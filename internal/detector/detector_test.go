package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/docdiff/internal/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Format
	}{
		{"json object", `{"name": "John", "age": 30}`, models.FormatJSON},
		{"json array", `[1, 2, 3]`, models.FormatJSON},
		{"json with leading whitespace", "\n\t {\"a\": 1}", models.FormatJSON},
		{"json scalar defaults to json", `42`, models.FormatJSON},
		{"empty input defaults to json", "", models.FormatJSON},
		{"xml element", `<user><name>John</name></user>`, models.FormatXML},
		{"xml with declaration", "<?xml version=\"1.0\"?>\n<root/>", models.FormatXML},
		{"xml with leading whitespace", "  <root/>", models.FormatXML},
		{"yaml key value", "name: John\nage: 30", models.FormatYAML},
		{"yaml nested", "user:\n  name: John", models.FormatYAML},
		{"yaml list", "- one\n- two", models.FormatYAML},
		{"yaml single pair", "age: 30", models.FormatYAML},
		{"csv table", "name,age\nJohn,30\nJane,25", models.FormatCSV},
		{"csv header only", "name,age,email", models.FormatCSV},
		{"csv uneven rows is not csv", "name,age\nJohn,30,extra", models.FormatJSON},
		{"plain text defaults to json", "hello world", models.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestDetect_YAMLBeatsCSV(t *testing.T) {
	// A "key: value" line wins over comma counting even when every line
	// contains a comma.
	text := "title: one, two\nsubtitle: three, four"
	assert.Equal(t, models.FormatYAML, Detect(text))
}

func TestDetect_BracedTextIsNeverYAML(t *testing.T) {
	assert.Equal(t, models.FormatJSON, Detect(`{"key": "value"}`))
	assert.Equal(t, models.FormatJSON, Detect(`["a", "b"]`))
}
