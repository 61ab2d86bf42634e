package comparator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/mcncl/docdiff/internal/errors"
	"github.com/mcncl/docdiff/internal/models"
)

func TestCompareStrings_CrossFormatJSONvsYAML(t *testing.T) {
	report, err := CompareStrings(`{"age": 28}`, "age: 28", Options{})
	require.NoError(t, err)

	require.Len(t, report.Fields, 1)
	assert.Equal(t, "age", report.Fields[0].Path)
	assert.Equal(t, models.StatusMatch, report.Fields[0].Status)
	assert.Equal(t, 100.0, report.Stats.MatchPercent)
}

func TestCompareStrings_CrossFormatJSONvsCSV(t *testing.T) {
	// CSV rows are wrapped in a sequence, so the CSV side is compared
	// against an equivalent one-element JSON array.
	report, err := CompareStrings(`[{"age": 28}]`, "age\n28", Options{RightFormat: models.FormatCSV})
	require.NoError(t, err)

	require.Len(t, report.Fields, 1)
	assert.Equal(t, "[0].age", report.Fields[0].Path)
	assert.Equal(t, models.StatusMatch, report.Fields[0].Status)
}

func TestCompareStrings_CrossFormatJSONvsXML(t *testing.T) {
	report, err := CompareStrings(
		`{"user": {"name": "John", "age": 28}}`,
		`<user><name>John</name><age>28</age></user>`,
		Options{},
	)
	require.NoError(t, err)

	require.Len(t, report.Fields, 2)
	assert.Equal(t, "user.name", report.Fields[0].Path)
	assert.Equal(t, models.StatusMatch, report.Fields[0].Status)
	assert.Equal(t, "user.age", report.Fields[1].Path)
	assert.Equal(t, models.StatusMatch, report.Fields[1].Status)
}

func TestCompareStrings_BothBlank(t *testing.T) {
	report, err := CompareStrings("", "   \n", Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Stats.Total)
	assert.Equal(t, 0.0, report.Stats.MatchPercent)
	assert.Empty(t, report.Fields)
}

func TestCompareStrings_OneBlankSide(t *testing.T) {
	report, err := CompareStrings(`{"a": 1, "b": 2}`, "", Options{})
	require.NoError(t, err)

	require.Len(t, report.Fields, 2)
	for _, f := range report.Fields {
		assert.Equal(t, models.StatusMissingRight, f.Status)
	}
}

func TestCompareStrings_ParseErrorPropagates(t *testing.T) {
	_, err := CompareStrings(`{invalid`, `{"a": 1}`, Options{LeftFormat: models.FormatJSON})
	require.Error(t, err)

	var parseErr *appErrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, models.FormatJSON, parseErr.Format)
}

func TestCompareStrings_NoFormatFallbackAfterFailure(t *testing.T) {
	// Valid YAML forced through the JSON parser must fail, not silently
	// re-detect.
	_, err := CompareStrings("age: 28", `{"age": 28}`, Options{LeftFormat: models.FormatJSON})
	require.Error(t, err)

	var parseErr *appErrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, models.FormatJSON, parseErr.Format)
}

func TestCompareStrings_HintOverridesDetection(t *testing.T) {
	// "28" alone would detect as JSON; the YAML hint must win.
	report, err := CompareStrings("28", "28", Options{
		LeftFormat:  models.FormatYAML,
		RightFormat: models.FormatYAML,
	})
	require.NoError(t, err)
	require.Len(t, report.Fields, 1)
	assert.Equal(t, models.StatusMatch, report.Fields[0].Status)
}

func TestCompareStrings_Deterministic(t *testing.T) {
	left := `{"user": {"name": "John", "skills": ["Python", "JS"]}}`
	right := "user:\n  name: Jane\n  skills:\n    - Python"

	first, err := CompareStrings(left, right, Options{})
	require.NoError(t, err)
	second, err := CompareStrings(left, right, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	leftPath := filepath.Join(dir, "left.json")
	rightPath := filepath.Join(dir, "right.yaml")
	require.NoError(t, os.WriteFile(leftPath, []byte(`{"a": 1}`), 0644))
	require.NoError(t, os.WriteFile(rightPath, []byte("a: 1\nb: 2"), 0644))

	report, err := CompareFiles(leftPath, rightPath, Options{})
	require.NoError(t, err)

	require.Len(t, report.Fields, 2)
	assert.Equal(t, models.StatusMatch, report.Fields[0].Status)
	assert.Equal(t, models.StatusMissingLeft, report.Fields[1].Status)
}

func TestCompareFiles_NotFound(t *testing.T) {
	_, err := CompareFiles(filepath.Join(t.TempDir(), "nope.json"), "also-missing.json", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrFileNotFound)
}

func TestCompareFiles_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	full := filepath.Join(dir, "full.json")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	require.NoError(t, os.WriteFile(full, []byte(`{"a": 1}`), 0644))

	_, err := CompareFiles(empty, full, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrFileEmpty)
}
