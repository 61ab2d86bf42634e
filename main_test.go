package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/docdiff/internal/config"
)

func TestReadDocument(t *testing.T) {
	t.Run("stops at first blank line after content", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("{\"a\": 1}\n\n{\"b\": 2}\n"))

		first, err := readDocument(reader)
		require.NoError(t, err)
		assert.Equal(t, "{\"a\": 1}\n", first)

		second, err := readDocument(reader)
		require.NoError(t, err)
		assert.Equal(t, "{\"b\": 2}\n", second)
	})

	t.Run("skips leading blank lines", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("\n\nname: John\nage: 30\n\n"))

		doc, err := readDocument(reader)
		require.NoError(t, err)
		assert.Equal(t, "name: John\nage: 30\n", doc)
	})

	t.Run("returns remainder at EOF", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader("age,name\n28,John"))

		doc, err := readDocument(reader)
		require.NoError(t, err)
		assert.Equal(t, "age,name\n28,John", doc)
	})

	t.Run("empty input yields empty document", func(t *testing.T) {
		reader := bufio.NewReader(strings.NewReader(""))

		doc, err := readDocument(reader)
		require.NoError(t, err)
		assert.Equal(t, "", doc)
	})
}

func TestRun_CompareFiles(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	dir := t.TempDir()
	leftPath := filepath.Join(dir, "left.json")
	rightPath := filepath.Join(dir, "right.yaml")
	require.NoError(t, os.WriteFile(leftPath, []byte(`{"name": "John", "age": 28}`), 0644))
	require.NoError(t, os.WriteFile(rightPath, []byte("name: John\nage: 29\n"), 0644))

	CLI.Left = leftPath
	CLI.Right = rightPath
	CLI.LeftFormat = "auto"
	CLI.RightFormat = "auto"

	cfg := config.NewConfig()
	cfg.Output = "summary"
	cfg.Color = "never"

	err := run(&Context{Config: cfg})
	require.NoError(t, err)
}

func TestRun_OneSideOnlyFails(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	dir := t.TempDir()
	leftPath := filepath.Join(dir, "left.json")
	require.NoError(t, os.WriteFile(leftPath, []byte(`{"a": 1}`), 0644))

	CLI.Left = leftPath
	CLI.Right = ""
	CLI.LeftFormat = "auto"
	CLI.RightFormat = "auto"

	err := run(&Context{Config: config.NewConfig()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both sides")
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	dir := t.TempDir()
	path := filepath.Join(dir, ".docdiff.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: table\ncolor: always\n"), 0644))

	CLI.Config = path
	CLI.Output = "json"
	CLI.NoColor = true
	CLI.LeftFormat = "yaml"
	CLI.RightFormat = "auto"

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "yaml", cfg.Formats.Left)
	assert.Empty(t, cfg.Formats.Right)
}
