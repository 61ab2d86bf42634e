package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/docdiff/internal/models"
)

// Config represents the complete configuration for docdiff
type Config struct {
	Output        string        `yaml:"output"`          // table, summary or json
	Color         string        `yaml:"color"`           // auto, always or never
	MaxValueWidth int           `yaml:"max_value_width"` // truncation width for values in the table
	ShowMatches   bool          `yaml:"show_matches"`    // include matching rows in the table
	Formats       FormatsConfig `yaml:"formats"`
}

// FormatsConfig pins the input format per side; empty means auto-detect
type FormatsConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output:        "table",
		Color:         "auto",
		MaxValueWidth: 50,
		ShowMatches:   true,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".docdiff.yml", ".docdiff.yaml", "docdiff.yml", "docdiff.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	switch c.Output {
	case "table", "summary", "json":
	default:
		return fmt.Errorf("invalid output %q: must be table, summary or json", c.Output)
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be auto, always or never", c.Color)
	}

	if c.MaxValueWidth < 8 {
		return fmt.Errorf("invalid max_value_width %d: must be at least 8", c.MaxValueWidth)
	}

	for side, name := range map[string]string{"left": c.Formats.Left, "right": c.Formats.Right} {
		if name == "" {
			continue
		}
		if _, ok := models.ParseFormat(name); !ok {
			return fmt.Errorf("invalid %s format %q: must be one of json, xml, csv, yaml", side, name)
		}
	}

	return nil
}

// FormatHint returns the configured format for a side, empty when the
// side should be auto-detected.
func (c *Config) FormatHint(side string) models.Format {
	name := c.Formats.Left
	if side == "right" {
		name = c.Formats.Right
	}
	if format, ok := models.ParseFormat(name); ok {
		return format
	}
	return ""
}

// ColorEnabled resolves the color mode against the output terminal
func (c *Config) ColorEnabled(fd uintptr) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
