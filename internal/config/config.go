// Package config provides configuration management for the article record store.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template placeholders understood by the store.
const (
	PlaceholderIndex     = "{index}"
	PlaceholderTimestamp = "{timestamp}"
	PlaceholderSite      = "{site}"
	PlaceholderTerm      = "{term}"
)

// RecordExt is the suffix of record files.
const RecordExt = ".json"

// Defaults applied by Default and by LoadConfig for omitted fields.
const (
	DefaultFilenameTemplate = "{timestamp}_{site}_{term}_{index}.json"
	DefaultMaxIndex         = 100000
	DefaultLogLevel         = "info"
)

// Configuration validation errors.
var (
	ErrMissingOutputDir     = errors.New("store.output_dir is required")
	ErrMissingTemplate      = errors.New("store.filename_template is required")
	ErrTemplateMissingIndex = errors.New("store.filename_template must contain {index}")
	ErrTemplateExtension    = errors.New("store.filename_template must end in .json")
	ErrTemplateSeparator    = errors.New("store.filename_template must not contain a path separator")
	ErrInvalidMaxIndex      = errors.New("store.max_index must be at least 1")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Clean   CleanConfig   `yaml:"clean"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig locates the record directory and names new record files.
type StoreConfig struct {
	OutputDir        string `yaml:"output_dir"`
	FilenameTemplate string `yaml:"filename_template"`
	MaxIndex         int    `yaml:"max_index"`
	IncludeProcessed bool   `yaml:"include_processed"`
}

// CleanConfig controls the text normalizer.
type CleanConfig struct {
	Pattern string   `yaml:"pattern"`
	Fields  []string `yaml:"fields"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration writing to outputDir with default naming.
func Default(outputDir string) *Config {
	cfg := &Config{
		Store: StoreConfig{OutputDir: outputDir},
	}
	cfg.applyDefaults()

	return cfg
}

// LoadConfig loads configuration from YAML file and validates it.
func LoadConfig(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ReadConfig loads configuration from YAML file and fills in defaults
// without validating, so callers can apply overrides first.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Store.FilenameTemplate == "" {
		c.Store.FilenameTemplate = DefaultFilenameTemplate
	}

	if c.Store.MaxIndex == 0 {
		c.Store.MaxIndex = DefaultMaxIndex
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Store.OutputDir == "" {
		return ErrMissingOutputDir
	}

	tmpl := c.Store.FilenameTemplate
	if tmpl == "" {
		return ErrMissingTemplate
	}

	// Without {index} every candidate name is the same file.
	if !strings.Contains(tmpl, PlaceholderIndex) {
		return ErrTemplateMissingIndex
	}

	// New files must be visible to the directory scan.
	if !strings.HasSuffix(tmpl, RecordExt) {
		return ErrTemplateExtension
	}

	if strings.ContainsAny(tmpl, `/\`) {
		return ErrTemplateSeparator
	}

	if c.Store.MaxIndex < 1 {
		return ErrInvalidMaxIndex
	}

	if c.Clean.Pattern != "" {
		if _, err := regexp.Compile(c.Clean.Pattern); err != nil {
			return fmt.Errorf("clean.pattern is invalid regex: %w", err)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetOutputPath joins a record filename onto the output directory.
func (c *Config) GetOutputPath(name string) string {
	return filepath.Join(c.Store.OutputDir, name)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{OutputDir: %s, Template: %s, MaxIndex: %d}",
		c.Store.OutputDir,
		c.Store.FilenameTemplate,
		c.Store.MaxIndex,
	)
}
