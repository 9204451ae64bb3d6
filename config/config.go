// Package config loads the optional blockkit.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/blockkit"
	"github.com/reoring/blockkit/internal/logging"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "blockkit.yaml"

// Config represents the optional blockkit.yaml configuration.
type Config struct {
	Limits LimitsConfig `yaml:"limits"`
	Encode EncodeConfig `yaml:"encode"`
	Log    LogConfig    `yaml:"log"`
}

// LimitsConfig overrides structural limits. Zero keeps the default.
type LimitsConfig struct {
	MaxBlocks          int `yaml:"max_blocks,omitempty"`
	MaxFields          int `yaml:"max_fields,omitempty"`
	MaxBlockIDLength   int `yaml:"max_block_id_length,omitempty"`
	MaxContextElements int `yaml:"max_context_elements,omitempty"`
}

// EncodeConfig contains encoder settings.
type EncodeConfig struct {
	// FailFast defaults to true when omitted.
	FailFast *bool `yaml:"fail_fast,omitempty"`
	Indent   bool  `yaml:"indent,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Limits    blockkit.Limits
	FailFast  bool
	Indent    bool
	LogLevel  slog.Level
	LogFormat string
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads blockkit.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve fills defaults and validates values.
func (c *Config) Resolve() (*Resolved, error) {
	l := c.Limits
	for name, v := range map[string]int{
		"max_blocks":           l.MaxBlocks,
		"max_fields":           l.MaxFields,
		"max_block_id_length":  l.MaxBlockIDLength,
		"max_context_elements": l.MaxContextElements,
	} {
		if v < 0 {
			return nil, fmt.Errorf("limits.%s must not be negative, got %d", name, v)
		}
	}
	limits := blockkit.DefaultLimits()
	if l.MaxBlocks > 0 {
		limits.MaxBlocks = l.MaxBlocks
	}
	if l.MaxFields > 0 {
		limits.MaxFields = l.MaxFields
	}
	if l.MaxBlockIDLength > 0 {
		limits.MaxBlockIDLength = l.MaxBlockIDLength
	}
	if l.MaxContextElements > 0 {
		limits.MaxContextElements = l.MaxContextElements
	}

	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch format {
	case "":
		format = logging.FormatText
	case logging.FormatText, logging.FormatJSON:
	default:
		return nil, fmt.Errorf("log.format must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.Log.Format)
	}

	failFast := true
	if c.Encode.FailFast != nil {
		failFast = *c.Encode.FailFast
	}
	return &Resolved{
		Limits:    limits,
		FailFast:  failFast,
		Indent:    c.Encode.Indent,
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

// Encoder returns an encoder configured from r.
func (r *Resolved) Encoder(log *slog.Logger) blockkit.Encoder {
	return blockkit.Encoder{Limits: r.Limits, Collect: !r.FailFast, Logger: log}
}
