// Package config loads the pycc driver configuration from TOML or YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete driver configuration.
type Config struct {
	Analyzer AnalyzerConfig `toml:"analyzer" yaml:"analyzer"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// AnalyzerConfig holds semantic analysis settings.
type AnalyzerConfig struct {
	Buckets int  `toml:"buckets" yaml:"buckets"` // hash slots per scope
	Symtab  bool `toml:"symtab" yaml:"symtab"`   // print the symbol table after analysis
	Typed   bool `toml:"typed" yaml:"typed"`     // print the typed tree after analysis
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	Color     string `toml:"color" yaml:"color"`           // auto, always or never
	ASTFormat string `toml:"ast_format" yaml:"ast_format"` // text or json
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn or error
	Format string `toml:"format" yaml:"format"` // text or json
}

// MaxBuckets bounds the per-scope hash table size.
const MaxBuckets = 1024

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{Buckets: 71},
		Output:   OutputConfig{Color: "auto", ASTFormat: "text"},
		Log:      LogConfig{Level: "warn", Format: "text"},
	}
}

// Format is a configuration file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// DetectFormat determines the configuration format from the file extension.
// Unknown extensions are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads the configuration file at path over the defaults and
// validates the result.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(content, DetectFormat(path))
}

// Parse decodes content in the given format over the defaults and
// validates the result.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is in range.
func (c *Config) Validate() error {
	if c.Analyzer.Buckets < 1 || c.Analyzer.Buckets > MaxBuckets {
		return fmt.Errorf("analyzer.buckets must be between 1 and %d, got %d", MaxBuckets, c.Analyzer.Buckets)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	switch c.Output.ASTFormat {
	case "text", "json":
	default:
		return fmt.Errorf("output.ast_format must be text or json, got %q", c.Output.ASTFormat)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
