// Package config holds the settings of the gtiny driver: where the source is
// read from, where diagnostics and the syntax tree dump go, and how the parser
// behaves. Files are TOML or YAML, chosen by extension.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ltungv/tiny/gtiny/internal/tiny"
)

// Format is the syntax of a configuration file
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
	return "unknown"
}

// Config holds the complete driver configuration
type Config struct {
	Files  FilesConfig  `toml:"files" yaml:"files"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// FilesConfig names the input and the two output sinks. "-" stands for the
// standard streams, an empty debug path disables the tree dump.
type FilesConfig struct {
	Input  string `toml:"input" yaml:"input"`
	Output string `toml:"output" yaml:"output"`
	Debug  string `toml:"debug" yaml:"debug"`
}

// ParserConfig holds the scanner and parser settings
type ParserConfig struct {
	MaxLineLength  int  `toml:"max_line_length" yaml:"max_line_length"`
	MaxDepth       int  `toml:"max_depth" yaml:"max_depth"`
	LegacyOperands bool `toml:"legacy_operands" yaml:"legacy_operands"`
}

// LogConfig holds the driver's logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given. The file
// names are the classic TINY front end defaults.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Input:  "input.txt",
			Output: "output.txt",
			Debug:  "debug.txt",
		},
		Parser: ParserConfig{
			MaxLineLength: tiny.DefaultMaxLineLength,
			MaxDepth:      tiny.DefaultMaxDepth,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path on top of the defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromString(string(content), detectFormat(path))
}

// LoadFromString parses content in the given format on top of the defaults.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cfg.expandEnvVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Files.Input == "" {
		return fmt.Errorf("files.input must not be empty")
	}
	if c.Parser.MaxLineLength <= 0 {
		return fmt.Errorf("parser.max_line_length must be positive, got %d", c.Parser.MaxLineLength)
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// ParserOptions translates the parser settings into options for tiny.NewParser.
func (c *Config) ParserOptions() []tiny.ParserOption {
	return []tiny.ParserOption{
		tiny.WithMaxDepth(c.Parser.MaxDepth),
		tiny.WithLegacyOperands(c.Parser.LegacyOperands),
	}
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return level, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

func (c *Config) expandEnvVars() {
	c.Files.Input = os.ExpandEnv(c.Files.Input)
	c.Files.Output = os.ExpandEnv(c.Files.Output)
	c.Files.Debug = os.ExpandEnv(c.Files.Debug)
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
