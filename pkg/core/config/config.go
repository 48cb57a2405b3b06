package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	jcerror "github.com/msto63/jackc/foundation/core/error"
	jclog "github.com/msto63/jackc/foundation/core/log"
	"github.com/msto63/jackc/foundation/utils/filex"
)

// Default values applied for missing configuration
const (
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "console"
	DefaultSourceExtension = ".jack"
	DefaultMaxSourceBytes  = 1 << 20
	DefaultMaxNestingDepth = 1000
	DefaultOutputExtension = ".xml"
	DefaultTokenSuffix     = "T"
	DefaultIndent          = "  "
)

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Analyzer AnalyzerConfig `toml:"analyzer" yaml:"analyzer"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// AnalyzerConfig holds input and parser limits
type AnalyzerConfig struct {
	SourceExtension string `toml:"source_extension" yaml:"source_extension"`
	MaxSourceBytes  int    `toml:"max_source_bytes" yaml:"max_source_bytes"`
	MaxNestingDepth int    `toml:"max_nesting_depth" yaml:"max_nesting_depth"`
}

// OutputConfig holds settings for written documents. A nil Indent means
// the default; an empty one writes every line flush left.
type OutputConfig struct {
	Extension   string  `toml:"extension" yaml:"extension"`
	TokenSuffix string  `toml:"token_suffix" yaml:"token_suffix"`
	Indent      *string `toml:"indent" yaml:"indent"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML (.toml) or YAML (.yaml, .yml) file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, jcerror.Newf("config file not found: %s", path).
				WithCode(jcerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, jcerror.Wrap(err, "read config").
			WithCode(jcerror.CodeIOError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		if jcErr, ok := jcerror.As(err); ok {
			jcErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes configuration data in the format named by ext, applies
// defaults and validates the result
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, parseError(err, "toml")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, parseError(err, "yaml")
		}
	default:
		return nil, jcerror.Newf("unsupported config format %q, use .toml, .yaml or .yml", ext).
			WithCode(jcerror.CodeConfigError).
			WithOperation("config.Parse")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseError(err error, format string) error {
	return jcerror.Wrap(err, "failed to parse config").
		WithCode(jcerror.CodeConfigError).
		WithOperation("config.Parse").
		WithDetail("format", format)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = DefaultLogFormat
	}

	// Analyzer
	if c.Analyzer.SourceExtension == "" {
		c.Analyzer.SourceExtension = DefaultSourceExtension
	}
	if c.Analyzer.MaxSourceBytes == 0 {
		c.Analyzer.MaxSourceBytes = DefaultMaxSourceBytes
	}
	if c.Analyzer.MaxNestingDepth == 0 {
		c.Analyzer.MaxNestingDepth = DefaultMaxNestingDepth
	}

	// Output
	if c.Output.Extension == "" {
		c.Output.Extension = DefaultOutputExtension
	}
	if c.Output.TokenSuffix == "" {
		c.Output.TokenSuffix = DefaultTokenSuffix
	}
	if c.Output.Indent == nil {
		indent := DefaultIndent
		c.Output.Indent = &indent
	}
}

// Validate checks value ranges and formats
func (c *Config) Validate() error {
	var problems []string

	if _, err := jclog.ParseLevel(c.General.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_level: %v", err))
	}
	if _, err := jclog.ParseFormat(c.General.LogFormat); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_format: %v", err))
	}
	if !strings.HasPrefix(c.Analyzer.SourceExtension, ".") {
		problems = append(problems, fmt.Sprintf("analyzer.source_extension %q must start with '.'", c.Analyzer.SourceExtension))
	}
	if c.Analyzer.MaxSourceBytes < 0 {
		problems = append(problems, "analyzer.max_source_bytes must not be negative")
	}
	if c.Analyzer.MaxNestingDepth < 0 {
		problems = append(problems, "analyzer.max_nesting_depth must not be negative")
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		problems = append(problems, fmt.Sprintf("output.extension %q must start with '.'", c.Output.Extension))
	}
	if strings.ContainsAny(c.Output.TokenSuffix, `/\`) {
		problems = append(problems, "output.token_suffix must not contain path separators")
	}
	if c.Output.Indent != nil && strings.Trim(*c.Output.Indent, " \t") != "" {
		problems = append(problems, "output.indent may only contain spaces and tabs")
	}
	if c.Analyzer.SourceExtension == c.Output.Extension {
		problems = append(problems, "output.extension must differ from analyzer.source_extension")
	}

	if len(problems) > 0 {
		return jcerror.Newf("invalid configuration: %s", strings.Join(problems, "; ")).
			WithCode(jcerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("problems", problems)
	}
	return nil
}

// LogLevel returns the configured log level
func (c *Config) LogLevel() jclog.Level {
	level, err := jclog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return jclog.LevelWarn
	}
	return level
}

// LogFormat returns the configured log format
func (c *Config) LogFormat() jclog.Format {
	format, err := jclog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return jclog.FormatConsole
	}
	return format
}

// OutputPath returns the document path for a source file: Foo.jack becomes
// Foo.xml, or FooT.xml for token documents
func (c *Config) OutputPath(source string, tokens bool) string {
	suffix := ""
	if tokens {
		suffix = c.Output.TokenSuffix
	}
	return filex.ReplaceExt(source, suffix, c.Output.Extension)
}
