// Package config holds the greem configuration: which schema files to merge
// and where to write the result.
//
// Configuration is read from a YAML file (conventionally greem.yaml):
//
//	schema:
//	  - schema/**/*.graphql
//	output_directory: ./__generated__
//
// or assembled with functional options:
//
//	cfg, err := config.New(
//	    config.WithSchema("schema/**/*.graphql"),
//	    config.WithOutputDirectory("./gen"),
//	)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/internal/pathutil"
	"github.com/erraggy/greem/loader"
	"go.yaml.in/yaml/v4"
)

// DefaultOutputDirectory is used when no output directory is configured.
const DefaultOutputDirectory = "./__generated__"

// DefaultFileName is the configuration file looked up by the CLI.
const DefaultFileName = "greem.yaml"

// Config is the greem configuration.
type Config struct {
	// Schema lists glob patterns (doublestar syntax) selecting schema files.
	Schema []string `yaml:"schema" json:"schema"`
	// OutputDirectory is where the merged schema is written.
	OutputDirectory string `yaml:"output_directory" json:"output_directory"`
}

// Option is a function that configures a Config.
type Option func(*Config) error

// Default returns a configuration with no schema patterns and the default
// output directory.
func Default() *Config {
	return &Config{OutputDirectory: DefaultOutputDirectory}
}

// New builds a validated configuration from options applied to Default().
func New(opts ...Option) (*Config, error) {
	cfg := Default()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithSchema appends schema glob patterns.
func WithSchema(patterns ...string) Option {
	return func(c *Config) error {
		c.Schema = append(c.Schema, patterns...)
		return nil
	}
}

// WithOutputDirectory sets the output directory.
func WithOutputDirectory(dir string) Option {
	return func(c *Config) error {
		c.OutputDirectory = dir
		return nil
	}
}

// Load reads a YAML configuration file. Unknown keys are rejected. Missing
// keys keep their defaults. The result is not validated; command-line
// overrides are usually applied first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &gqlerrors.ConfigError{Message: "malformed configuration file", Cause: err}
	}
	return cfg, nil
}

// Validate reports the first problem with the configuration as a
// *gqlerrors.ConfigError.
func (c *Config) Validate() error {
	if len(c.Schema) == 0 {
		return &gqlerrors.ConfigError{Option: "schema", Message: "at least one schema pattern is required"}
	}
	for _, pattern := range c.Schema {
		if strings.TrimSpace(pattern) == "" {
			return &gqlerrors.ConfigError{Option: "schema", Message: "empty schema pattern"}
		}
		if !loader.ValidatePattern(pattern) {
			return &gqlerrors.ConfigError{Option: "schema", Value: pattern, Message: "malformed glob pattern"}
		}
	}
	if _, err := pathutil.SanitizeOutputDir(c.OutputDirectory); err != nil {
		return &gqlerrors.ConfigError{
			Option:  "output_directory",
			Value:   c.OutputDirectory,
			Message: "malformed output path",
			Cause:   err,
		}
	}
	return nil
}
