package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/flatlog/core"
	"github.com/philipp01105/flatlog/formatter"
	"github.com/philipp01105/flatlog/logger"
)

// Config describes a Logger in YAML:
//
//	level: debug
//	file:
//	  path: logs/app.log
//	  append: false
//	  format: csv
//	timestamps:
//	  console: "2006/01/02 03:04:05 PM"
//	  logfile: "2006-01-02_03-04-05"
type Config struct {
	// Level is a level name or integer (default: info)
	Level string `yaml:"level"`
	File  File   `yaml:"file"`
	// Timestamps holds Go time layouts
	Timestamps Timestamps `yaml:"timestamps"`
}

// File configures the log file sink
type File struct {
	// Path of the log file; empty disables file logging
	Path   string `yaml:"path"`
	Append bool   `yaml:"append"`
	// Enabled toggles file writes without dropping the path (default: true)
	Enabled *bool `yaml:"enabled"`
	// Format is "default" or "csv" (default: default)
	Format string `yaml:"format"`
}

// Timestamps configures time layouts
type Timestamps struct {
	Console string `yaml:"console"`
	Logfile string `yaml:"logfile"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read logger config")
	}
	return Parse(data)
}

// Parse parses YAML into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse logger config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the level name and file format.
func (c *Config) Validate() error {
	if _, err := c.level(); err != nil {
		return errors.Wrap(err, "invalid logger config")
	}
	if _, err := c.formatHandler(); err != nil {
		return errors.Wrap(err, "invalid logger config")
	}
	return nil
}

func (c *Config) level() (core.Level, error) {
	if c.Level == "" {
		return core.InfoLevel, nil
	}
	return core.ParseLevel(c.Level)
}

func (c *Config) formatHandler() (formatter.FormatHandler, error) {
	switch strings.ToLower(c.File.Format) {
	case "", "default", "text":
		return formatter.NewDefault(), nil
	case "csv":
		return formatter.NewCSV(), nil
	default:
		return nil, errors.Errorf("unknown file format %q", c.File.Format)
	}
}

// Builder returns a logger.Builder populated from c. Callers may add
// options such as WithConsole before building.
func (c *Config) Builder() (*logger.Builder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := c.level()
	fh, _ := c.formatHandler()

	b := logger.NewBuilder().
		WithLevel(level).
		WithFormatHandler(fh)
	if c.Timestamps.Console != "" {
		b.WithConsoleTimestampLayout(c.Timestamps.Console)
	}
	if c.Timestamps.Logfile != "" {
		b.WithLogfileTimestampLayout(c.Timestamps.Logfile)
	}
	if c.File.Enabled != nil {
		b.WithFileLogging(*c.File.Enabled)
	}
	if c.File.Path != "" {
		b.WithLogFile(c.File.Path, c.File.Append)
	}
	return b, nil
}

// Build creates a Logger from c, opening the log file if a path is set.
func (c *Config) Build() (*logger.Logger, error) {
	b, err := c.Builder()
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}
