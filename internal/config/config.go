package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/namecleaner/internal/model"
)

// Config holds all runtime configuration for a cleannames run.
type Config struct {
	DSN        string
	InputPath  string
	OutputPath string
	Column     string // column holding company names
	LogFormat  string // "text" or "json"
	LogLevel   string
	Force      bool // re-load a file whose SHA was already loaded
	SampleRows int  // rows shown by plan
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Column    string `yaml:"column"`
	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
}

// LoadFromFile reads a YAML config file and merges its non-empty values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Column != "" {
		c.Column = yc.Column
	}
	if yc.LogFormat != "" {
		c.LogFormat = yc.LogFormat
	}
	if yc.LogLevel != "" {
		c.LogLevel = yc.LogLevel
	}
	return c.validateLogFormat()
}

func (c *Config) validateLogFormat() error {
	switch c.LogFormat {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
}

// Validate checks the fields every file-reading command needs. It does not
// check that the input exists; an unreadable input is a load failure.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("--in is required")
	}
	if c.Column == "" {
		c.Column = model.DefaultColumn
	}
	return c.validateLogFormat()
}

// ValidateWithOutput additionally requires an output path distinct from the input.
func (c *Config) ValidateWithOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return errors.New("--out is required")
	}
	if c.OutputPath == c.InputPath {
		return errors.New("--out must differ from --in")
	}
	return nil
}

// ValidateWithDSN checks both input and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return errors.New("--dsn or DATABASE_URL is required")
	}
	return nil
}
