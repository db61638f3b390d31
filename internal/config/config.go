// Package config provides configuration for the piece catalog tool.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/lgbarn/chess-pieces-go/internal/errors"
	"github.com/lgbarn/chess-pieces-go/internal/piece"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "PIECES"

// OutputFormat selects how pieces are written.
type OutputFormat int

const (
	Text OutputFormat = iota // One line per piece
	JSON                     // Indented JSON document
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat parses "text" or "json".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// validLogLevels lists the zap level names accepted by LogLevel.
var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Config holds all program configuration.
type Config struct {
	// TextureSize is the pixel size used for texture paths.
	TextureSize int

	// AssetRoot is the directory texture paths are resolved against
	// when verifying that files exist.
	AssetRoot string

	// Format selects text or JSON output.
	Format OutputFormat

	// LogLevel is a zap level name.
	LogLevel string

	// Verify enables the asset existence check.
	Verify bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// envSettings mirrors the environment-configurable subset of Config.
type envSettings struct {
	TextureSize int    `envconfig:"TEXTURE_SIZE"`
	AssetRoot   string `envconfig:"ASSET_ROOT"`
	Format      string `envconfig:"FORMAT"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	Verify      bool   `envconfig:"VERIFY"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		TextureSize: piece.DefaultTextureSize,
		AssetRoot:   ".",
		Format:      Text,
		LogLevel:    "info",
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// FromEnv returns the defaults overridden by PIECES_* environment variables.
// Unset variables leave the default in place.
func FromEnv() (*Config, error) {
	cfg := NewConfig()
	env := envSettings{
		TextureSize: cfg.TextureSize,
		AssetRoot:   cfg.AssetRoot,
		Format:      cfg.Format.String(),
		LogLevel:    cfg.LogLevel,
	}
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("reading environment: %v: %w", err, errors.ErrInvalidConfig)
	}

	format, err := ParseOutputFormat(env.Format)
	if err != nil {
		return nil, err
	}
	cfg.TextureSize = env.TextureSize
	cfg.AssetRoot = env.AssetRoot
	cfg.Format = format
	cfg.LogLevel = strings.ToLower(env.LogLevel)
	cfg.Verify = env.Verify

	return cfg, cfg.Validate()
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if c.TextureSize <= 0 {
		return fmt.Errorf("texture size %d: %w: %w", c.TextureSize, errors.ErrInvalidTextureSize, errors.ErrInvalidConfig)
	}
	if c.Format != Text && c.Format != JSON {
		return fmt.Errorf("output format %d: %w", c.Format, errors.ErrInvalidConfig)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if c.AssetRoot == "" {
		return fmt.Errorf("empty asset root: %w", errors.ErrInvalidConfig)
	}
	return nil
}
