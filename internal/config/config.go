// Package config provides configuration types, defaults, and persistence for
// htmldiff.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dacharyc/htmldiff"
)

var (
	// ErrInvalidTag means a marker tag name is not a plain element name.
	ErrInvalidTag = errors.New("invalid marker tag")
	// ErrInvalidLogLevel means log_level is not debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// tagName matches element names usable as marker tags.
var tagName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Config holds all configuration options for htmldiff.
type Config struct {
	InsertTag  string `mapstructure:"insert_tag" yaml:"insert_tag"`
	DeleteTag  string `mapstructure:"delete_tag" yaml:"delete_tag"`
	TrimQuotes bool   `mapstructure:"trim_quotes" yaml:"trim_quotes"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"` // debug, info, warn (default) or error
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		InsertTag:  "ins",
		DeleteTag:  "del",
		TrimQuotes: true,
		LogLevel:   "warn",
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if !tagName.MatchString(c.InsertTag) {
		return fmt.Errorf("%w: insert_tag %q", ErrInvalidTag, c.InsertTag)
	}
	if !tagName.MatchString(c.DeleteTag) {
		return fmt.Errorf("%w: delete_tag %q", ErrInvalidTag, c.DeleteTag)
	}
	if strings.EqualFold(c.InsertTag, c.DeleteTag) {
		return fmt.Errorf("%w: insert_tag and delete_tag are both %q", ErrInvalidTag, c.InsertTag)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog level. An empty level means warn.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
}

// Options returns the diff options described by the configuration.
func (c Config) Options() []htmldiff.Option {
	return []htmldiff.Option{
		htmldiff.WithInsertTag(c.InsertTag),
		htmldiff.WithDeleteTag(c.DeleteTag),
		htmldiff.WithQuoteTrimming(c.TrimQuotes),
	}
}

// WriteDefaultConfig writes the default configuration as YAML to path,
// creating parent directories as needed. An existing file is left untouched.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	header := "# htmldiff configuration\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil { //nolint:gosec // config file is meant to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
