// Package config loads settings for the rhythm command-line tool.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

// Sentinel error kinds for this package.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Settings holds CLI configuration.
type Settings struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level" koanf:"log_level"`

	// Format is the default output format for show and catalog commands.
	Format string `yaml:"format" koanf:"format"`

	// Colour enables lipgloss colour swatches.
	Colour bool `yaml:"colour" koanf:"colour"`

	// DefaultGame is used when a command is given no game.
	DefaultGame core.Game `yaml:"default_game" koanf:"default_game"`
}

// Validate checks field values.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s.LogLevel)
	}
	switch s.Format {
	case FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, s.Format)
	}
	if s.DefaultGame == "" {
		return fmt.Errorf("%w: default_game must not be empty", ErrInvalidConfig)
	}
	return nil
}
