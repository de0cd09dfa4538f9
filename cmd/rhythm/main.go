// rhythm inspects the rhythm-game variant registry from the terminal.
//
// Usage:
//
//	rhythm games                   - List supported games
//	rhythm variants [game]         - List registered game:playtype variants
//	rhythm show <game:playtype>    - Print a variant config
//	rhythm classify <key> <pct>    - Classify a percent into a grade
//	rhythm validate <file...>      - Validate JSON score documents
//	rhythm catalog <kind>          - Print import types, keys or versions
//	rhythm browse [key]            - Browse variants interactively
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.rhythm/config.yaml)
//	--log-level <lvl>   - debug, info, warn, error
//	--format <fmt>      - table, yaml, json
//	--no-color          - Disable colour swatches
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-registry/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagFormat   string
	flagNoColor  bool

	settings config.Settings
	logger   = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rhythm",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rhythm",
	Short: "Rhythm registry - inspect rhythm-game variant configs",
	Long: `rhythm exposes the static per-game configuration registry: grade and
lamp vocabularies, grade boundaries, timing windows, rating algorithms
and the catalogs of import types and versions.

Available commands:
  games     - Show all supported games
  variants  - Show registered game:playtype variants
  show      - Print one variant config
  classify  - Classify a percent (and optional timing deviation)
  validate  - Check JSON score documents against the registry
  catalog   - Print import types, variant keys or versions
  browse    - Interactive variant browser

Examples:
  rhythm games
  rhythm show iidx:SP --format yaml
  rhythm classify iidx:SP 94.44
  rhythm validate scores/*.json`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "Output format: table, yaml, json")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colour swatches")

	// Add subcommands
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(browseCmd)
}

// setup loads settings, applies flag overrides and configures the logger.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagLogLevel != "" {
		s.LogLevel = flagLogLevel
	}
	if flagFormat != "" {
		s.Format = flagFormat
	}
	if flagNoColor {
		s.Colour = false
	}
	if err := s.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	logger.SetLevel(level)
	logger.Debug("settings loaded", "format", s.Format, "colour", s.Colour, "default_game", s.DefaultGame)

	settings = s
	return nil
}
