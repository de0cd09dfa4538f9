package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/platform/tui"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

var browseCmd = &cobra.Command{
	Use:   "browse [game:playtype]",
	Short: "Browse variants interactively",
	Long: `Opens a full-screen browser over every registered variant.

Controls:
  Tab/Shift+Tab  - Next/previous variant
  Left/Right     - Switch table (grades, lamps, difficulties, ...)
  Up/Down        - Scroll
  ?              - Toggle help
  Q/Esc          - Quit

Examples:
  rhythm browse
  rhythm browse sdvx:Single`,
	ValidArgsFunction: completeKeys,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runBrowse,
}

func runBrowse(_ *cobra.Command, args []string) error {
	reg := registry.Default()

	start, err := startKey(reg, args)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr)
	}

	return tui.RunBrowser(reg, start, settings.Colour, width, height)
}

// startKey picks the variant the browser opens on: the argument if given,
// else the default playtype of the configured default game.
func startKey(reg *registry.Registry, args []string) (core.VariantKey, error) {
	if len(args) == 1 {
		cfg, err := reg.GetVariantConfigByKey(core.VariantKey(args[0]))
		if err != nil {
			return "", err
		}
		return cfg.Base().Key, nil
	}

	g, err := reg.GetGameConfig(settings.DefaultGame)
	if err != nil {
		logger.Warn("default game not registered", "game", settings.DefaultGame, "error", err)
		return "", nil
	}
	return core.NewVariantKey(g.InternalName, g.DefaultPlaytype), nil
}
