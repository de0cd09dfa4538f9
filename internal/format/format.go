// Package format renders games, charts and difficulties as display strings.
package format

import (
	"strconv"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
	"github.com/vovakirdan/rhythm-registry/internal/schema"
)

// Formatter formats against one registry.
type Formatter struct {
	reg *registry.Registry
}

// New returns a formatter for reg, or for the default registry when nil.
func New(reg *registry.Registry) *Formatter {
	if reg == nil {
		reg = registry.Default()
	}
	return &Formatter{reg: reg}
}

// FormatInt renders an integer.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// Game returns the game's name, followed by the playtype in parentheses
// when the game has more than one.
func (f *Formatter) Game(game core.Game, playtype core.Playtype) (string, error) {
	g, err := f.reg.GetGameConfig(game)
	if err != nil {
		return "", err
	}
	if len(g.ValidPlaytypes) == 1 {
		return g.Name, nil
	}
	return g.Name + " (" + string(playtype) + ")", nil
}

// Difficulty returns "<difficulty> <level>", prefixed by the playtype for
// games with more than one.
func (f *Formatter) Difficulty(game core.Game, chart *schema.ChartDocument) (string, error) {
	g, err := f.reg.GetGameConfig(game)
	if err != nil {
		return "", err
	}
	if len(g.ValidPlaytypes) > 1 {
		return string(chart.Playtype) + " " + string(chart.Difficulty) + " " + chart.Level, nil
	}
	return string(chart.Difficulty) + " " + chart.Level, nil
}

// DifficultyShort returns a compact difficulty label:
//
//	ddr:      ESP
//	gitadora: EXT 8.50
//	single:   MAS 14
//	others:   SPA 12
func (f *Formatter) DifficultyShort(game core.Game, chart *schema.ChartDocument) (string, error) {
	g, err := f.reg.GetGameConfig(game)
	if err != nil {
		return "", err
	}
	cfg, err := f.reg.GetVariantConfig(game, chart.Playtype)
	if err != nil {
		return "", err
	}
	short := cfg.Base().ShortDifficulty(chart.Difficulty)

	switch {
	case game == core.GameDDR:
		return short + string(chart.Playtype), nil
	case len(g.ValidPlaytypes) == 1 || game == core.GameGitadora:
		return short + " " + chart.Level, nil
	}
	return string(chart.Playtype) + short + " " + chart.Level, nil
}

// Chart returns "<title> (<playtype> <difficulty>)". Non-primary charts
// also name the most recent version they appeared in. BMS charts are
// named by their song title alone.
func (f *Formatter) Chart(game core.Game, song *schema.SongDocument, chart *schema.ChartDocument) (string, error) {
	if game == core.GameBMS {
		return song.Title, nil
	}
	g, err := f.reg.GetGameConfig(game)
	if err != nil {
		return "", err
	}

	pt := string(chart.Playtype) + " "
	if len(g.ValidPlaytypes) == 1 {
		pt = ""
	}
	if !chart.IsPrimary && len(chart.Versions) > 0 {
		return song.Title + " (" + pt + string(chart.Difficulty) + " " + chart.Versions[0] + ")", nil
	}
	return song.Title + " (" + pt + string(chart.Difficulty) + ")", nil
}

var std = New(nil)

// FormatGame formats with the default registry.
func FormatGame(game core.Game, playtype core.Playtype) (string, error) {
	return std.Game(game, playtype)
}

// FormatDifficulty formats with the default registry.
func FormatDifficulty(game core.Game, chart *schema.ChartDocument) (string, error) {
	return std.Difficulty(game, chart)
}

// FormatDifficultyShort formats with the default registry.
func FormatDifficultyShort(game core.Game, chart *schema.ChartDocument) (string, error) {
	return std.DifficultyShort(game, chart)
}

// FormatChart formats with the default registry.
func FormatChart(game core.Game, song *schema.SongDocument, chart *schema.ChartDocument) (string, error) {
	return std.Chart(game, song, chart)
}
