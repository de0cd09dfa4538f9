package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants [game]",
	Short: "List registered variants",
	Long: `Lists every game:playtype variant, or only those of one game.

Examples:
  rhythm variants
  rhythm variants gitadora`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var game core.Game
		if len(args) == 1 {
			game = core.Game(args[0])
		}
		return runVariants(cmd.OutOrStdout(), registry.Default(), game, settings.Format)
	},
}

// variantSummary is the one-line view of a variant.
type variantSummary struct {
	Key          core.VariantKey `yaml:"key" json:"key"`
	Timed        bool            `yaml:"timed" json:"timed"`
	Grades       int             `yaml:"grades" json:"grades"`
	Lamps        int             `yaml:"lamps" json:"lamps"`
	Difficulties int             `yaml:"difficulties" json:"difficulties"`
	ScoreRating  core.RatingAlg  `yaml:"scoreRating" json:"scoreRating"`
}

func runVariants(w io.Writer, reg *registry.Registry, game core.Game, format string) error {
	var configs []registry.VariantConfig
	if game == "" {
		for _, k := range reg.VariantKeys() {
			cfg, err := reg.GetVariantConfigByKey(k)
			if err != nil {
				return err
			}
			configs = append(configs, cfg)
		}
	} else {
		var err error
		if configs, err = reg.VariantsOf(game); err != nil {
			return err
		}
	}

	summaries := make([]variantSummary, len(configs))
	for i, cfg := range configs {
		b := cfg.Base()
		summaries[i] = variantSummary{
			Key:          b.Key,
			Timed:        cfg.SupportsTimingWindows(),
			Grades:       len(b.Grades),
			Lamps:        len(b.Lamps),
			Difficulties: len(b.Difficulties),
			ScoreRating:  b.DefaultScoreRatingAlg,
		}
	}
	if done, err := writeStructured(w, format, summaries); done {
		return err
	}

	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		timed := "no"
		if s.Timed {
			timed = "yes"
		}
		rows[i] = []string{
			string(s.Key), timed,
			fmt.Sprint(s.Grades), fmt.Sprint(s.Lamps), fmt.Sprint(s.Difficulties),
			string(s.ScoreRating),
		}
	}
	printTable(w, []string{"Key", "Timed", "Grades", "Lamps", "Diffs", "Rating"}, rows)
	return nil
}
