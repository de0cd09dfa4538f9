package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-registry/internal/catalog"
	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/format"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

var showCmd = &cobra.Command{
	Use:   "show <game:playtype>",
	Short: "Print one variant config",
	Long: `Prints the full configuration of a variant: grades with their
boundaries, lamps, difficulties, judgements, timing windows and rating
algorithms.

Examples:
  rhythm show iidx:SP
  rhythm show ddr:DP --format yaml
  rhythm show sdvx:Single --format json`,
	ValidArgsFunction: completeKeys,
	Args:              cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd.OutOrStdout(), registry.Default(), args[0], settings.Format, settings.Colour)
	},
}

func runShow(w io.Writer, reg *registry.Registry, rawKey, outFormat string, colour bool) error {
	cfg, err := reg.GetVariantConfigByKey(core.VariantKey(rawKey))
	if err != nil {
		return err
	}
	if done, err := writeStructured(w, outFormat, cfg); done {
		return err
	}

	b := cfg.Base()
	name, err := format.New(reg).Game(b.Key.Game(), b.Key.Playtype())
	if err != nil {
		return err
	}
	swatch := func(c core.Colour) string {
		if colour {
			return format.Block(c)
		}
		return c.Name()
	}

	fmt.Fprintf(w, "%s [%s]\n", name, b.Key)
	fmt.Fprintf(w, "Percent max: %g  Score bucket: %s  Table: %s\n", b.PercentMax, b.ScoreBucket, b.DefaultTable)
	fmt.Fprintln(w)

	rows := make([][]string, len(b.Grades))
	for i, g := range b.Grades {
		rows[i] = []string{string(g) + clearMark(g == b.ClearGrade), fmt.Sprintf("%g", b.GradeBoundaries[i]), swatch(b.GradeColours[g])}
	}
	printTable(w, []string{"Grade", "From %", "Colour"}, rows)
	fmt.Fprintln(w)

	rows = make([][]string, len(b.Lamps))
	for i, l := range b.Lamps {
		rows[i] = []string{string(l) + clearMark(l == b.ClearLamp), swatch(b.LampColours[l])}
	}
	printTable(w, []string{"Lamp", "Colour"}, rows)
	fmt.Fprintln(w)

	rows = make([][]string, len(b.Difficulties))
	for i, d := range b.Difficulties {
		short := b.ShortDifficulty(d)
		if d == b.DefaultDifficulty {
			short += " (default)"
		}
		rows[i] = []string{string(d), short, swatch(b.DifficultyColours[d])}
	}
	printTable(w, []string{"Difficulty", "Short", "Colour"}, rows)
	fmt.Fprintln(w)

	if windows, ok := registry.TimingWindowsOf(cfg); ok {
		rows = make([][]string, len(windows))
		for i, tw := range windows {
			rows[i] = []string{tw.Name, fmt.Sprintf("%g", tw.MSBoundary), fmt.Sprintf("%g", tw.PointValue)}
		}
		printTable(w, []string{"Window", "+/- ms", "Points"}, rows)
		fmt.Fprintln(w)
	}

	judgements := make([]string, len(b.Judgements))
	for i, j := range b.Judgements {
		judgements[i] = string(j)
	}
	fmt.Fprintf(w, "Judgements: %s\n", strings.Join(judgements, ", "))
	fmt.Fprintf(w, "Score ratings: %s (default %s)\n", joinAlgs(b.ScoreRatingAlgs), b.DefaultScoreRatingAlg)
	fmt.Fprintf(w, "Session ratings: %s (default %s)\n", joinAlgs(b.SessionRatingAlgs), b.DefaultSessionRatingAlg)
	fmt.Fprintf(w, "Profile ratings: %s (default %s)\n", joinAlgs(b.ProfileRatingAlgs), b.DefaultProfileRatingAlg)

	if len(b.Versions) > 0 {
		versions := make([]string, len(b.Versions))
		for i, v := range b.Versions {
			versions[i] = catalog.PrettyVersion(b.Key, v)
		}
		fmt.Fprintf(w, "Versions: %s\n", strings.Join(versions, ", "))
	}
	return nil
}

func clearMark(on bool) string {
	if on {
		return " (clear)"
	}
	return ""
}

func joinAlgs(algs []core.RatingAlg) string {
	parts := make([]string, len(algs))
	for i, a := range algs {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}
