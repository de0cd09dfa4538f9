package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

var flagDeviation string

var classifyCmd = &cobra.Command{
	Use:   "classify <game:playtype> <percent>",
	Short: "Classify a percent into a grade",
	Long: `Classifies a score percent against a variant's grade boundaries.
With --deviation, also reports the timing window a hit deviation (in
milliseconds) falls in; only timed variants support this.

Examples:
  rhythm classify iidx:SP 94.44
  rhythm classify ddr:SP 91 --deviation -22.5`,
	ValidArgsFunction: completeKeys,
	Args:              cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify(cmd.OutOrStdout(), registry.Default(), args[0], args[1], flagDeviation)
	},
}

func init() {
	classifyCmd.Flags().StringVar(&flagDeviation, "deviation", "", "Hit deviation in ms to place in a timing window")
}

func runClassify(w io.Writer, reg *registry.Registry, rawKey, rawPercent, rawDeviation string) error {
	cfg, err := reg.GetVariantConfigByKey(core.VariantKey(rawKey))
	if err != nil {
		return err
	}
	percent, err := strconv.ParseFloat(rawPercent, 64)
	if err != nil {
		return fmt.Errorf("percent %q: %w", rawPercent, err)
	}

	b := cfg.Base()
	grade, idx, err := b.GradeFor(percent)
	if err != nil {
		return err
	}
	logger.Debug("classified", "key", b.Key, "percent", percent, "index", idx)

	cleared := "not a clear"
	if b.IsClearGrade(grade) {
		cleared = "clear"
	}
	fmt.Fprintf(w, "%s %g%% -> %s (grade %d of %d, %s)\n", b.Key, percent, grade, idx, len(b.Grades)-1, cleared)

	if rawDeviation == "" {
		return nil
	}
	dev, err := strconv.ParseFloat(rawDeviation, 64)
	if err != nil {
		return fmt.Errorf("deviation %q: %w", rawDeviation, err)
	}
	timed, ok := cfg.(*registry.TimedVariantConfig)
	if !ok {
		return fmt.Errorf("%s has no timing windows", b.Key)
	}
	if tw, ok := timed.WindowFor(dev); ok {
		fmt.Fprintf(w, "%gms -> %s (+/- %gms, %g points)\n", dev, tw.Name, tw.MSBoundary, tw.PointValue)
	} else {
		fmt.Fprintf(w, "%gms -> outside every window (widest +/- %gms)\n", dev, timed.WidestBoundary())
	}
	return nil
}
