package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-registry/internal/registry"
	"github.com/vovakirdan/rhythm-registry/internal/schema"
)

// errInvalidDocuments is returned when at least one document fails.
var errInvalidDocuments = errors.New("invalid documents")

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>...",
	Short: "Validate JSON score documents",
	Long: `Checks each JSON score document against the registry: grade, lamp,
judgement and rating names, percent range and per-game hit metadata.
Pass "-" to read one document from stdin.

Examples:
  rhythm validate score.json
  cat score.json | rhythm validate -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), cmd.InOrStdin(), registry.Default(), args)
	},
}

func runValidate(w io.Writer, stdin io.Reader, reg *registry.Registry, paths []string) error {
	v := schema.NewValidator(reg)

	failed := 0
	for _, path := range paths {
		if err := validateOne(v, stdin, path); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s\n", path)
			for _, e := range flatten(err) {
				fmt.Fprintf(w, "  %v\n", e)
			}
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidDocuments, failed, len(paths))
	}
	return nil
}

func validateOne(v *schema.Validator, stdin io.Reader, path string) error {
	if path == "-" {
		_, err := v.DecodeScore(stdin)
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := v.DecodeScore(f)
	if err != nil {
		return err
	}
	logger.Debug("score valid", "path", path, "id", doc.ScoreID, "key", doc.Key())
	return nil
}

// flatten splits a joined error into its parts.
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
