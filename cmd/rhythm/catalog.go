package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-registry/internal/catalog"
)

var flagChannel string

var catalogCmd = &cobra.Command{
	Use:   "catalog <imports|keys|versions>",
	Short: "Print a static catalog",
	Long: `Prints one of the closed lookup tables:

  imports   - score import types, optionally filtered by --channel
  keys      - every declared variant key, marking staged ones
  versions  - version codes and display names per variant

Examples:
  rhythm catalog imports --channel ir
  rhythm catalog versions --format yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"imports", "keys", "versions"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog(cmd.OutOrStdout(), args[0], catalog.Channel(flagChannel), settings.Format)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&flagChannel, "channel", "", "Import channel: file, ir, api")
}

func runCatalog(w io.Writer, kind string, channel catalog.Channel, format string) error {
	switch kind {
	case "imports":
		return printImports(w, channel, format)
	case "keys":
		return printKeys(w, format)
	case "versions":
		return printVersions(w, format)
	}
	return fmt.Errorf("unknown catalog %q (want imports, keys or versions)", kind)
}

func printImports(w io.Writer, channel catalog.Channel, format string) error {
	types := catalog.AllImportTypes()
	if channel != "" {
		types = catalog.ImportTypesFor(channel)
		if len(types) == 0 {
			return fmt.Errorf("unknown channel %q", channel)
		}
	}
	if done, err := writeStructured(w, format, types); done {
		return err
	}

	rows := make([][]string, len(types))
	for i, t := range types {
		rows[i] = []string{string(t.Channel()), string(t)}
	}
	printTable(w, []string{"Channel", "Import type"}, rows)
	return nil
}

func printKeys(w io.Writer, format string) error {
	keys := catalog.DeclaredVariantKeys()
	if done, err := writeStructured(w, format, keys); done {
		return err
	}

	rows := make([][]string, len(keys))
	for i, k := range keys {
		status := "live"
		if catalog.IsStaged(k) {
			status = "staged"
		}
		rows[i] = []string{string(k), status}
	}
	printTable(w, []string{"Key", "Status"}, rows)
	return nil
}

func printVersions(w io.Writer, format string) error {
	if done, err := writeStructured(w, format, catalog.PrettyVersions); done {
		return err
	}

	keys := catalog.DeclaredVariantKeys()
	var rows [][]string
	for _, k := range keys {
		codes := make([]string, 0, len(catalog.PrettyVersions[k]))
		for code := range catalog.PrettyVersions[k] {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			rows = append(rows, []string{string(k), code, catalog.PrettyVersion(k, code)})
		}
	}
	printTable(w, []string{"Key", "Code", "Name"}, rows)
	return nil
}

// completeKeys offers the live variant keys as the first argument.
func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := catalog.DeclaredVariantKeys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if !catalog.IsStaged(k) {
			out = append(out, string(k))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
