package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List all supported games",
	Long:  `Shows every game in the registry with its play styles.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGames(cmd.OutOrStdout(), registry.Default(), settings.Format)
	},
}

func runGames(w io.Writer, reg *registry.Registry, format string) error {
	games := reg.Games()
	if done, err := writeStructured(w, format, games); done {
		return err
	}

	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return nil
	}

	fmt.Fprintln(w, "Supported games:")
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		playtypes := make([]string, len(g.ValidPlaytypes))
		for i, p := range g.ValidPlaytypes {
			playtypes[i] = string(p)
		}
		rows = append(rows, []string{
			string(g.InternalName),
			g.Name,
			strings.Join(playtypes, ", "),
			string(g.DefaultPlaytype),
		})
	}
	printTable(w, []string{"ID", "Name", "Playtypes", "Default"}, rows)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'rhythm variants <id>' to list a game's variants.")
	return nil
}
