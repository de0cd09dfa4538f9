package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/format"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

// Section is one table of a variant shown by the browser.
type Section int

const (
	SectionGrades Section = iota
	SectionLamps
	SectionDifficulties
	SectionJudgements
	SectionTiming
	SectionRatings
	numSections
)

func (s Section) String() string {
	switch s {
	case SectionGrades:
		return "Grades"
	case SectionLamps:
		return "Lamps"
	case SectionDifficulties:
		return "Difficulties"
	case SectionJudgements:
		return "Judgements"
	case SectionTiming:
		return "Timing"
	case SectionRatings:
		return "Ratings"
	}
	return "?"
}

// sectionColumns returns the column titles of s.
func sectionColumns(s Section) []string {
	switch s {
	case SectionGrades:
		return []string{"#", "Grade", "From %", "Colour"}
	case SectionLamps:
		return []string{"#", "Lamp", "Clear", "Colour"}
	case SectionDifficulties:
		return []string{"#", "Difficulty", "Short", "Colour"}
	case SectionJudgements:
		return []string{"#", "Judgement"}
	case SectionTiming:
		return []string{"Window", "± ms", "Points"}
	case SectionRatings:
		return []string{"Kind", "Default", "Legal"}
	}
	return nil
}

// sectionRows builds the table rows of s for cfg. Colour cells are
// rendered as swatches when colour is true.
func sectionRows(cfg registry.VariantConfig, s Section, colour bool) []table.Row {
	b := cfg.Base()
	swatch := func(c core.Colour, text string) string {
		if !colour {
			return c.Name()
		}
		return format.Swatch(c, text)
	}

	var rows []table.Row
	switch s {
	case SectionGrades:
		for i, g := range b.Grades {
			rows = append(rows, table.Row{
				fmt.Sprint(i),
				string(g) + marker(g == b.ClearGrade),
				fmt.Sprint(b.GradeBoundaries[i]),
				swatch(b.GradeColours[g], b.GradeColours[g].Name()),
			})
		}
	case SectionLamps:
		for i, l := range b.Lamps {
			cleared := "no"
			if b.IsClearLamp(l) {
				cleared = "yes"
			}
			rows = append(rows, table.Row{
				fmt.Sprint(i),
				string(l),
				cleared,
				swatch(b.LampColours[l], b.LampColours[l].Name()),
			})
		}
	case SectionDifficulties:
		for i, d := range b.Difficulties {
			rows = append(rows, table.Row{
				fmt.Sprint(i),
				string(d) + marker(d == b.DefaultDifficulty),
				b.ShortDifficulty(d),
				swatch(b.DifficultyColours[d], b.DifficultyColours[d].Name()),
			})
		}
	case SectionJudgements:
		for i, j := range b.Judgements {
			rows = append(rows, table.Row{fmt.Sprint(i), string(j)})
		}
	case SectionTiming:
		windows, ok := registry.TimingWindowsOf(cfg)
		if !ok {
			return nil
		}
		for _, w := range windows {
			rows = append(rows, table.Row{w.Name, fmt.Sprint(w.MSBoundary), fmt.Sprint(w.PointValue)})
		}
	case SectionRatings:
		rows = []table.Row{
			{"score", string(b.DefaultScoreRatingAlg), joinAlgs(b.ScoreRatingAlgs)},
			{"session", string(b.DefaultSessionRatingAlg), joinAlgs(b.SessionRatingAlgs)},
			{"profile", string(b.DefaultProfileRatingAlg), joinAlgs(b.ProfileRatingAlgs)},
		}
	}
	return rows
}

func marker(on bool) string {
	if on {
		return " *"
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

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
