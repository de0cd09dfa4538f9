package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

func press(m BrowserModel, msg tea.KeyMsg) BrowserModel {
	next, _ := m.Update(msg)
	return next.(BrowserModel)
}

func TestBrowserNavigation(t *testing.T) {
	reg := registry.Default()
	m := NewBrowserModel(reg, core.IIDXSP, false, 100, 40)

	if m.Selected() != core.IIDXSP {
		t.Fatalf("Selected() = %q, want %q", m.Selected(), core.IIDXSP)
	}
	if got := len(m.table.Rows()); got != 10 {
		t.Errorf("grade rows = %d, want 10", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != core.IIDXDP {
		t.Errorf("after tab Selected() = %q, want %q", m.Selected(), core.IIDXDP)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Selected() != core.IIDXSP {
		t.Errorf("after shift+tab Selected() = %q, want %q", m.Selected(), core.IIDXSP)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Section() != SectionLamps {
		t.Errorf("Section() = %v, want Lamps", m.Section())
	}
	if got := len(m.table.Rows()); got != 8 {
		t.Errorf("lamp rows = %d, want 8", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Section() != SectionRatings {
		t.Errorf("Section() = %v, want Ratings after wrapping", m.Section())
	}
}

func TestBrowserWrapsVariants(t *testing.T) {
	reg := registry.Default()
	keys := reg.VariantKeys()
	m := NewBrowserModel(reg, keys[len(keys)-1], false, 60, 30)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != keys[0] {
		t.Errorf("Selected() = %q, want %q", m.Selected(), keys[0])
	}
}

func TestSectionRowsTiming(t *testing.T) {
	timed := registry.MustVariantConfig(core.GameDDR, core.PlaytypeSP)
	if rows := sectionRows(timed, SectionTiming, false); len(rows) != 5 {
		t.Errorf("ddr timing rows = %d, want 5", len(rows))
	}

	untimed := registry.MustVariantConfig(core.GameSDVX, core.PlaytypeSingle)
	if rows := sectionRows(untimed, SectionTiming, false); rows != nil {
		t.Errorf("sdvx timing rows = %v, want none", rows)
	}

	rows := sectionRows(untimed, SectionDifficulties, false)
	if rows[3][3] != "none" {
		t.Errorf("INF colour cell = %q, want none", rows[3][3])
	}
}

func TestBrowserView(t *testing.T) {
	m := NewBrowserModel(registry.Default(), core.SDVXSingle, false, 100, 40)
	for i := 0; i < int(SectionTiming); i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	}

	view := m.View()
	if !strings.Contains(view, "SOUND VOLTEX") {
		t.Error("view does not name the game")
	}
	if !strings.Contains(view, "no timing windows") {
		t.Error("view does not explain the missing timing table")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and clear the view")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int // leading spaces
	}{
		{"ABCD", 10, 3},
		{"REGISTRY - MÚSECA", 21, 2},
		{"没拙", 10, 3},
		{"\x1b[1mTabs\x1b[0m", 10, 3},
		{"too wide for this", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := centerText(tt.text, tt.width)
			if pad := len(got) - len(strings.TrimLeft(got, " ")); pad != tt.want {
				t.Errorf("centerText(%q, %d) padding = %d, want %d", tt.text, tt.width, pad, tt.want)
			}
		})
	}
}
