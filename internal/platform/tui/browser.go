package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rhythm-registry/internal/core"
	"github.com/vovakirdan/rhythm-registry/internal/format"
	"github.com/vovakirdan/rhythm-registry/internal/registry"
)

// Browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show variant list sidebar
	sidebarWidth       = 20 // Width of variant list sidebar
)

// BrowserModel is the Bubble Tea model for browsing registry variants.
type BrowserModel struct {
	reg         *registry.Registry
	formatter   *format.Formatter
	keys        []core.VariantKey
	cursor      int // Currently selected variant index
	section     Section
	current     registry.VariantConfig
	colour      bool
	table       table.Model
	help        help.Model
	keymap      BrowserKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewBrowserModel creates a browser positioned on start, or on the first
// variant if start is not registered.
func NewBrowserModel(reg *registry.Registry, start core.VariantKey, colour bool, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		reg:         reg,
		formatter:   format.New(reg),
		keys:        reg.VariantKeys(),
		colour:      colour,
		help:        h,
		keymap:      DefaultBrowserKeyMap(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, k := range m.keys {
		if k == start {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.loadVariant()
	return m
}

// createTable creates a table with the columns of the current section.
func (m *BrowserModel) createTable() table.Model {
	titles := sectionColumns(m.section)

	tableWidth := m.width - 8 // Margins and borders
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	colWidth := 12
	if len(titles) > 0 && tableWidth/len(titles) > colWidth {
		colWidth = tableWidth / len(titles)
	}

	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		columns[i] = table.Column{Title: title, Width: colWidth}
	}
	if len(columns) > 0 && titles[0] == "#" {
		columns[0].Width = 4
	}

	height := m.height - 10 // Leave room for header, tabs and help
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadVariant fetches the selected variant and refreshes the rows.
func (m *BrowserModel) loadVariant() {
	m.current = nil
	if len(m.keys) > 0 {
		if cfg, err := m.reg.GetVariantConfigByKey(m.keys[m.cursor]); err == nil {
			m.current = cfg
		}
	}
	m.updateTableRows()
}

func (m *BrowserModel) updateTableRows() {
	if m.current == nil {
		m.table.SetRows(nil)
		return
	}
	m.table.SetRows(sectionRows(m.current, m.section, m.colour))
	m.table.GotoTop()
}

// Selected returns the key of the variant on screen.
func (m BrowserModel) Selected() core.VariantKey {
	if len(m.keys) == 0 {
		return ""
	}
	return m.keys[m.cursor]
}

// Section returns the table on screen.
func (m BrowserModel) Section() Section { return m.section }

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keymap.NextVariant):
			if len(m.keys) > 0 {
				m.cursor = (m.cursor + 1) % len(m.keys)
				m.loadVariant()
			}
			return m, nil

		case key.Matches(msg, m.keymap.PrevVariant):
			if len(m.keys) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.keys) - 1
				}
				m.loadVariant()
			}
			return m, nil

		case key.Matches(msg, m.keymap.NextSection):
			m.section = (m.section + 1) % numSections
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keymap.PrevSection):
			m.section = (m.section + numSections - 1) % numSections
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "REGISTRY"
	if k := m.Selected(); k != "" {
		name, err := m.formatter.Game(k.Game(), k.Playtype())
		if err != nil {
			name = string(k)
		}
		title = fmt.Sprintf("REGISTRY - %s", name)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderSectionTabs())
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keymap)))

	return b.String()
}

// renderSectionTabs renders the section selector.
func (m BrowserModel) renderSectionTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, numSections)
	for s := Section(0); s < numSections; s++ {
		if s == m.section {
			tabs[s] = activeTabStyle.Render(s.String())
		} else {
			tabs[s] = tabStyle.Render(" " + s.String() + " ")
		}
	}
	return centerText(strings.Join(tabs, " "), m.width)
}

// renderWideLayout renders the variant list beside the table.
func (m BrowserModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Variants\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, k := range m.keys {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := string(k)
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the current variant name above the table.
func (m BrowserModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.Selected()), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.section == SectionTiming {
			return emptyStyle.Render("This variant has no timing windows.")
		}
		return emptyStyle.Render("Nothing to show.")
	}
	return m.table.View()
}

// IsQuitting returns true once the user has quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the registry browser full-screen.
func RunBrowser(reg *registry.Registry, start core.VariantKey, colour bool, width, height int) error {
	model := NewBrowserModel(reg, start, colour, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
