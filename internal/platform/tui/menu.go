package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/noise"
)

// MenuItem is one world choice: a noise source with a preset.
type MenuItem struct {
	Noise  string
	Preset config.Preset
}

// MenuModel is the world picker shown at the start of an SSH session.
type MenuModel struct {
	sources  []noise.Info
	presets  []config.Preset
	preset   int
	table    table.Model
	width    int
	height   int
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a world picker listing every registered noise source.
func NewMenuModel(width, height int) MenuModel {
	m := MenuModel{
		sources: noise.List(),
		presets: config.Presets,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the noise source table.
func (m *MenuModel) createTable() table.Model {
	descWidth := max(m.width-24, 20)
	columns := []table.Column{
		{Title: "Noise", Width: 12},
		{Title: "Terrain", Width: min(descWidth, 44)},
	}

	rows := make([]table.Row, len(m.sources))
	for i, src := range m.sources {
		rows[i] = table.Row{src.Name, src.Description}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-10, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.table.MoveUp(1)

	case MenuActionDown:
		m.table.MoveDown(1)

	case MenuActionPrevPreset:
		m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)

	case MenuActionNextPreset:
		m.preset = (m.preset + 1) % len(m.presets)

	case MenuActionSelect:
		if len(m.sources) > 0 {
			m.selected = &MenuItem{
				Noise:  m.sources[m.table.Cursor()].Name,
				Preset: m.presets[m.preset],
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("A D V E N T U R E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a world", m.width))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	p := m.presets[m.preset]
	b.WriteString(fmt.Sprintf("  Preset: < %s >  %s", p, dimStyle.Render(p.Description())))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  ↑/↓: world  |  ←/→: preset  |  Enter: explore  |  Q: quit"))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen world, or nil if none was chosen yet.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
