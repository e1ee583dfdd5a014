package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/noise"
)

func press(m tea.Model, msg tea.KeyMsg) tea.Model {
	next, _ := m.Update(msg)
	return next
}

func TestMenuSelectsWorld(t *testing.T) {
	sources := noise.List()
	if len(sources) < 2 {
		t.Skip("needs at least two noise sources")
	}

	var m tea.Model = NewMenuModel(80, 24)
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.(MenuModel).Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Noise != sources[1].Name {
		t.Errorf("Noise = %q, expected %q", sel.Noise, sources[1].Name)
	}
	if sel.Preset != config.Presets[1] {
		t.Errorf("Preset = %q, expected %q", sel.Preset, config.Presets[1])
	}
}

func TestMenuPresetWraps(t *testing.T) {
	var m tea.Model = NewMenuModel(80, 24)
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.(MenuModel).Selected().Preset; got != config.Presets[len(config.Presets)-1] {
		t.Errorf("Preset = %q, expected wrap to the last preset", got)
	}
}

func TestSessionFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(testOptions(true), 80, 24)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.game == nil || cmd == nil {
		t.Fatal("enter should start a game")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = m.(SessionModel)
	if s.game != nil {
		t.Fatal("escape should return to the world picker")
	}
	if s.menu.Selected() != nil {
		t.Error("returning should show a fresh picker")
	}

	_, cmd = m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("q in the picker should quit")
	}
}

func TestSessionIgnoresAbandonedWorld(t *testing.T) {
	var m tea.Model = NewSessionModel(testOptions(true), 80, 24)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	abandoned := m.(SessionModel).game.loadWorld()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(abandoned())
	s := m.(SessionModel)
	if s.game == nil {
		t.Fatal("expected a running game")
	}
	if s.game.Game() != nil {
		t.Error("the abandoned world should not replace the new game's world")
	}

	m, _ = m.Update(s.game.loadWorld()())
	if m.(SessionModel).game.Game() == nil {
		t.Error("the new game's own world should load")
	}
}
