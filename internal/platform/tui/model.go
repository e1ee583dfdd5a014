package tui

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/adventure"
	"github.com/vovakirdan/tui-adventure/internal/assets"
	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// footerHeight is the number of lines below the game screen.
const footerHeight = 1

// GameOptions configures a game model.
type GameOptions struct {
	Loader    *assets.Loader
	Settings  config.Settings
	Noise     string // Noise source; empty uses the configured one
	Seed      int64  // 0 picks a time-based seed
	FPS       int    // 0 uses Settings.Screen.FPS
	Logger    *log.Logger
	AllowBack bool // Esc/B returns to the world picker
}

// modelIDs numbers game models so a world load finishing after its model
// was replaced is ignored.
var modelIDs atomic.Uint64

// worldMsg reports the outcome of the initial world generation.
type worldMsg struct {
	model uint64
	game  *adventure.Game
	err   error
}

// GameModel is the Bubble Tea model running one adventure.
type GameModel struct {
	id         uint64
	opts       GameOptions
	game       *adventure.Game
	err        error
	screen     *core.Screen
	input      *HeldKeys
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The world is generated once the
// tileset loader has finished.
func NewGameModel(opts GameOptions, width, height int) GameModel {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = opts.Settings.Screen.FPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultGameKeyMap(opts.AllowBack)
	h := help.New()
	h.Width = width

	return GameModel{
		id:        modelIDs.Add(1),
		opts:      opts,
		screen:    core.NewScreen(width, max(height-footerHeight, 1)),
		input:     NewHeldKeys(opts.Settings.HoldWindow()),
		keyMapper: NewKeyMapper(keys),
		keys:      keys,
		help:      h,
	}
}

// Init starts world generation and the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(m.loadWorld(), tickCmd(m.opts.FPS))
}

// loadWorld waits for the tileset, then builds and seeds the game.
func (m GameModel) loadWorld() tea.Cmd {
	opts, id := m.opts, m.id
	return func() tea.Msg {
		ctx := context.Background()

		pack, err := opts.Loader.Wait(ctx)
		if err != nil {
			return worldMsg{model: id, err: err}
		}

		game, err := adventure.New(adventure.Options{
			Settings: opts.Settings,
			Pack:     pack,
			Noise:    opts.Noise,
			Logger:   opts.Logger,
		})
		if err != nil {
			return worldMsg{model: id, err: err}
		}

		if err := game.Reset(ctx, opts.Seed); err != nil {
			return worldMsg{model: id, err: err}
		}
		return worldMsg{model: id, game: game}
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case worldMsg:
		if msg.model != m.id {
			return m, nil
		}
		m.game, m.err = msg.game, msg.err
		if m.err != nil {
			m.opts.Logger.Error("could not start adventure", "err", m.err)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		m.backToMenu = true
		m.input.Release()
		return m, nil
	}

	m.input.Press(action, time.Now())
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	frame := m.input.Snapshot(now)
	if m.game != nil {
		m.game.Step(frame)
	}
	// Held directions do not carry over into a new world or out of a pause.
	if frame.Has(core.ActionRestart) || frame.Has(core.ActionPause) {
		m.input.Release()
	}
	return m, tickCmd(m.opts.FPS)
}

// View renders the game and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.err != nil:
		body = fmt.Sprintf("\n  Could not start the adventure:\n\n  %v\n", m.err)
	case m.game == nil:
		body = "\n  Loading tileset..."
	default:
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))
	return body + "\n" + footer
}

// Game returns the running game, or nil while the world is loading.
func (m GameModel) Game() *adventure.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the world picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one adventure in the local terminal.
func Run(opts GameOptions, width, height int) error {
	model := NewGameModel(opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
