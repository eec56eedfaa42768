package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// AudioControl is the subset of the speaker the UI drives.
type AudioControl interface {
	ToggleMute() bool
	SetPaused(paused bool)
	SetVolume(gain float64) float64
	Volume() float64
}

// volumeStep is the gain change per volume key press.
const volumeStep = 0.1

// Options carries the optional collaborators of a Model.
type Options struct {
	Store        *storage.Store // nil disables score saving
	Audio        AudioControl   // nil when sound is off
	Logger       *log.Logger    // nil discards
	Difficulty   string
	ReleaseAfter time.Duration
	KeepSeed     bool // Restart with the same seed instead of a fresh one
}

// Model is the Bubble Tea model running one asteroids game. Every
// simulation step happens on the Bubble Tea update goroutine.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	renderer *Renderer
	opts     Options
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	pending  []core.Event
	state    core.GameState
	title    string
	now      func() time.Time
	width    int
	height   int
	best     int
	volume   float64
	paused   bool
	muted    bool
	quitting bool
	// Whether the score has been saved for the current game over
	scoreSaved bool
}

// NewModel creates a Bubble Tea model for g.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	space := g.Space()
	m := Model{
		game:     g,
		screen:   core.NewScreen(space.W, space.H),
		renderer: NewRenderer(),
		opts:     opts,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		holds:    NewHoldTracker(opts.ReleaseAfter),
		title:    g.Title(),
		now:      time.Now,
		width:    80,
		height:   24,
	}
	if opts.Audio != nil {
		m.volume = opts.Audio.Volume()
	}
	m.loadBest()
	return m
}

// loadBest reads the stored high score shown next to the title.
func (m *Model) loadBest() {
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	m.best = best
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "difficulty", m.opts.Difficulty)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.opts.Audio != nil {
			m.opts.Audio.SetPaused(true)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.state.GameOver {
			return m, nil
		}
		m.paused = !m.paused
		if m.opts.Audio != nil {
			m.opts.Audio.SetPaused(m.paused)
		}
		// Held keys do not survive a pause.
		m.pending = append(m.pending, m.holds.ReleaseAll()...)
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		if m.opts.Audio != nil {
			m.muted = !m.opts.Audio.ToggleMute()
		}
		return m, nil

	case key.Matches(msg, m.keys.VolumeUp):
		m.changeVolume(volumeStep)
		return m, nil

	case key.Matches(msg, m.keys.VolumeDown):
		m.changeVolume(-volumeStep)
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.state.GameOver {
			m.restart()
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if b, ok := m.keys.Direction(msg); ok {
		m.pending = append(m.pending, m.holds.Press(b, m.now())...)
	}
	return m, nil
}

// changeVolume nudges the master gain by delta.
func (m *Model) changeVolume(delta float64) {
	if m.opts.Audio == nil {
		return
	}
	// Round to whole steps so repeated presses land on 0 and 1 exactly.
	target := math.Round((m.volume+delta)*10) / 10
	m.volume = m.opts.Audio.SetVolume(target)
}

// restart begins a new game after game over.
func (m *Model) restart() {
	if !m.opts.KeepSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.title = m.game.Title()
	m.pending = append(m.pending[:0], m.holds.ReleaseAll()...)
	m.scoreSaved = false
	m.logger.Info("game restarted", "seed", m.config.Seed)
}

// handleTick advances the simulation by one step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	events := append(m.pending, m.holds.Expire(now)...)
	result := m.game.Step(events)
	m.pending = m.pending[:0]

	wasOver := m.state.GameOver
	m.state = result.State
	m.title = result.Title

	if m.state.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.state.Score, "ticks", m.state.Tick)
	}

	// Save score on game over (once)
	if m.state.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveScore() {
	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Score:      m.state.Score,
		Ticks:      m.state.Tick,
		Seed:       m.config.Seed,
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "error", err)
		return
	}
	if m.state.Score > m.best {
		m.best = m.state.Score
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the title line, the play field and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	f := Scale(m.screen.Width(), m.screen.Height(), m.width, m.height-2)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	if status := m.status(); status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(m.renderer.Frame(m.screen, m.game.Background(), f))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) status() string {
	var parts []string
	switch {
	case m.paused:
		parts = append(parts, "PAUSED")
	case m.state.GameOver:
		parts = append(parts, "press r to restart")
	case m.state.Resting:
		parts = append(parts, "SHIELD")
	}
	if m.muted {
		parts = append(parts, "muted")
	} else if m.opts.Audio != nil && m.volume < 1 {
		parts = append(parts, fmt.Sprintf("vol %d%%", int(math.Round(m.volume*100))))
	}
	if m.best > 0 {
		parts = append(parts, fmt.Sprintf("best %d", m.best))
	}
	return strings.Join(parts, " · ")
}

// State returns the state reported by the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
