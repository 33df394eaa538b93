package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/huehunt/internal/config"
	"github.com/vovakirdan/huehunt/internal/core"
	"github.com/vovakirdan/huehunt/internal/hue"
	"github.com/vovakirdan/huehunt/internal/registry"
	"github.com/vovakirdan/huehunt/internal/storage"
)

// Model is the Bubble Tea model for a single play session.
type Model struct {
	mode      registry.Mode
	engine    *hue.Engine
	store     *storage.Store
	config    core.RuntimeConfig
	theme     config.ThemeConfig
	keyMapper *KeyMapper

	session      hue.Session
	cursor       int // board index the keyboard cursor is on
	epoch        int // increments every time the clock is armed
	best         int
	newBest      bool
	startedAt    time.Time
	lastDuration float64 // wall-clock seconds of the finished run

	width       int
	height      int
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewModel creates a play session model for the given mode.
func NewModel(mode registry.Mode, store *storage.Store, cfg core.RuntimeConfig, theme config.ThemeConfig) Model {
	m := Model{
		mode:      mode,
		engine:    hue.NewSeeded(mode.Seed(time.Now(), cfg.Seed)),
		store:     store,
		config:    cfg,
		theme:     theme,
		keyMapper: NewKeyMapper(),
		cursor:    hue.CellCount / 2,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.session = m.engine.Snapshot()

	if store != nil {
		if best, err := store.HighScore(mode.ID); err == nil {
			m.best = best
		}
	}

	return m
}

// Init initializes the model. The clock stays disarmed until the player
// starts a run from the idle screen.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey routes keyboard input by session state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Status == hue.StatusPlaying {
		return m.handlePlayKey(msg)
	}
	return m.handleScreenKey(msg)
}

// handlePlayKey processes keyboard input during a round.
func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapPlayKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		if m.cursor >= hue.GridSize {
			m.cursor -= hue.GridSize
		}
	case core.ActionDown:
		if m.cursor < hue.CellCount-hue.GridSize {
			m.cursor += hue.GridSize
		}
	case core.ActionLeft:
		if m.cursor%hue.GridSize > 0 {
			m.cursor--
		}
	case core.ActionRight:
		if m.cursor%hue.GridSize < hue.GridSize-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		m.session = m.engine.Select(m.cursor)
	case core.ActionInfo:
		// Leave the round for the info screen. The pending tick is
		// dropped by the status guard; the run's numbers stay visible.
		m.session = m.engine.ShowIdle()
	}

	return m, nil
}

// handleScreenKey processes keyboard input on the idle and game-over screens.
func (m Model) handleScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapScreenKey(msg) {
	case ScreenActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ScreenActionStart:
		return m.startRun()
	case ScreenActionBack:
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// startRun begins a fresh run and arms the clock. The engine is rebuilt
// from the mode's seed rule so a daily restart replays the day's shared
// sequence instead of continuing a private RNG stream.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	m.engine = hue.NewSeeded(m.mode.Seed(time.Now(), m.config.Seed))
	m.session = m.engine.Start()
	m.cursor = hue.CellCount / 2
	m.startedAt = time.Now()
	m.resultSaved = false
	m.newBest = false
	m.epoch++
	return m, tickCmd(m.epoch)
}

// handleMouse processes hover and click input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.session.Status != hue.StatusPlaying {
		if click {
			return m.startRun()
		}
		return m, nil
	}

	index := m.layout().CellAt(msg.X, msg.Y)
	if index < 0 {
		return m, nil
	}

	if click {
		m.cursor = index
		m.session = m.engine.Select(index)
	} else if msg.Action == tea.MouseActionMotion {
		m.cursor = index
	}

	return m, nil
}

// handleTick advances the game clock by one step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Drop ticks from a previous run and ticks that arrive after the
	// clock was disarmed.
	if msg.Epoch != m.epoch || m.session.Status != hue.StatusPlaying {
		return m, nil
	}

	m.session = m.engine.Tick(hue.TickDelta)

	if m.session.Status == hue.StatusGameOver {
		m.lastDuration = time.Since(m.startedAt).Seconds()
		m.saveResult()
		return m, nil
	}

	return m, tickCmd(m.epoch)
}

// saveResult records the finished run once per game over.
func (m *Model) saveResult() {
	if m.resultSaved || m.session.Score <= 0 {
		return
	}
	m.resultSaved = true

	if m.session.Score > m.best {
		m.best = m.session.Score
		m.newBest = true
	}

	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the summary shows regardless
	m.store.SaveResult(storage.Result{
		ModeID:   m.mode.ID,
		Score:    m.session.Score,
		Level:    m.session.Round.Level,
		Accuracy: m.session.Accuracy(),
		Duration: m.lastDuration,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.Status {
	case hue.StatusPlaying:
		return m.viewPlaying()
	case hue.StatusGameOver:
		return m.viewSummary()
	default:
		return m.viewIdle()
	}
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one play session. It returns
// true if the user backed out to the menu rather than quitting.
func Run(mode registry.Mode, store *storage.Store, cfg core.RuntimeConfig, theme config.ThemeConfig) (backToMenu bool, err error) {
	model := NewModel(mode, store, cfg, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Hover moves the cursor, click picks
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
