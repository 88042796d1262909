package tui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/games/outrun"
)

// hudRows is the height of the status bar above the scene.
const hudRows = 1

// liveSession tracks the running session across Model copies so whoever
// owns the program can close the current one after a restart.
type liveSession struct {
	mu      sync.Mutex
	session *outrun.Session
}

func (l *liveSession) set(s *outrun.Session) {
	l.mu.Lock()
	l.session = s
	l.mu.Unlock()
}

func (l *liveSession) close() {
	l.mu.Lock()
	s := l.session
	l.mu.Unlock()
	if s != nil {
		s.Close()
	}
}

// Model is the Bubble Tea model for one game of Obstacle Outrun.
// Every display refresh advances the session; a restart replaces it.
type Model struct {
	cfg       config.OutrunConfig
	runtime   core.RuntimeConfig
	logger    *log.Logger
	session   *outrun.Session
	live      *liveSession
	scene     *Scene
	hud       *HUD
	hold      *core.HoldInput
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	now       time.Time        // Time of the last refresh
	clock     func() time.Time // Stamps key presses as they arrive
	quitting  bool
}

// NewModel creates a model and starts its first session at now.
func NewModel(cfg config.OutrunConfig, rc core.RuntimeConfig, logger *log.Logger, now time.Time) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = now.UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = rc.ScreenW

	m := Model{
		cfg:       cfg,
		runtime:   rc,
		logger:    logger,
		live:      &liveSession{},
		scene:     NewScene(rc.ScreenW, rc.ScreenH, cfg.Player.MaxX+cfg.Player.Size/2),
		hud:       NewHUD(cfg.Gameplay.Lives),
		hold:      core.NewHoldInput(cfg.Input.Hold()),
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      h,
		clock:     time.Now,
	}
	m.layout()
	m.startSession(now, rc.Seed)
	return m
}

// startSession builds and starts a fresh session.
func (m *Model) startSession(now time.Time, seed int64) {
	m.now = now
	m.hud.Reset()
	m.scene.SetBanner()
	m.session = outrun.NewSession(m.cfg, seed, now, outrun.Deps{
		Presenter: m.scene,
		UI:        m.hud,
		Logger:    m.logger,
	})
	m.live.set(m.session)
	m.session.Start()
}

// CloseSession closes whichever session is running, including one started
// by a restart on a later copy of the model. It is safe to call repeatedly.
func (m Model) CloseSession() {
	m.live.close()
}

// pressTime is when a key press arrived. Presses are never stamped before
// the last refresh.
func (m Model) pressTime() time.Time {
	at := m.clock()
	if at.Before(m.now) {
		return m.now
	}
	return at
}

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.session.Close()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.pressTime())
	case core.ActionRestart:
		if m.session.State().GameOver {
			m.restart()
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	return m, nil
}

// restart tears the finished session down and starts a new one with a
// fresh seed.
func (m *Model) restart() {
	m.session.Close()
	m.hold.Release(core.ActionLeft)
	m.hold.Release(core.ActionRight)
	seed := time.Now().UnixNano()
	m.logger.Info("restart", "seed", seed)
	m.startSession(m.now, seed)
	m.layout()
}

// handleResize processes window resize events. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout fits the scene between the status bar and the footer.
func (m *Model) layout() {
	sceneH := max(m.runtime.ScreenH-hudRows-lipgloss.Height(m.footer()), 1)
	m.scene.Resize(m.runtime.ScreenW, sceneH)
}

// handleTick advances the session by one display refresh.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if now.After(m.now) {
		m.now = now
	}
	wasOver := m.hud.GameOver()
	m.session.Advance(m.now, m.hold.Frame(m.now))
	if m.hud.GameOver() != wasOver {
		m.scene.SetBanner("GAME OVER", fmt.Sprintf("final score %d", m.hud.FinalScore()))
		m.layout()
	}
	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) footer() string {
	if m.hud.GameOver() {
		return m.hud.StatusLine()
	}
	return m.help.View(m.keys)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(m.runtime.ScreenW),
		RenderScreen(m.scene.Screen()),
		m.footer(),
	)
}

// Session returns the running session.
func (m Model) Session() *outrun.Session {
	return m.session
}

// Scene returns the terminal presenter.
func (m Model) Scene() *Scene {
	return m.scene
}

// HUD returns the terminal UI collaborator.
func (m Model) HUD() *HUD {
	return m.hud
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.OutrunConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rc, logger, time.Now())

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	model.CloseSession()
	return err
}
