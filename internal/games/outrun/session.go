package outrun

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/utsabpanta/threejs-obstacle-outrun/internal/config"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/core"
	"github.com/utsabpanta/threejs-obstacle-outrun/internal/scheduler"
)

// Deps are the collaborators a session talks to. Nil fields get no-op
// implementations.
type Deps struct {
	Presenter Presenter
	UI        UI
	Logger    *log.Logger
}

// Session runs one game from start to teardown. It wires the game to three
// periodic activities on a single cooperative scheduler: the obstacle
// spawner, the score display refresh and the per-frame update.
//
// A session is never reset. To restart, Close it and create a new one.
type Session struct {
	game      *Game
	sched     *scheduler.Scheduler
	cfg       config.OutrunConfig
	presenter Presenter
	ui        UI
	logger    *log.Logger

	input   core.InputFrame
	started bool
	closed  bool
}

// NewSession builds a fresh session whose clock starts at start.
func NewSession(cfg config.OutrunConfig, seed int64, start time.Time, deps Deps) *Session {
	if deps.Presenter == nil {
		deps.Presenter = nopPresenter{}
	}
	if deps.UI == nil {
		deps.UI = nopUI{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	return &Session{
		game:      NewGame(cfg, seed),
		sched:     scheduler.New(start),
		cfg:       cfg,
		presenter: deps.Presenter,
		ui:        deps.UI,
		logger:    deps.Logger,
		input:     core.NewInputFrame(),
	}
}

// Start shows the player, pushes the initial HUD values, registers the
// periodic tasks and requests the first frame. Calling it again is a no-op.
func (s *Session) Start() {
	if s.started || s.closed {
		return
	}
	s.started = true

	w := s.game.World()
	s.presenter.Add(PlayerID, KindPlayer, w.Player.Pos, w.Player.Size)
	s.ui.ShowScore(w.Score)
	s.ui.ShowLives(w.Lives)

	s.sched.Every(s.cfg.Spawn.Interval(), s.spawn)
	s.sched.Every(s.cfg.Timing.ScoreRefresh(), s.refreshScore)
	s.sched.RequestFrame(s.frame)

	s.logger.Debug("session started", "lives", w.Lives)
}

// Advance delivers one display refresh at now with the current input.
func (s *Session) Advance(now time.Time, in core.InputFrame) {
	if s.closed {
		return
	}
	s.input = in
	s.sched.Advance(now)
}

// spawn runs on the spawn timer.
func (s *Session) spawn() {
	o, ok := s.game.Spawn()
	if !ok {
		return
	}
	s.presenter.Add(o.ID, KindObstacle, o.Pos, o.Size)
}

// refreshScore runs on the score display timer.
func (s *Session) refreshScore() {
	s.ui.ShowScore(s.game.World().Score)
}

// frame is the per-frame update. The frame that ends the game is the last
// one requested; afterwards the final scene stays on screen untouched.
func (s *Session) frame() {
	res := s.game.Step(s.input)

	for _, id := range res.Despawned {
		s.presenter.Remove(id)
	}
	for _, id := range res.Hit {
		s.presenter.Remove(id)
	}

	w := s.game.World()
	s.presenter.Move(PlayerID, w.Player.Pos)
	for _, o := range w.Obstacles {
		s.presenter.Move(o.ID, o.Pos)
	}

	if len(res.Hit) > 0 {
		s.ui.ShowLives(w.Lives)
	}

	s.presenter.Redraw()

	if res.GameOver {
		s.ui.ShowScore(w.Score)
		s.ui.ShowGameOver(w.Score)
		s.logger.Info("game over", "score", w.Score, "ticks", s.game.tickCount)
		return
	}
	s.sched.RequestFrame(s.frame)
}

// Close tears the session down: all periodic tasks and the pending frame
// are cancelled together and every visual is removed. Safe to call more
// than once and at any point, including right after game over.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sched.Close()

	if s.started {
		for _, o := range s.game.World().Obstacles {
			s.presenter.Remove(o.ID)
		}
		s.presenter.Remove(PlayerID)
	}

	s.logger.Debug("session closed", "score", s.game.World().Score)
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// State returns the current score, lives and game-over flag.
func (s *Session) State() core.GameState {
	return s.game.State()
}

// Snapshot returns a copy of the game state.
func (s *Session) Snapshot() Snapshot {
	return s.game.Snapshot()
}

// World exposes the live state for rendering.
func (s *Session) World() *World {
	return s.game.World()
}

// PendingTasks returns the number of live periodic tasks and whether a frame
// is still requested.
func (s *Session) PendingTasks() (periodic int, frame bool) {
	return s.sched.Pending(), s.sched.FramePending()
}
