package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/run"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// ErrQuit is returned by the level screen when the player quits the
// program in the middle of a level.
var ErrQuit = errors.New("tui: player quit")

// ScreensConfig holds what the screens need besides the terminal.
type ScreensConfig struct {
	Config  config.Config
	Runtime core.RuntimeConfig // TickRate 0 uses Config.Run.FPS
	Store   *storage.Store
	Saver   run.Saver
	Audio   audio.Player
}

// Screens runs every screen of the game as its own Bubble Tea program.
// It implements run.Screens.
type Screens struct {
	runner *Runner
	cfg    ScreensConfig
	design ShipDesign
}

var _ run.Screens = (*Screens)(nil)

// NewScreens creates the screens on runner's terminal.
func NewScreens(runner *Runner, cfg ScreensConfig) *Screens {
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = cfg.Config.Run.FPS
	}
	if cfg.Audio == nil {
		cfg.Audio = audio.Nop{}
	}
	return &Screens{runner: runner, cfg: cfg}
}

// Title runs the title menu.
func (s *Screens) Title(ctx context.Context) (run.ReturnCode, error) {
	w, h := s.runner.Size()
	m := NewMenuModel(TitleItems(s.hasSave()), s.highScore(), w, h)

	final, err := s.runner.Run(ctx, m)
	if err != nil {
		return run.Exit, err
	}
	if fm, ok := final.(MenuModel); ok {
		return fm.Selected(), nil
	}
	return run.Exit, nil
}

// Level plays one level and returns its result.
func (s *Screens) Level(ctx context.Context, state run.GameState, settings config.GameSettings) (run.LevelResult, error) {
	env := invaders.Env{
		Clock:       engine.SystemClock{},
		Audio:       s.cfg.Audio,
		WorldWidth:  s.cfg.Config.Run.WorldWidth,
		WorldHeight: s.cfg.Config.Run.WorldHeight,
	}
	if seed := s.cfg.Runtime.LevelSeed(state.Level); seed != 0 {
		env.Rand = engine.NewSimpleRNG(seed)
	}
	level := invaders.New(state, settings, env)

	w, h := s.runner.Size()
	m := NewLevelModel(level, w, h, s.cfg.Runtime.TickRate).WithShipDesign(s.design)
	final, err := s.runner.Run(ctx, m)
	if err != nil {
		return run.LevelResult{}, err
	}
	if fm, ok := final.(LevelModel); ok && fm.IsQuitting() {
		return run.LevelResult{}, ErrQuit
	}
	return level.Result(), nil
}

// Score shows the summary of a finished run.
func (s *Screens) Score(ctx context.Context, state run.GameState) (run.ReturnCode, error) {
	w, h := s.runner.Size()
	won := state.LivesRemaining > 0
	m := NewScoreModel(state, won, s.highScore(), w, h)
	return s.runNext(ctx, m)
}

// HighScores shows the high-score table.
func (s *Screens) HighScores(ctx context.Context) (run.ReturnCode, error) {
	w, h := s.runner.Size()
	return s.runNext(ctx, LoadScoreboard(s.cfg.Store, w, h))
}

// Custom shows the run rules and level table. The ship design picked there
// is used by every later level.
func (s *Screens) Custom(ctx context.Context) (run.ReturnCode, error) {
	w, h := s.runner.Size()
	final, err := s.runner.Run(ctx, NewCustomModel(s.cfg.Config, s.design, w, h))
	if err != nil {
		return run.Exit, err
	}
	fm, ok := final.(CustomModel)
	if !ok {
		return run.Exit, fmt.Errorf("tui: unexpected settings model %T", final)
	}
	s.design = fm.Design()
	return fm.Next(), nil
}

// nexter is implemented by screens that end with a return code.
type nexter interface {
	Next() run.ReturnCode
}

func (s *Screens) runNext(ctx context.Context, m tea.Model) (run.ReturnCode, error) {
	final, err := s.runner.Run(ctx, m)
	if err != nil {
		return run.Exit, err
	}
	n, ok := final.(nexter)
	if !ok {
		return run.Exit, fmt.Errorf("tui: screen %T has no return code", final)
	}
	return n.Next(), nil
}

func (s *Screens) hasSave() bool {
	if s.cfg.Saver == nil {
		return false
	}
	_, err := s.cfg.Saver.Load()
	return err == nil
}

func (s *Screens) highScore() int {
	if s.cfg.Store == nil {
		return 0
	}
	hs, err := s.cfg.Store.HighScore()
	if err != nil {
		return 0
	}
	return hs
}
