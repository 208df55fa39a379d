package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
)

// ErrNilScreens is returned by NewDriver without a Screens implementation.
var ErrNilScreens = errors.New("run: screens are required")

// LevelResult is what a level screen reports when it completes.
type LevelResult struct {
	State  GameState
	Signal Signal
}

// Screens runs each screen to completion. Implementations block until the
// player leaves the screen or ctx is cancelled.
type Screens interface {
	Title(ctx context.Context) (ReturnCode, error)
	Level(ctx context.Context, state GameState, settings config.GameSettings) (LevelResult, error)
	Score(ctx context.Context, state GameState) (ReturnCode, error)
	HighScores(ctx context.Context) (ReturnCode, error)
	Custom(ctx context.Context) (ReturnCode, error)
}

// Saver checkpoints a run between levels.
type Saver interface {
	Save(s GameState) error
	Load() (GameState, error)
	Clear() error
}

// Recorder stores the final state of a finished run.
type Recorder interface {
	Record(ctx context.Context, s GameState) error
}

type nopSaver struct{}

func (nopSaver) Save(GameState) error     { return nil }
func (nopSaver) Load() (GameState, error) { return GameState{}, errors.New("run: no saver configured") }
func (nopSaver) Clear() error             { return nil }

// Driver is the top-level state machine: it dispatches on return codes and
// runs the level loop for a game.
type Driver struct {
	screens  Screens
	table    config.Table
	rules    Rules
	saver    Saver
	recorder Recorder
	audio    audio.Player
	logger   *log.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithSaver checkpoints runs through s.
func WithSaver(s Saver) Option {
	return func(d *Driver) { d.saver = s }
}

// WithRecorder records finished runs through r.
func WithRecorder(r Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

// WithAudio plays music and effects through p.
func WithAudio(p audio.Player) Option {
	return func(d *Driver) { d.audio = p }
}

// WithLogger logs screen transitions to l.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// NewDriver validates cfg and builds a driver. Configuration problems are
// reported here, before any screen runs.
func NewDriver(screens Screens, cfg config.Config, opts ...Option) (*Driver, error) {
	if screens == nil {
		return nil, ErrNilScreens
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	d := &Driver{
		screens: screens,
		table:   cfg.Table(),
		rules:   RulesFrom(cfg),
		saver:   nopSaver{},
		audio:   audio.Nop{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Rules returns the run rules in effect.
func (d *Driver) Rules() Rules {
	return d.rules
}

// Run dispatches screens until one returns Exit or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	defer d.audio.Stop()

	code := MainMenu
	for code != Exit {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch code {
		case MainMenu:
			d.audio.StartLoop(audio.TrackTitle)
			d.logger.Info("Starting title screen")
			code, err = d.screens.Title(ctx)
			d.logger.Info("Closing title screen", "next", code)
		case Play, Restart:
			code, err = d.playRun(ctx, Fresh(d.rules))
		case Load:
			code, err = d.playRun(ctx, d.resume())
		case HighScores:
			d.logger.Info("Starting high score screen")
			code, err = d.screens.HighScores(ctx)
			d.logger.Info("Closing high score screen")
		case Custom:
			d.logger.Info("Starting custom screen")
			code, err = d.screens.Custom(ctx)
			d.logger.Info("Closing custom screen")
		default:
			d.logger.Warn("unknown return code, back to main menu", "code", code)
			code = MainMenu
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// resume loads the checkpoint, falling back to a fresh run.
func (d *Driver) resume() GameState {
	s, err := d.saver.Load()
	if err != nil {
		d.logger.Warn("could not load saved run, starting fresh", "error", err)
		return Fresh(d.rules)
	}
	if !s.Resumable(d.rules) {
		d.logger.Warn("saved run is not resumable, starting fresh", "level", s.Level, "lives", s.LivesRemaining)
		return Fresh(d.rules)
	}
	d.logger.Info("Resuming saved run", "level", s.Level, "score", s.Score)
	return s
}

// playRun is the level loop. state is the snapshot before the bonus-life
// check of the first level. Returning to the main menu ends the run with
// the snapshot from before the aborted level.
func (d *Driver) playRun(ctx context.Context, state GameState) (ReturnCode, error) {
	bonus := true
levels:
	for !state.Over(d.rules) {
		if err := ctx.Err(); err != nil {
			return Exit, err
		}

		entering := state
		if bonus {
			entering = EnterLevel(state, d.rules)
		}
		bonus = true

		settings, err := d.table.SettingsFor(entering.Level)
		if err != nil {
			return Exit, fmt.Errorf("run: %w", err)
		}

		d.audio.StartLoop(levelTrack(settings))
		d.logger.Info("Starting game screen", "level", entering.Level, "lives", entering.LivesRemaining, "score", entering.Score)
		res, err := d.screens.Level(ctx, entering, settings)
		if err != nil {
			return Exit, err
		}
		d.logger.Info("Closing game screen", "level", entering.Level, "signal", res.Signal)

		switch res.Signal {
		case SignalReturnToMain:
			break levels
		case SignalRestartLevel:
			// Retry from the snapshot the level started with; the bonus
			// life, if any, was already granted.
			state = entering
			bonus = false
			continue
		}

		state = Advance(res.State)
		if !state.Over(d.rules) {
			if err := d.saver.Save(state); err != nil {
				d.logger.Warn("could not save run", "error", err)
			}
		}
	}

	if err := d.saver.Clear(); err != nil {
		d.logger.Warn("could not clear saved run", "error", err)
	}
	if d.recorder != nil {
		if err := d.recorder.Record(ctx, state); err != nil {
			d.logger.Warn("could not record score", "error", err)
		}
	}

	d.audio.Play(audio.EffectRoundEnd)
	d.logger.Info("Starting score screen",
		"score", state.Score,
		"lives", state.LivesRemaining,
		"bullets", state.BulletsShot,
		"ships_destroyed", state.ShipsDestroyed,
	)
	code, err := d.screens.Score(ctx, state)
	d.logger.Info("Closing score screen", "next", code)
	return code, err
}

func levelTrack(s config.GameSettings) audio.Track {
	if s.Boss {
		return audio.TrackBoss
	}
	return audio.TrackLevel
}
