package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/audio/beepaudio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/run"
	"github.com/vovakirdan/tui-invaders/internal/save"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagPlayer string
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play from the title screen",
	Long: `Start the game at the title screen.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Fire
  X                - Bomb (clears enemy fire, hits nearby enemies)
  U                - Ultimate (clears enemy fire, long cooldown)
  P/Esc            - Pause (then B: main menu, R: restart level)
  Q/Ctrl+C         - Quit

Progress is saved after every level; pick Continue on the title screen
to resume.

Difficulty options:
  easy   - 5 lives, slower enemy fire
  normal - values from the config file
  hard   - 2 lives, faster enemy fire

Examples:
  invaders play
  invaders play --difficulty easy --player ace
  invaders play --seed 42 --mute
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&flagPlayer, "player", defaultPlayerName(), "Name recorded with your scores")
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
		c.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume between 0 and 1")
	}
}

func defaultPlayerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Get terminal size
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Run.FPS
	rt.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	var saver run.Saver
	if st, saveErr := save.Open(save.AppName); saveErr != nil {
		logger.Warn("could not open save slot, progress will not be kept", "error", saveErr)
	} else {
		saver = st
	}

	player := openAudio(logger)

	screens := tui.NewScreens(tui.NewRunner(rt.ScreenW, rt.ScreenH, tea.WithAltScreen()), tui.ScreensConfig{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Saver:   saver,
		Audio:   player,
	})

	opts := []run.Option{run.WithLogger(logger), run.WithAudio(player)}
	if saver != nil {
		opts = append(opts, run.WithSaver(saver))
	}
	if store != nil {
		opts = append(opts, run.WithRecorder(storage.Recorder{Store: store, Name: flagPlayer}))
	}

	driver, err := run.NewDriver(screens, cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("game started", "player", flagPlayer, "levels", len(cfg.Levels), "fps", rt.TickRate, "seed", rt.Seed)
	err = driver.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrQuit), errors.Is(err, context.Canceled):
		logger.Info("game ended")
		return nil
	default:
		logger.Error("game failed", "error", err)
		return fmt.Errorf("game error: %w", err)
	}
}

// openAudio starts the sound device. The game stays silent when it is
// muted or no device is available.
func openAudio(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.Nop{}
	}
	sm := beepaudio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Nop{}
	}
	return sm
}
