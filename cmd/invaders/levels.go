package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagWatch bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Print the run rules and the per-level difficulty table after the
config file and difficulty preset have been applied.

With --watch the config file is re-read and re-validated every time it
changes, so a table can be tuned in an editor next to a terminal.

Examples:
  invaders levels
  invaders levels --difficulty hard
  invaders levels --config ./invaders.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-validate the config file whenever it changes")
}

func runLevels(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	source := config.Resolve(flagConfig)
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n\n", source)
	printLevels(cmd.OutOrStdout(), cfg)

	if !flagWatch {
		return nil
	}
	if source == "built-in defaults" {
		return errors.New("no config file to watch, pass --config or create " + config.FileName)
	}
	return watchLevels(cmd.OutOrStdout(), source)
}

func printLevels(out io.Writer, cfg config.Config) {
	r := cfg.Run
	fmt.Fprintf(out, "Lives: %d (extra life every %d levels)\n", r.MaxLives, r.ExtraLifeFrequency)
	fmt.Fprintf(out, "Bombs: %d  Skill cooldowns: %v s\n", r.Bombs, r.SkillCooldowns)
	fmt.Fprintf(out, "World: %dx%d at %d fps\n\n", r.WorldWidth, r.WorldHeight, r.FPS)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Level\tColumns\tRows\tSpeed\tFire ms\tKind")
	for i, s := range cfg.Levels {
		kind := "-"
		switch {
		case s.Boss:
			kind = "boss"
		case s.Bonus:
			kind = "bonus"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%s\n",
			i+1, s.FormationWidth, s.FormationHeight, s.BaseSpeed, s.ShootingFrequencyMs, kind)
	}
	w.Flush()
}

func watchLevels(out io.Writer, path string) error {
	logger, err := newConsoleLogger("levels", flagLogLevel)
	if err != nil {
		return err
	}

	watcher, err := config.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching config, press Ctrl+C to stop", "path", path)
	done := make(chan struct{})
	go func() {
		defer close(done)
		watcher.Watch(func(cfg config.Config, err error) {
			if err != nil {
				logger.Error("config rejected", "error", err)
				return
			}
			preset, _ := config.ParsePreset(flagDifficulty)
			config.ApplyPreset(&cfg, preset)
			logger.Info("config reloaded", "levels", len(cfg.Levels))
			printLevels(out, cfg)
		})
	}()

	<-ctx.Done()
	err = watcher.Close()
	<-done
	return err
}
