// invaders is a Space Invaders style shooter for the terminal.
//
// Usage:
//
//	invaders [play]          - Play from the title screen
//	invaders scores          - Show the high-score table
//	invaders levels          - Show the level table (--watch to re-check on edit)
//	invaders saves           - Show or clear the checkpointed run
//	invaders serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--config <path>       - Use a custom invaders.yaml
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "TUI Invaders - defend the earth from your terminal",
	Long: `TUI Invaders is a terminal shoot 'em up: nine levels of enemy
formations, a bonus stage and a boss fight.

Available commands:
  play     - Play from the title screen (default)
  scores   - View high scores
  levels   - Show the level table
  saves    - Show or clear the saved run
  serve    - Start SSH server for remote play

Examples:
  invaders
  invaders play --difficulty hard
  invaders scores --player ace
  invaders levels --config ./invaders.yaml --watch
  invaders serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = value from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom invaders.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.invaders/invaders.log", "Log file used while the game owns the terminal")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(serveCmd)
}
