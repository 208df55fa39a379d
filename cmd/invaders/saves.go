package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/save"
)

var flagClearSave bool

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Show or clear the saved run",
	Long: `Show the run checkpointed after the last completed level, or delete
it with --clear.

Examples:
  invaders saves
  invaders saves --clear`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

func init() {
	savesCmd.Flags().BoolVar(&flagClearSave, "clear", false, "Delete the saved run")
}

func runSaves(_ *cobra.Command, _ []string) error {
	store, err := save.Open(save.AppName)
	if err != nil {
		return err
	}

	if flagClearSave {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Saved run cleared.")
		return nil
	}

	s, err := store.Load()
	switch {
	case errors.Is(err, save.ErrNoSave):
		fmt.Println("No saved run.")
		return nil
	case err != nil:
		return err
	}

	fmt.Println("Saved run")
	fmt.Println()
	fmt.Printf("  Next level:      %d\n", s.Level)
	fmt.Printf("  Score:           %d\n", s.Score)
	fmt.Printf("  Lives:           %d\n", s.LivesRemaining)
	fmt.Printf("  Bombs:           %d\n", s.BombsRemaining)
	fmt.Printf("  Bullets shot:    %d\n", s.BulletsShot)
	fmt.Printf("  Ships destroyed: %d\n", s.ShipsDestroyed)
	fmt.Printf("  Ultimates used:  %d\n", s.UltimateUses)
	fmt.Println()
	fmt.Println("Pick Continue on the title screen to resume.")
	return nil
}
