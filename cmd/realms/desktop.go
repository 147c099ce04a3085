package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tree-of-realms/internal/config"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms"
	"github.com/vovakirdan/tree-of-realms/internal/platform/desktop"
	"github.com/vovakirdan/tree-of-realms/internal/platform/tui"
)

var flagScale float64

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open Tree of Realms in a window with mouse aiming.

Accepts the same --config, --difficulty and --level flags as play.

Controls:
  A/D, Left/Right  - Move
  W/Space          - Jump
  W/S              - Climb stairs
  Mouse button     - Attack toward the cursor
  F/J              - Attack ahead
  E/Tab            - Switch sword/gun
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Quit

Examples:
  realms desktop
  realms desktop --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func init() {
	desktopCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the 800x600 world")
	desktopCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom realms config YAML")
	desktopCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	desktopCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting realm (1-based)")
}

func runDesktop(_ *cobra.Command, _ []string) {
	if _, err := config.LoadRealms(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	realms.SetConfigPath(flagConfig)

	game := realms.NewWithOptions(realms.Options{
		Preset:     config.ParsePreset(flagDifficulty),
		StartLevel: flagLevel,
	})

	store := openStore()

	runErr := desktop.Run(game, desktop.Options{
		Store:    store,
		Player:   tui.LocalPlayer,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Scale:    flagScale,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
