package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tree-of-realms/internal/config"
	"github.com/vovakirdan/tree-of-realms/internal/core"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms"
	"github.com/vovakirdan/tree-of-realms/internal/platform/tui"
	"github.com/vovakirdan/tree-of-realms/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run in this terminal",
	Long: `Start a run of Tree of Realms.

Without --difficulty or --level a setup screen asks for both.

Controls:
  A/D, Left/Right  - Move
  Space            - Jump
  W/S, Up/Down     - Climb stairs
  F/J or click     - Attack
  E/Tab            - Switch sword/gun
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  realms play
  realms play --difficulty hard
  realms play --level 4 --seed 42
  realms play --config ./my-realms.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom realms config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting realm (1-based)")
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, _ []string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Fail before the alt screen on a broken config
	realmsCfg, err := config.LoadRealms(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagLevel < 0 || flagLevel > realmsCfg.Levels.Count {
		fmt.Fprintf(os.Stderr, "Error: --level must be between 1 and %d\n", realmsCfg.Levels.Count)
		os.Exit(1)
	}

	realms.SetConfigPath(flagConfig)
	cfg := runtimeConfig()

	if !cmd.Flags().Changed("difficulty") && !cmd.Flags().Changed("level") {
		selection, quit, selErr := tui.RunRealmsSetup(cfg, realms.LevelCount())
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if quit || selection == nil {
			return
		}
		flagDifficulty = string(selection.Preset)
		flagLevel = selection.Level
	}

	realms.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		realms.SetStartLevel(flagLevel)
	}

	store := openStore()

	runErr := tui.Run(realms.New(), store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
