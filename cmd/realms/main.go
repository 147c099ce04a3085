// realms is a terminal platformer: clear five realms of minions with
// sword or gun, locally, over SSH, or in a desktop window.
//
// Usage:
//
//	realms play              - Play a run in this terminal
//	realms menu              - Title menu with setup and scoreboard
//	realms serve             - Start SSH server for remote play
//	realms desktop           - Play in a desktop window
//	realms scores            - Show high scores and recent runs
//	realms schema            - Print the config JSON Schema
//	realms list              - List the realms of a run
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write game event logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "realms",
	Short: "Tree of Realms - a platformer in your terminal",
	Long: `Tree of Realms is a 2D platformer. Climb through five realms,
clearing each of minions with your sword or gun, then step through the
door to the next.

Available commands:
  play     - Play a run directly
  menu     - Title menu with difficulty and realm select
  serve    - Start SSH server for remote play
  desktop  - Play in a desktop window
  scores   - View high scores and recent runs
  schema   - Print the JSON Schema of the config file
  list     - List the realms of a run

Examples:
  realms play
  realms play --difficulty hard --level 3
  realms menu
  realms serve --ssh :2222
  realms desktop --scale 1.5
  realms scores --runs 20`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game event logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(listCmd)
}
