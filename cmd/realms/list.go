package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tree-of-realms/internal/config"
	"github.com/vovakirdan/tree-of-realms/internal/games/realms"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the realms of a run",
	Long:  `Shows the realms a run climbs through, in order.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom realms config YAML")
}

func runList(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadRealms(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Realms:")
	fmt.Println()
	fmt.Printf("  %-5s  %s\n", "Level", "Name")
	fmt.Printf("  %-5s  %s\n", "-----", "----")
	for level := 1; level <= cfg.Levels.Count; level++ {
		fmt.Printf("  %-5d  %s\n", level, realms.RealmName(level))
	}

	fmt.Println()
	fmt.Printf("Clearing a realm is worth %d points, each minion %d.\n", cfg.Levels.PointsPerLevel, cfg.Levels.PointsPerKill)
	fmt.Println("Run 'realms play --level <n>' to start in a realm.")
}
