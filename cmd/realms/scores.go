package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tree-of-realms/internal/games/realms"
	"github.com/vovakirdan/tree-of-realms/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRuns   bool
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the best scores and game statistics.

Examples:
  realms scores
  realms scores --limit 20
  realms scores --runs
  realms scores --player alice
  realms scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "Show recent runs instead of top scores")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show runs of one player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores and runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(realms.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "db", flagDBPath)
		fmt.Println("All Tree of Realms scores cleared.")
		return
	}

	switch {
	case flagScoresPlayer != "":
		runs, err := store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Runs - %s\n\n", flagScoresPlayer)
		printRuns(os.Stdout, runs)
	case flagScoresRuns:
		runs, err := store.RecentRuns(realms.GameID, flagScoresLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Recent Runs - Tree of Realms\n\n")
		printRuns(os.Stdout, runs)
	default:
		scores, err := store.TopScores(realms.GameID, flagScoresLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("High Scores - Tree of Realms\n\n")
		printScores(os.Stdout, scores)
	}

	if stats, err := store.GetGameStats(realms.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		printStats(os.Stdout, stats)
	}
}

func printScores(w io.Writer, scores []storage.ScoreEntry) {
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'realms play' to set the first high score!")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tScore\tDate")
	fmt.Fprintln(tw, "  ----\t-----\t----")
	for i, entry := range scores {
		fmt.Fprintf(tw, "  %d\t%d\t%s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func printRuns(w io.Writer, runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Player\tOutcome\tRealm\tKills\tDeaths\tScore\tTime\tDate")
	fmt.Fprintln(tw, "  ------\t-------\t-----\t-----\t------\t-----\t----\t----")
	for _, r := range runs {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.Player, r.Outcome, r.Level, r.Kills, r.Deaths, r.Score,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func printStats(w io.Writer, s *storage.GameStats) {
	fmt.Fprintf(w, "Games: %d  Victories: %d  Best: %d  Avg: %.0f  Kills: %d\n",
		s.GamesCount, s.Victories, s.HighScore, s.AvgScore, s.TotalKills)
	if !s.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
