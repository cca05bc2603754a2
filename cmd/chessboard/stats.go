package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chessboard/internal/registry"
	"github.com/vovakirdan/tui-chessboard/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [setup]",
	Short: "Show the session journal",
	Long: `Display recent sessions and totals, for one setup or for all of them.

Examples:
  chessboard stats
  chessboard stats standard
  chessboard stats capture-demo --limit 25
  chessboard stats standard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the journal of the given setup")
}

func runStats(cmd *cobra.Command, args []string) {
	mustLoadConfig()

	setupID := ""
	title := "all setups"
	if len(args) > 0 {
		setupID = args[0]
		if !registry.Exists(setupID) {
			unknownSetup(setupID)
		}
		title = registry.Title(setupID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if setupID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a setup")
			os.Exit(1)
		}
		if err := store.ClearSessions(setupID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared journal of %s\n", title)
		return
	}

	sessions, err := store.RecentSessions(setupID, flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session journal - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Move a piece in 'chessboard play' to start the journal!")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-10s  %5s  %5s  %5s  %s\n", "Date", "Setup", "Player", "Moves", "Capt", "Rej", "Time")
	fmt.Printf("  %-16s  %-14s  %-10s  %5s  %5s  %5s  %s\n", "----", "-----", "------", "-----", "----", "---", "----")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-14s  %-10s  %5d  %5d  %5d  %s\n",
			s.EndedAt.Format("2006-01-02 15:04"), s.SetupID, s.Player,
			s.Moves, s.Captures, s.Rejected, s.Duration().Round(time.Second))
	}

	totals, err := store.Totals(setupID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d sessions, %d moves, %d captures, %d rejected\n",
			totals.Sessions, totals.Moves, totals.Captures, totals.Rejected)
	}
}
