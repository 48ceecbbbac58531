package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickpong/internal/platform/tui"
	"github.com/vovakirdan/brickpong/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display recent matches and win totals.

Examples:
  brickpong history
  brickpong history --limit 50
  brickpong history --tui
  brickpong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse matches in an interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening history database: %v", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			fatal("%v", err)
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fatal("%v", err)
		}
		return
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fatal("%v", err)
	}
	totals, err := store.Totals()
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("BrickPong - Match History")
	fmt.Println("=========================")
	fmt.Println(tui.TotalsLine(*totals))
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("%-14s %4s %4s  %-9s %8s %6s  %s\n", "Date", "P1", "P2", "Winner", "Time", "Blocks", "End")
	for _, m := range matches {
		fmt.Printf("%-14s %4d %4d  %-9s %8s %6d  %s\n",
			m.CreatedAt.Format("Jan 02 15:04"),
			m.Score1, m.Score2, tui.WinnerLabel(m.Winner),
			m.Duration.Round(time.Second), m.BlocksLeft, m.EndReason)
	}
}
