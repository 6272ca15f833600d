package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wheeljam/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [puzzle-id]",
	Short: "Show recent puzzles",
	Long: `Display recently finished puzzles with their picks, and overall stats.
Pass a puzzle ID to show just that puzzle.

Examples:
  wheeljam history
  wheeljam history --limit 20
  wheeljam history 3f0c9a4e-5b1d-4c8e-9a55-2c7d1e6f8b90
  wheeljam history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of puzzles to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded puzzles")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printHistory(store, args); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store, args []string) error {
	if flagHistoryClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	if len(args) == 1 {
		rec, err := store.Puzzle(args[0])
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no puzzle with ID %q", args[0])
		}
		if err != nil {
			return err
		}
		printPuzzle(rec)
		return nil
	}

	puzzles, err := store.RecentPuzzles(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Puzzles")
	fmt.Println()

	if len(puzzles) == 0 {
		fmt.Println("No puzzles recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wheeljam play' to finish your first puzzle!")
		return nil
	}

	// Print header
	fmt.Printf("  %-8s  %-16s  %-6s  %s\n", "ID", "Date", "Tally", "Picks")
	fmt.Printf("  %-8s  %-16s  %-6s  %s\n", "--", "----", "-----", "-----")

	for _, p := range puzzles {
		fmt.Printf("  %-8s  %-16s  %-6d  %s\n",
			shortID(p.ID), p.CreatedAt.Format("2006-01-02 15:04"), p.Tally, formatPicks(p.Picks))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Puzzles: %d   Best: %d   Worst: %d   Average: %s\n",
		stats.Puzzles, stats.BestTally, stats.WorstTally, stats.AvgTally.StringFixed(2))
	return nil
}

func printPuzzle(rec storage.PuzzleRecord) {
	fmt.Printf("Puzzle %s\n", rec.ID)
	fmt.Printf("  Played: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Seed:   %d\n", rec.Seed)
	fmt.Println()
	for i, p := range rec.Picks {
		fmt.Printf("  %d. %-5s  %3d x %d = %d\n", i+1, p.Direction, p.Base, p.Slice, p.Total)
	}
	fmt.Println()
	fmt.Printf("  Tally: %d\n", rec.Tally)
}

func formatPicks(picks []storage.Pick) string {
	parts := make([]string, len(picks))
	for i, p := range picks {
		parts[i] = fmt.Sprintf("%s %d", p.Direction, p.Total)
	}
	return strings.Join(parts, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
