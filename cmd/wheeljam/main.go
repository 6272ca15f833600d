// wheeljam is a terminal wheel-of-fortune selection puzzle.
//
// Usage:
//
//	wheeljam play            - Play a puzzle in this terminal
//	wheeljam serve           - Start SSH server for remote play
//	wheeljam history         - Show recent puzzles and the best tally
//	wheeljam config          - Print the effective wheel configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible puzzles
//	--db <path>          - Set database path (default: ~/.wheeljam/history.db)
//	--config <path>      - Use a specific wheel config YAML
//	--log-level <level>  - debug, info, warn, or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wheeljam",
	Short: "wheeljam - A wheel of fortune puzzle in your terminal",
	Long: `wheeljam is a selection puzzle played on a four-quadrant wheel.

Point the selector at a quadrant and confirm it. The ring of multipliers then
spins one quarter turn, and the quadrant's base value times the multiplier now
under it is added to your tally. The puzzle ends once four quadrants are picked.

Available commands:
  play     - Play a puzzle
  serve    - Start SSH server for remote play
  history  - View recent puzzles
  config   - Print the effective configuration

Examples:
  wheeljam play
  wheeljam play --seed 42
  wheeljam serve --ssh :2222
  wheeljam history --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wheeljam/history.db", "Path to puzzle history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom wheel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger at the level named by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
