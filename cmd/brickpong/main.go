// brickpong is a two-player Breakout and Pong hybrid for the terminal,
// a desktop window, or remote terminals over SSH.
//
// Usage:
//
//	brickpong play       - Play in this terminal
//	brickpong window     - Play in a desktop window
//	brickpong serve      - Start SSH server for remote play
//	brickpong history    - Show recorded matches
//	brickpong config     - Print the effective arena config
//
// Global flags:
//
//	--config <path>     - Arena config YAML
//	--preset <name>     - Difficulty preset: easy, normal, hard
//	--tps <rate>        - Simulation ticks per second (default: 60)
//	--db <path>         - Match history database (default: ~/.brickpong/history.db)
//	--log-level <name>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagTPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickpong",
	Short: "BrickPong - Breakout meets two-player Pong",
	Long: `BrickPong is a two-player hot-seat game. Each player guards a paddle
on one side of the arena while a single ball bounces between walls, paddles
and two columns of blocks. Breaking a block scores for the player whose side
it is on.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  history  - Show recorded matches
  config   - Print the effective arena config

Examples:
  brickpong play
  brickpong play --preset hard
  brickpong window --config ./arena.yaml
  brickpong serve --ssh :2222
  brickpong history --tui`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Simulation ticks per second")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickpong/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
