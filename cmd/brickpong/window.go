package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickpong/internal/logging"
	"github.com/vovakirdan/brickpong/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start BrickPong in a desktop window.

Controls:
  Enter / click Play  - Start a match
  Up/Down             - Player 1 paddle (right)
  W/S                 - Player 2 paddle (left)
  Space               - Pause/resume
  Esc                 - End the match and return to the menu
  Q                   - Quit

Examples:
  brickpong window
  brickpong window --tps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	arena := loadArena()
	rt := runtimeConfig(0, 0)

	logger := logging.New(os.Stderr, flagLogLevel, "brickpong")
	rec, closeStore := openHistory(logger)
	defer closeStore()

	engine := newEngine(arena, rt, logger, rec)
	if err := window.Run(engine, rec, logger, rt); err != nil {
		closeStore()
		fatal("%v", err)
	}
}
