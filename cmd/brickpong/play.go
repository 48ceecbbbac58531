package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickpong/internal/logging"
	"github.com/vovakirdan/brickpong/internal/platform/tui"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start BrickPong in the current terminal.

Controls:
  Enter / click Play  - Start a match
  Up/Down             - Player 1 paddle (right)
  W/S                 - Player 2 paddle (left)
  Space               - Pause/resume
  Esc                 - End the match and return to the menu
  Q/Ctrl+C            - Quit

Terminals report key presses but not releases, so a press keeps the
paddle moving for a short hold window; hold the key to keep moving.

The terminal belongs to the game, so logs go to --log-file.

Examples:
  brickpong play
  brickpong play --preset easy --fps 60
  brickpong play --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 30, "Render frames per second")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.brickpong/brickpong.log", "Log file path")
}

func runPlay(_ *cobra.Command, _ []string) {
	arena := loadArena()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := runtimeConfig(width, height)
	if flagFPS > 0 {
		rt.FrameRate = flagFPS
	}

	logger, closer, err := logging.OpenFile(flagLogFile, flagLogLevel, "brickpong")
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	rec, closeStore := openHistory(logger)
	defer closeStore()

	engine := newEngine(arena, rt, logger, rec)
	logger.Info("starting terminal game", "width", width, "height", height, "tps", rt.TickRate, "fps", rt.FrameRate)

	if err := tui.Run(engine, rec, rt); err != nil {
		logger.Error("game stopped", "error", err)
		fatal("running game: %v", err)
	}
}
