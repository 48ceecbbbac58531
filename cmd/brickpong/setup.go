package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
	"github.com/vovakirdan/brickpong/internal/platform/history"
	"github.com/vovakirdan/brickpong/internal/storage"
)

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadArena loads the arena config and applies the preset flag.
func loadArena() config.ArenaConfig {
	preset, ok := config.ParsePreset(flagPreset)
	if !ok {
		fatal("unknown preset %q (use easy, normal or hard)", flagPreset)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}

	config.ApplyPreset(&cfg, preset)
	if err := config.Validate(cfg); err != nil {
		fatal("%v", err)
	}
	return cfg
}

// runtimeConfig builds adapter settings for a screen of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	if !core.ValidTickRate(flagTPS) {
		fatal("--tps must be between 1 and %d, got %d", core.MaxTickRate, flagTPS)
	}
	cfg.TickRate = flagTPS
	return cfg
}

// openHistory opens the match store and wraps it in a recorder.
// A store that cannot be opened is reported and play continues without it.
func openHistory(logger *log.Logger) (*history.Recorder, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return history.NewRecorder(nil, logger), func() {}
	}
	return history.NewRecorder(store, logger), func() { store.Close() }
}

// newEngine creates an engine that reports finished matches to rec.
func newEngine(arena config.ArenaConfig, rt core.RuntimeConfig, logger *log.Logger, rec *history.Recorder) *brickpong.Engine {
	engine, err := brickpong.New(arena,
		brickpong.WithLogger(logger),
		brickpong.WithTickRate(rt.TickRate),
		brickpong.WithMatchEnd(rec.MatchEnded),
	)
	if err != nil {
		fatal("%v", err)
	}
	return engine
}
