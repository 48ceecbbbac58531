// Package window runs BrickPong in a desktop window using Ebiten.
// Unlike the terminal, Ebiten reports real key-held state, so paddle input
// needs no emulation.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
	"github.com/vovakirdan/brickpong/internal/platform/history"
	"github.com/vovakirdan/brickpong/internal/storage"
)

// Game implements ebiten.Game over a BrickPong engine.
type Game struct {
	engine   *brickpong.Engine
	recorder *history.Recorder
	logger   *log.Logger
	step     time.Duration // Wall time per Update call
	hudFace  text.Face
	bigFace  text.Face
	layout   Layout
}

// New creates a window game for engine. Ebiten calls Update tickRate times
// per second; each call advances the engine by one tick's worth of time.
func New(engine *brickpong.Engine, recorder *history.Recorder, logger *log.Logger, tickRate int) (*Game, error) {
	hud, err := loadFace(18)
	if err != nil {
		return nil, err
	}
	big, err := loadFace(40)
	if err != nil {
		return nil, err
	}

	if !core.ValidTickRate(tickRate) {
		tickRate = brickpong.DefaultTickRate
	}

	snap := engine.Snapshot()
	return &Game{
		engine:   engine,
		recorder: recorder,
		logger:   logger,
		step:     time.Second / time.Duration(tickRate),
		hudFace:  hud,
		bigFace:  big,
		layout:   NewLayout(snap.Width, snap.Height),
	}, nil
}

// Update samples input and advances the simulation.
func (g *Game) Update() error {
	if quitPressed() {
		if g.engine.InMatch() {
			g.recorder.Record(g.engine.Summary(), storage.EndQuit)
		}
		g.logger.Info("window closed by player")
		return ebiten.Termination
	}

	in := sampleInput(g.engine.State(), g.layout)
	g.engine.Advance(g.step, in)
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawSnapshot(screen, g.engine.Snapshot())
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.layout.ScreenW, g.layout.ScreenH
}

// Run opens the window and blocks until it is closed.
func Run(engine *brickpong.Engine, recorder *history.Recorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	g, err := New(engine, recorder, logger, cfg.TickRate)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("BrickPong")
	ebiten.SetWindowSize(g.layout.ScreenW, g.layout.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / g.step))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
