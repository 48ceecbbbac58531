package brickpong

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/logging"
)

// Default loop settings
const (
	DefaultTickRate         = 60
	DefaultMaxStepsPerFrame = 8 // Drop time beyond this many ticks per Advance call
)

// MatchSummary describes a finished or interrupted match.
type MatchSummary struct {
	Score1     uint
	Score2     uint
	Ticks      uint64
	Duration   time.Duration // Simulated time
	BlocksLeft int
}

// Winner returns the leading player, or false on a tie.
func (s MatchSummary) Winner() (core.PlayerID, bool) {
	sb := Scoreboard{scores: [2]uint{s.Score1, s.Score2}}
	return sb.Leader()
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for state changes and hits.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTickRate sets the number of fixed ticks per simulated second.
// Rates outside [1, core.MaxTickRate] are ignored.
func WithTickRate(tps int) Option {
	return func(e *Engine) {
		if core.ValidTickRate(tps) {
			e.tick = 1.0 / float64(tps)
			e.tickDur = time.Second / time.Duration(tps)
		}
	}
}

// WithMaxStepsPerFrame caps how many ticks one Advance call may run.
func WithMaxStepsPerFrame(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithMatchEnd registers a callback run when a match returns to the menu.
func WithMatchEnd(fn func(MatchSummary)) Option {
	return func(e *Engine) {
		e.onMatchEnd = fn
	}
}

// Engine is the simulation loop. It owns the state machine, the world and
// the scoreboard, and is driven from a single goroutine.
type Engine struct {
	cfg      config.ArenaConfig
	tick     float64 // Seconds per tick
	tickDur  time.Duration
	maxSteps int

	machine *Machine
	world   *World // nil outside a match
	score   Scoreboard
	ticks   uint64
	acc     float64 // Unsimulated seconds

	logger     *log.Logger
	onMatchEnd func(MatchSummary)
}

// New creates an engine in the Menu state. cfg is validated first.
func New(cfg config.ArenaConfig, opts ...Option) (*Engine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("brickpong: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		tick:     1.0 / DefaultTickRate,
		tickDur:  time.Second / DefaultTickRate,
		maxSteps: DefaultMaxStepsPerFrame,
		machine:  NewMachine(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// State returns the live state.
func (e *Engine) State() State {
	return e.machine.Current()
}

// InMatch reports whether a match is running or paused.
func (e *Engine) InMatch() bool {
	return e.world != nil
}

// TickSeconds returns the fixed tick length.
func (e *Engine) TickSeconds() float64 {
	return e.tick
}

// Ticks returns the number of ticks simulated in the current match.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Score returns p's score in the current match.
func (e *Engine) Score(p core.PlayerID) uint {
	return e.score.Score(p)
}

// World exposes the entity registry of the current match, or nil.
func (e *Engine) World() *World {
	return e.world
}

// HandleInput applies the state transitions requested by in's pressed actions.
// Call it once per input frame, before ticking.
func (e *Engine) HandleInput(in core.InputFrame) {
	switch e.machine.Current() {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			e.startMatch()
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			e.machine.Pause()
			e.logger.Info("paused", "tick", e.ticks)
		} else if in.Has(core.ActionBack) {
			e.endMatch()
		}
	case StatePaused:
		if in.Has(core.ActionPause) {
			e.machine.Resume()
			e.logger.Info("resumed", "tick", e.ticks)
		}
	}
}

// startMatch builds a fresh world and zeroes the scoreboard.
func (e *Engine) startMatch() {
	if !e.machine.Start() {
		return
	}
	e.world = NewWorld(e.cfg)
	e.score.Reset()
	e.ticks = 0
	e.acc = 0
	e.logger.Info("match started", "blocks", e.cfg.Blocks.RowCount*2)
}

// endMatch returns to the menu and discards the world.
func (e *Engine) endMatch() {
	summary := e.Summary()
	if !e.machine.Quit() {
		return
	}
	e.world = nil
	e.acc = 0
	e.logger.Info("match ended",
		"score1", summary.Score1,
		"score2", summary.Score2,
		"ticks", summary.Ticks,
	)
	if e.onMatchEnd != nil {
		e.onMatchEnd(summary)
	}
}

// Summary describes the current match.
func (e *Engine) Summary() MatchSummary {
	s := MatchSummary{
		Score1:   e.score.Score(core.Player1),
		Score2:   e.score.Score(core.Player2),
		Ticks:    e.ticks,
		Duration: time.Duration(e.ticks) * e.tickDur, //#nosec G115 -- tick counts stay far below MaxInt64
	}
	if e.world != nil {
		s.BlocksLeft = e.world.BlocksRemaining(core.Player1) + e.world.BlocksRemaining(core.Player2)
	}
	return s
}

// Tick runs exactly one fixed step if Playing: paddles, then ball, then
// collisions. Returns the hits resolved this tick.
func (e *Engine) Tick(in core.InputFrame) []Hit {
	if e.machine.Current() != StatePlaying || e.world == nil {
		return nil
	}

	MovePaddles(e.world, in, e.tick, e.cfg.Paddles.Limit)
	MoveBall(e.world, e.tick)
	hits := ResolveCollisions(e.world, &e.score)
	e.ticks++

	for _, h := range hits {
		if h.Scored {
			e.logger.Debug("block destroyed",
				"player", h.ScoredFor,
				"score", e.score.Score(h.ScoredFor),
				"side", h.Side,
				"tick", e.ticks,
			)
		}
	}
	return hits
}

// Advance handles in's transitions, then runs as many fixed ticks as the
// accumulated wall time allows (at most the per-frame cap). Held input in in
// applies to every tick run. Returns the number of ticks run.
//
// Time does not accumulate outside Playing, so resuming never replays the
// pause.
func (e *Engine) Advance(elapsed time.Duration, in core.InputFrame) int {
	e.HandleInput(in)

	if e.machine.Current() != StatePlaying {
		e.acc = 0
		return 0
	}

	if elapsed > 0 {
		e.acc += elapsed.Seconds()
	}
	steps := int(e.acc / e.tick)
	if steps > e.maxSteps {
		// Too far behind: run the cap and forget the rest.
		steps = e.maxSteps
		e.acc = 0
	} else {
		e.acc -= float64(steps) * e.tick
	}

	for range steps {
		e.Tick(in)
	}
	return steps
}

// ballColor pulses the ball between two shades with simulated time.
func (e *Engine) ballColor() core.Color {
	t := float64(e.ticks) * e.tick
	if math.Sin(t*0.5) >= 0 {
		return BallColor
	}
	return core.ColorBrightMagenta
}
