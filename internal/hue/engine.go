// Package hue implements the find-the-different-swatch game: a grid of
// color swatches where one cell differs slightly from the rest, to be
// picked before the countdown runs out. The package is the pure game
// core (a state machine plus a procedural generator) with no I/O and
// no UI dependencies; the platform layer owns the timer and rendering.
package hue

import (
	"math/rand"
	"time"
)

// Game rules. These are fixed rules of the game, not tunables.
const (
	// GridSize is the side length of the swatch grid.
	GridSize = 5
	// CellCount is the number of cells on the grid.
	CellCount = GridSize * GridSize

	// MaxTime is the starting time allowance in seconds; bonus time
	// never pushes the clock past it.
	MaxTime     = 30.0
	bonusTime   = 2.0
	penaltyTime = 3.0

	// TickInterval is the countdown cadence. Each tick advances the
	// clock by TickDelta seconds.
	TickInterval = 100 * time.Millisecond
	TickDelta    = 0.1
)

// Engine is the round state machine. It owns the session exclusively;
// callers drive it through Start/Select/Tick/ShowIdle and observe it
// through the Session values those return.
//
// The engine is not safe for concurrent use. It expects a single event
// loop: one timer and one input source, each event applied to completion
// before the next. The timer lives outside the engine and must be
// cancelled whenever the session leaves the playing state; Tick ignores
// stale events regardless.
type Engine struct {
	gen     *Generator
	session Session
}

// New creates an idle engine whose generator draws from the given source.
func New(rng *rand.Rand) *Engine {
	return &Engine{gen: NewGenerator(rng)}
}

// NewSeeded creates an idle engine seeded with the given value.
func NewSeeded(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed)))
}

// Start begins a fresh game: score cleared, full clock, level 0 round.
// Any previous session is discarded.
func (e *Engine) Start() Session {
	e.session = Session{
		Status:   StatusPlaying,
		TimeLeft: MaxTime,
		Round:    e.gen.Generate(0),
	}
	return e.session
}

// Select attempts the cell at index. Outside of play it changes nothing.
// A correct pick scores, adds bonus time and deals the next round in the
// same step; any other index, in range or not, costs penalty time and
// leaves the round in place.
func (e *Engine) Select(index int) Session {
	if e.session.Status != StatusPlaying {
		return e.session
	}

	if index == e.session.Round.TargetIndex {
		e.session.Score++
		e.session.TimeLeft = min(e.session.TimeLeft+bonusTime, MaxTime)
		e.session.Round = e.gen.Generate(e.session.Round.Level + 1)
	} else {
		e.session.TimeLeft = max(e.session.TimeLeft-penaltyTime, 0)
	}
	return e.session
}

// Tick advances the countdown by delta seconds. Non-positive deltas and
// ticks outside of play are ignored, so a stale timer can never mutate a
// finished or idle session. When the clock runs out the session freezes
// at exactly zero.
func (e *Engine) Tick(delta float64) Session {
	if e.session.Status != StatusPlaying || delta <= 0 {
		return e.session
	}

	if e.session.TimeLeft-delta > 0 {
		e.session.TimeLeft -= delta
	} else {
		e.session.TimeLeft = 0
		e.session.Status = StatusGameOver
	}
	return e.session
}

// ShowIdle forces the session back to idle without touching score, clock
// or round, so the info screen can still present the last run.
func (e *Engine) ShowIdle() Session {
	e.session.Status = StatusIdle
	return e.session
}

// Snapshot returns the current session state.
func (e *Engine) Snapshot() Session {
	return e.session
}
