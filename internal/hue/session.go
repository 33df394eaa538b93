package hue

import "math"

// Color is a point in an HSL-like space: hue in [0,360), saturation and
// lightness in [0,100]. Colors are plain values and are never mutated
// after generation.
type Color struct {
	H float64
	S float64
	L float64
}

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Round is one puzzle instance: every cell on the grid shows Base except
// the cell at TargetIndex, which shows Target. Target differs from Base
// in exactly one of saturation or lightness.
type Round struct {
	Level       int
	Base        Color
	Target      Color
	TargetIndex int
}

// Session is the engine's full observable state. It is a plain value:
// snapshots handed to observers are copies and cannot reach back into
// the engine.
type Session struct {
	Status   Status
	Score    int
	TimeLeft float64
	Round    Round
}

// Accuracy reports correct answers against rounds reached, rounded to
// whole percent, or 0 before the first round is cleared. Level counts
// rounds presented, not attempts, so wrong guesses do not lower it.
func (s Session) Accuracy() int {
	if s.Round.Level <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Score) / float64(s.Round.Level) * 100))
}
