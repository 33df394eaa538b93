package hue

import (
	"math"
	"math/rand"
)

// Difficulty curve: the channel delta starts at baseDelta and decays
// geometrically per level, but never drops below minDelta so every round
// stays perceptible and solvable.
const (
	baseDelta  = 15.0
	deltaDecay = 0.92
	minDelta   = 1.5
)

// Generator produces rounds from an injected random source. It keeps no
// state besides the source itself, so two generators built from equal
// seeds emit identical round sequences.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// DifficultyDelta returns the base/target channel difference, in
// percentage points, for the given level. Non-increasing in level with a
// hard floor of minDelta.
func DifficultyDelta(level int) float64 {
	d := baseDelta * math.Pow(deltaDecay, float64(level))
	if d < minDelta {
		return minDelta
	}
	return d
}

// RandomColor samples a color with hue drawn across the full wheel and
// saturation/lightness kept mid-range, so applying a delta away from the
// channel midpoint can never leave [0,100].
func (g *Generator) RandomColor() Color {
	return Color{
		H: g.rng.Float64() * 360,
		S: 50 + g.rng.Float64()*40,
		L: 40 + g.rng.Float64()*20,
	}
}

// Generate produces the round for the given level: a base color, a
// target differing in exactly one of saturation or lightness, and the
// cell that holds it. The delta is applied away from the channel's
// midpoint, decreasing when the base value is above 50 and increasing
// otherwise. The target cell is drawn independently each round; repeats
// are allowed.
func (g *Generator) Generate(level int) Round {
	base := g.RandomColor()
	delta := DifficultyDelta(level)

	target := base
	if g.rng.Float64() < 0.5 {
		if base.L > 50 {
			target.L -= delta
		} else {
			target.L += delta
		}
	} else {
		if base.S > 50 {
			target.S -= delta
		} else {
			target.S += delta
		}
	}

	return Round{
		Level:       level,
		Base:        base,
		Target:      target,
		TargetIndex: g.rng.Intn(CellCount),
	}
}
