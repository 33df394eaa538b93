package hue

import (
	"math"
	"math/rand"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestDifficultyDeltaStartsAtBase(t *testing.T) {
	if got := DifficultyDelta(0); got != 15.0 {
		t.Errorf("DifficultyDelta(0) = %v, want 15", got)
	}
}

func TestDifficultyDeltaFloor(t *testing.T) {
	for level := 0; level <= 500; level++ {
		if d := DifficultyDelta(level); d < 1.5 {
			t.Fatalf("DifficultyDelta(%d) = %v, below floor 1.5", level, d)
		}
	}
}

func TestDifficultyDeltaNonIncreasing(t *testing.T) {
	prev := DifficultyDelta(0)
	for level := 1; level <= 500; level++ {
		d := DifficultyDelta(level)
		if d > prev {
			t.Fatalf("DifficultyDelta(%d) = %v, above DifficultyDelta(%d) = %v",
				level, d, level-1, prev)
		}
		prev = d
	}
}

func TestDifficultyDeltaSettlesOnFloor(t *testing.T) {
	// 15 * 0.92^n sinks below 1.5 before n=30; from there the floor holds.
	if d := DifficultyDelta(100); d != 1.5 {
		t.Errorf("DifficultyDelta(100) = %v, want exactly 1.5", d)
	}
}

func TestRandomColorRanges(t *testing.T) {
	g := newTestGenerator(1)
	for i := 0; i < 1000; i++ {
		c := g.RandomColor()
		if c.H < 0 || c.H >= 360 {
			t.Fatalf("hue %v outside [0,360)", c.H)
		}
		if c.S < 50 || c.S >= 90 {
			t.Fatalf("saturation %v outside [50,90)", c.S)
		}
		if c.L < 40 || c.L >= 60 {
			t.Fatalf("lightness %v outside [40,60)", c.L)
		}
	}
}

func TestGenerateChangesExactlyOneChannel(t *testing.T) {
	g := newTestGenerator(2)
	for level := 0; level < 200; level++ {
		r := g.Generate(level)
		if r.Base.H != r.Target.H {
			t.Fatalf("level %d: hue changed from %v to %v", level, r.Base.H, r.Target.H)
		}
		satChanged := r.Base.S != r.Target.S
		lightChanged := r.Base.L != r.Target.L
		if satChanged == lightChanged {
			t.Fatalf("level %d: want exactly one changed channel, got saturation=%v lightness=%v",
				level, satChanged, lightChanged)
		}
	}
}

func TestGenerateKeepsChannelsInRange(t *testing.T) {
	g := newTestGenerator(3)
	for i := 0; i < 500; i++ {
		r := g.Generate(i % 40)
		for _, c := range []Color{r.Base, r.Target} {
			if c.S < 0 || c.S > 100 {
				t.Fatalf("round %d: saturation %v outside [0,100]", i, c.S)
			}
			if c.L < 0 || c.L > 100 {
				t.Fatalf("round %d: lightness %v outside [0,100]", i, c.L)
			}
		}
	}
}

func TestGenerateDeltaMagnitude(t *testing.T) {
	g := newTestGenerator(4)
	for level := 0; level < 60; level++ {
		r := g.Generate(level)
		got := math.Abs(r.Target.S-r.Base.S) + math.Abs(r.Target.L-r.Base.L)
		want := DifficultyDelta(level)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("level %d: channel delta = %v, want %v", level, got, want)
		}
	}
}

func TestGenerateDeltaAwayFromMidpoint(t *testing.T) {
	g := newTestGenerator(5)
	for i := 0; i < 300; i++ {
		r := g.Generate(i % 30)
		base, target := r.Base.S, r.Target.S
		if r.Base.L != r.Target.L {
			base, target = r.Base.L, r.Target.L
		}
		if base > 50 && target >= base {
			t.Fatalf("base %v above midpoint but target %v did not decrease", base, target)
		}
		if base <= 50 && target <= base {
			t.Fatalf("base %v at or below midpoint but target %v did not increase", base, target)
		}
	}
}

func TestTargetIndexInRange(t *testing.T) {
	g := newTestGenerator(6)
	for i := 0; i < 1000; i++ {
		if r := g.Generate(i % 20); r.TargetIndex < 0 || r.TargetIndex >= CellCount {
			t.Fatalf("TargetIndex %d outside [0,%d)", r.TargetIndex, CellCount)
		}
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	g1 := newTestGenerator(42)
	g2 := newTestGenerator(42)
	for level := 0; level < 50; level++ {
		r1, r2 := g1.Generate(level), g2.Generate(level)
		if r1 != r2 {
			t.Fatalf("level %d: same seed produced different rounds:\n%+v\n%+v", level, r1, r2)
		}
	}
}
