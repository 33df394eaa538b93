package tui

import (
	"testing"

	"github.com/vovakirdan/huehunt/internal/config"
	"github.com/vovakirdan/huehunt/internal/hue"
)

func TestBoardLayoutCentersBoard(t *testing.T) {
	board := config.DefaultTheme().Board // 7x3 swatches, 1-cell gaps

	layout := newBoardLayout(board, 80, 4)

	// 5*7 + 4*1 = 39 columns, centered in 80
	if layout.bounds.W != 39 {
		t.Errorf("board width = %d, want 39", layout.bounds.W)
	}
	if layout.bounds.H != 19 {
		t.Errorf("board height = %d, want 19", layout.bounds.H)
	}
	if layout.bounds.X != 20 {
		t.Errorf("board x = %d, want 20", layout.bounds.X)
	}
	if layout.bounds.Y != 4 {
		t.Errorf("board y = %d, want 4", layout.bounds.Y)
	}
}

func TestBoardLayoutNarrowTerminalKeepsMarkerColumn(t *testing.T) {
	board := config.DefaultTheme().Board

	// Terminal narrower than the board: the board still starts at
	// column 1 so the cursor marker has a column to live in.
	layout := newBoardLayout(board, 30, 4)
	if layout.bounds.X != 1 {
		t.Errorf("board x = %d, want 1", layout.bounds.X)
	}
}

func TestBoardLayoutFloorsDegenerateTheme(t *testing.T) {
	board := config.BoardTheme{SwatchWidth: 0, SwatchHeight: 0, GapX: 0, GapY: -2}

	layout := newBoardLayout(board, 80, 4)

	// Floored to 1x1 swatches, 1-column gaps, no row gaps:
	// 5*1 + 4*1 = 9 wide, 5*1 = 5 tall
	if layout.bounds.W != 9 || layout.bounds.H != 5 {
		t.Errorf("bounds = %+v, want W=9 H=5", layout.bounds)
	}
}

func TestCellRect(t *testing.T) {
	board := config.DefaultTheme().Board
	layout := newBoardLayout(board, 80, 4)

	first := layout.CellRect(0)
	if first.X != 20 || first.Y != 4 || first.W != 7 || first.H != 3 {
		t.Errorf("CellRect(0) = %+v, want {20 4 7 3}", first)
	}

	// Last cell: 4 swatches plus 4 gaps to the right and below
	last := layout.CellRect(hue.CellCount - 1)
	if last.X != 20+4*8 || last.Y != 4+4*4 {
		t.Errorf("CellRect(24) = %+v, want x=52 y=20", last)
	}
}

func TestCellAtHitsAndMisses(t *testing.T) {
	board := config.DefaultTheme().Board
	layout := newBoardLayout(board, 80, 4)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first cell top-left", 20, 4, 0},
		{"first cell bottom-right", 26, 6, 0},
		{"gap right of first cell", 27, 4, -1},
		{"second cell", 28, 4, 1},
		{"second row", 20, 8, 5},
		{"gap row", 20, 7, -1},
		{"last cell", 58, 22, 24},
		{"left of board", 19, 4, -1},
		{"above board", 20, 3, -1},
		{"far outside", 0, 0, -1},
		{"past right edge", 59, 4, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout.CellAt(tt.x, tt.y); got != tt.want {
				t.Errorf("CellAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCellAtRoundTripsCellRects(t *testing.T) {
	board := config.DefaultTheme().Board
	layout := newBoardLayout(board, 80, 4)

	// Every point inside every cell rect must hit-test back to that cell.
	for i := 0; i < hue.CellCount; i++ {
		r := layout.CellRect(i)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if got := layout.CellAt(x, y); got != i {
					t.Fatalf("CellAt(%d, %d) = %d, want %d", x, y, got, i)
				}
			}
		}
	}
}

func TestSwatchColorConvertsHSL(t *testing.T) {
	tests := []struct {
		name  string
		color hue.Color
		want  string
	}{
		{"white", hue.Color{H: 0, S: 0, L: 100}, "#ffffff"},
		{"black", hue.Color{H: 0, S: 0, L: 0}, "#000000"},
		{"pure red", hue.Color{H: 0, S: 100, L: 50}, "#ff0000"},
		{"pure green", hue.Color{H: 120, S: 100, L: 50}, "#00ff00"},
		{"pure blue", hue.Color{H: 240, S: 100, L: 50}, "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(swatchColor(tt.color)); got != tt.want {
				t.Errorf("swatchColor(%+v) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

func TestHudHeight(t *testing.T) {
	hud := config.DefaultTheme().HUD

	hud.ShowTimerBar = true
	if got := hudHeight(hud); got != 4 {
		t.Errorf("hudHeight with bar = %d, want 4", got)
	}

	hud.ShowTimerBar = false
	if got := hudHeight(hud); got != 3 {
		t.Errorf("hudHeight without bar = %d, want 3", got)
	}
}
