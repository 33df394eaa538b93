package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/huehunt/internal/config"
	"github.com/vovakirdan/huehunt/internal/core"
	"github.com/vovakirdan/huehunt/internal/hue"
)

// Shared styles for the play screen.
var (
	hudTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	barCalmStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barUrgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// swatchColor converts a board color to a truecolor lipgloss value.
func swatchColor(c hue.Color) lipgloss.Color {
	return lipgloss.Color(colorful.Hsl(c.H, c.S/100, c.L/100).Hex())
}

// timerBarStyle picks the bar color for the remaining time.
func timerBarStyle(timeLeft float64) lipgloss.Style {
	switch {
	case timeLeft > 10:
		return barCalmStyle
	case timeLeft > 5:
		return barWarnStyle
	default:
		return barUrgentStyle
	}
}

// hudHeight returns the number of terminal rows above the board.
func hudHeight(hud config.HUDTheme) int {
	if hud.ShowTimerBar {
		return 4
	}
	return 3
}

// BoardLayout maps the swatch grid onto absolute terminal coordinates.
// The same layout drives rendering and mouse hit-testing, so a click
// always lands on the cell the player sees.
type BoardLayout struct {
	board  config.BoardTheme
	bounds core.Rect
}

// newBoardLayout centers the board horizontally and places it below the
// HUD. One column left of the board is reserved for the cursor marker.
// Geometry floors keep rendering and hit-testing aligned when a
// hand-edited theme sets degenerate sizes; the marker needs GapX >= 1.
func newBoardLayout(board config.BoardTheme, width, top int) BoardLayout {
	if board.SwatchWidth < 1 {
		board.SwatchWidth = 1
	}
	if board.SwatchHeight < 1 {
		board.SwatchHeight = 1
	}
	if board.GapX < 1 {
		board.GapX = 1
	}
	if board.GapY < 0 {
		board.GapY = 0
	}

	w := hue.GridSize*board.SwatchWidth + (hue.GridSize-1)*board.GapX
	h := hue.GridSize*board.SwatchHeight + (hue.GridSize-1)*board.GapY
	x := core.Clamp((width-w)/2, 1, width)
	return BoardLayout{board: board, bounds: core.NewRect(x, top, w, h)}
}

// CellRect returns the absolute bounds of the swatch at the given index.
func (l BoardLayout) CellRect(index int) core.Rect {
	row, col := index/hue.GridSize, index%hue.GridSize
	return core.NewRect(
		l.bounds.X+col*(l.board.SwatchWidth+l.board.GapX),
		l.bounds.Y+row*(l.board.SwatchHeight+l.board.GapY),
		l.board.SwatchWidth,
		l.board.SwatchHeight,
	)
}

// CellAt returns the index of the swatch containing the point, or -1 if
// the point is outside the board or in a gap between swatches.
func (l BoardLayout) CellAt(x, y int) int {
	if !l.bounds.Contains(x, y) {
		return -1
	}
	for i := 0; i < hue.CellCount; i++ {
		if l.CellRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// layout computes the board placement for the current window and theme.
func (m Model) layout() BoardLayout {
	return newBoardLayout(m.theme.Board, m.width, hudHeight(m.theme.HUD))
}

// viewPlaying renders the HUD and the swatch board.
func (m Model) viewPlaying() string {
	var b strings.Builder

	title := fmt.Sprintf("HUE HUNT [%s]", m.mode.ID)
	b.WriteString(hudTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")

	stats := fmt.Sprintf("Score %d   Round %d", m.session.Score, m.session.Round.Level+1)
	if m.theme.HUD.ShowBest {
		stats += fmt.Sprintf("   Best %d", m.best)
	}
	stats += fmt.Sprintf("   Time %4.1fs", m.session.TimeLeft)
	b.WriteString(centerText(stats, m.width))
	b.WriteString("\n")

	if m.theme.HUD.ShowTimerBar {
		b.WriteString(m.renderTimerBar())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderBoard(m.layout()))
	b.WriteString("\n")
	controls := "arrows/wasd: move   enter/space: pick   esc: pause   q: quit"
	b.WriteString(hudDimStyle.Render(centerText(controls, m.width)))

	return b.String()
}

// renderTimerBar draws the remaining-time bar, pre-padded for centering.
// Padding is computed on the plain text before styling; centerText would
// count the ANSI escape codes and push the bar off-center.
func (m Model) renderTimerBar() string {
	w := m.theme.HUD.TimerBarWidth
	if w <= 0 {
		return ""
	}
	filled := core.Clamp(int(math.Round(m.session.TimeLeft/hue.MaxTime*float64(w))), 0, w)

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", w-filled) + "]"
	pad := (m.width - len(bar)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + timerBarStyle(m.session.TimeLeft).Render(bar)
}

// renderBoard draws the 5x5 swatch grid with the cursor marker. Geometry
// comes from the layout, never straight from the theme, so the drawn
// cells are exactly the rects CellAt tests against.
func (m Model) renderBoard(layout BoardLayout) string {
	board := layout.board
	cursorRow := m.cursor / hue.GridSize
	cursorCol := m.cursor % hue.GridSize

	blank := strings.Repeat(" ", board.SwatchWidth)
	baseCell := lipgloss.NewStyle().Background(swatchColor(m.session.Round.Base)).Render(blank)
	targetCell := lipgloss.NewStyle().Background(swatchColor(m.session.Round.Target)).Render(blank)

	lines := make([]string, 0, layout.bounds.H)
	for row := 0; row < hue.GridSize; row++ {
		if row > 0 {
			for g := 0; g < board.GapY; g++ {
				lines = append(lines, "")
			}
		}
		for ln := 0; ln < board.SwatchHeight; ln++ {
			var line strings.Builder
			line.WriteString(strings.Repeat(" ", layout.bounds.X-1))

			markerLine := row == cursorRow && ln == board.SwatchHeight/2
			for col := 0; col < hue.GridSize; col++ {
				if col > 0 && board.GapX > 1 {
					line.WriteString(strings.Repeat(" ", board.GapX-1))
				}

				marker := " "
				if markerLine && col == cursorCol {
					marker = ">"
				} else if markerLine && col == cursorCol+1 {
					marker = "<"
				}
				line.WriteString(cursorStyle.Render(marker))

				if row*hue.GridSize+col == m.session.Round.TargetIndex {
					line.WriteString(targetCell)
				} else {
					line.WriteString(baseCell)
				}
			}
			if markerLine && cursorCol == hue.GridSize-1 {
				line.WriteString(cursorStyle.Render("<"))
			}
			lines = append(lines, line.String())
		}
	}
	return strings.Join(lines, "\n")
}

// viewIdle renders the intro/info screen.
func (m Model) viewIdle() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("H U E   H U N T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s: %s", m.mode.Title, m.mode.Tagline), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("One swatch on the 5x5 board is a slightly different shade.", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("A correct pick scores a point and adds 2 seconds.", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("A wrong pick costs 3 seconds. The rounds get harder.", m.width))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
		b.WriteString("\n\n")
	}
	if m.session.Score > 0 || m.session.Round.Level > 0 {
		last := fmt.Sprintf("Last run: %d points, reached round %d", m.session.Score, m.session.Round.Level+1)
		b.WriteString(centerText(last, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// viewSummary renders the game-over screen.
func (m Model) viewSummary() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T I M E ' S   U P", m.width))
	b.WriteString("\n\n")

	result := fmt.Sprintf("Score %d over %d rounds (%d%% accuracy)",
		m.session.Score, m.session.Round.Level, m.session.Accuracy())
	b.WriteString(centerText(result, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Run time %.0fs", m.lastDuration), m.width))
	b.WriteString("\n\n")

	if m.newBest {
		b.WriteString(centerText(fmt.Sprintf("NEW BEST: %d", m.best), m.width))
	} else {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText("R/Enter: Play Again  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}
